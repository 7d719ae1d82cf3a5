package chex

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func renderWords(t *testing.T, ws WordSize, data []byte, prefix, sep string) string {
	t.Helper()
	words, err := Group(ws, Bytes(data))
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteWords(&buf, words, prefix, sep); err != nil {
		t.Fatalf("WriteWords failed: %v", err)
	}
	return buf.String()
}

func TestWriteWords_TokenWidth(t *testing.T) {
	if got := renderWords(t, WordSize8, []byte{0x0a}, "", ""); got != "0a" {
		t.Errorf("1-byte word: got %q, want %q", got, "0a")
	}

	data := make([]byte, 2)
	binary.NativeEndian.PutUint16(data, 0x0a)
	if got := renderWords(t, WordSize16, data, "", ""); got != "000a" {
		t.Errorf("2-byte word: got %q, want %q", got, "000a")
	}

	data = make([]byte, 4)
	binary.NativeEndian.PutUint32(data, 0xdeadbeef)
	if got := renderWords(t, WordSize32, data, "0x", ","); got != "0xdeadbeef," {
		t.Errorf("4-byte word: got %q", got)
	}

	data = make([]byte, 8)
	binary.NativeEndian.PutUint64(data, 1)
	if got := renderWords(t, WordSize64, data, "0x", ","); got != "0x0000000000000001," {
		t.Errorf("8-byte word: got %q", got)
	}
}

func TestWriteWords_RowWrapping(t *testing.T) {
	tests := []struct {
		name  string
		ws    WordSize
		words int
		row   int
	}{
		{"bytes", WordSize8, 40, 16},
		{"halfwords", WordSize16, 20, 8},
		{"words", WordSize32, 20, 8},
		{"dwords", WordSize64, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderWords(t, tt.ws, make([]byte, tt.words*int(tt.ws)), "0x", ",")
			lines := strings.Split(out, "\n")
			wantLines := (tt.words + tt.row - 1) / tt.row
			if len(lines) != wantLines {
				t.Fatalf("got %d lines, want %d:\n%s", len(lines), wantLines, out)
			}
			for i, line := range lines[:len(lines)-1] {
				if n := strings.Count(line, "0x"); n != tt.row {
					t.Errorf("line %d has %d tokens, want %d", i, n, tt.row)
				}
			}
		})
	}
}

func TestWriteWords_NoTrailingBreakOnBoundary(t *testing.T) {
	out := renderWords(t, WordSize8, make([]byte, 32), "0x", ",")
	if strings.HasSuffix(out, "\n") {
		t.Errorf("output ends with a line break: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("got %d line breaks, want 1", n)
	}
}

func TestWriteWords_Empty(t *testing.T) {
	if got := renderWords(t, WordSize32, nil, "0x", ","); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
