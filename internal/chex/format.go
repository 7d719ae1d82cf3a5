package chex

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Format selects the textual envelope of a dump.
type Format int

const (
	// FormatLong is a single-line string of hex characters.
	FormatLong Format = iota
	// FormatCExtern is a C header extern declaration. It needs only the input size.
	FormatCExtern
	// FormatCSource is the C source definition matching FormatCExtern.
	FormatCSource
	// FormatCStatic is a C static array with its size constant.
	FormatCStatic
	// FormatZig is a Zig array.
	FormatZig
)

// Request describes one dump.
type Request struct {
	// Basename is the identifier used in the emitted declarations. It is not escaped.
	Basename string
	// Options are kept in the order they were given. No format reads them yet.
	Options []Option
	// WordSize is the width of each array element.
	WordSize WordSize
}

// Option is a single key/value pair attached to a Request.
type Option struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// FormatInfo is the name and description of a format, used for listings.
type FormatInfo struct {
	Format      Format
	Name        string
	Description string
}

type renderFunc func(buf *bytes.Buffer, req *Request, in Input) error

type formatEntry struct {
	FormatInfo
	render renderFunc
}

// formatTable is the single source of truth for format names, descriptions and renderers.
// Entries are indexed by Format.
var formatTable = []formatEntry{
	{FormatInfo{FormatLong, "long", "Long one-line string of hex characters"}, renderLong},
	{FormatInfo{FormatCExtern, "c-extern", "C header extern declaration"}, renderCExtern},
	{FormatInfo{FormatCSource, "c-source", "C source definition"}, renderCSource},
	{FormatInfo{FormatCStatic, "c-static", "C static definition"}, renderCStatic},
	{FormatInfo{FormatZig, "zig", "Zig array"}, renderZig},
}

func lookup(f Format) (formatEntry, bool) {
	if f < 0 || int(f) >= len(formatTable) {
		return formatEntry{}, false
	}
	return formatTable[f], true
}

// String returns the command-line name of f.
func (f Format) String() string {
	if e, ok := lookup(f); ok {
		return e.Name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Description returns the one-line help text of f.
func (f Format) Description() string {
	if e, ok := lookup(f); ok {
		return e.Description
	}
	return ""
}

// NeedsData reports whether rendering f reads the input bytes.
func (f Format) NeedsData() bool {
	return f != FormatCExtern
}

// ParseFormat maps a command-line name such as "c-static" to its Format.
func ParseFormat(name string) (Format, error) {
	for _, e := range formatTable {
		if e.Name == name {
			return e.Format, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Formats returns the name and description of every format in display order.
func Formats() []FormatInfo {
	out := make([]FormatInfo, len(formatTable))
	for i, e := range formatTable {
		out[i] = e.FormatInfo
	}
	return out
}

func renderLong(buf *bytes.Buffer, req *Request, in Input) error {
	if in.Size < 0 || len(in.Data) < in.Size {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooShort, len(in.Data), in.Size)
	}
	out := make([]byte, hex.EncodedLen(in.Size))
	hex.Encode(out, in.Data[:in.Size])
	buf.Write(out)
	return nil
}

func renderCExtern(buf *bytes.Buffer, req *Request, in Input) error {
	fmt.Fprintf(buf, "extern uint%d_t %s[%d];\n", req.WordSize.Bits(), req.Basename, WordCount(req.WordSize, in.Size))
	writeSizeConst(buf, req, in)
	return nil
}

func renderCSource(buf *bytes.Buffer, req *Request, in Input) error {
	return renderCArray(buf, req, in, "")
}

func renderCStatic(buf *bytes.Buffer, req *Request, in Input) error {
	writeSizeConst(buf, req, in)
	return renderCArray(buf, req, in, "static const ")
}

func renderZig(buf *bytes.Buffer, req *Request, in Input) error {
	words, err := Group(req.WordSize, in)
	if err != nil {
		return err
	}
	// Zig takes the byte count here, not the word count.
	fmt.Fprintf(buf, "const %s [%d]u%d = {\n", req.Basename, in.Size, req.WordSize.Bits())
	return writeBody(buf, words)
}

func renderCArray(buf *bytes.Buffer, req *Request, in Input, qualifier string) error {
	words, err := Group(req.WordSize, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "%suint%d_t %s[%d] = {\n", qualifier, req.WordSize.Bits(), req.Basename, words.Len())
	return writeBody(buf, words)
}

func writeSizeConst(buf *bytes.Buffer, req *Request, in Input) {
	fmt.Fprintf(buf, "static const size_t %s_SIZE = %d;\n", req.Basename, in.Size)
}

func writeBody(buf *bytes.Buffer, words Words) error {
	if err := WriteWords(buf, words, "0x", ","); err != nil {
		return err
	}
	buf.WriteString("\n};\n")
	return nil
}
