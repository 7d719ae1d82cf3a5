package chex

import (
	"encoding/binary"
	"fmt"
)

// WordSize is the width in bytes of one rendered word.
// Only 1, 2, 4 and 8 are valid; use NewWordSize to build one from user input.
type WordSize int

// Word sizes are named after their width in bits.
const (
	WordSize8  WordSize = 1
	WordSize16 WordSize = 2
	WordSize32 WordSize = 4
	WordSize64 WordSize = 8
)

// NewWordSize validates n and returns it as a WordSize.
func NewWordSize(n int) (WordSize, error) {
	ws := WordSize(n)
	if !ws.Valid() {
		return 0, fmt.Errorf("%w: %d (supported: 1, 2, 4, 8)", ErrInvalidWordSize, n)
	}
	return ws, nil
}

// Valid reports whether ws is one of the supported sizes.
func (ws WordSize) Valid() bool {
	switch ws {
	case WordSize8, WordSize16, WordSize32, WordSize64:
		return true
	}
	return false
}

// Bits returns the element width in bits (8, 16, 32 or 64).
func (ws WordSize) Bits() int {
	return int(ws) * 8
}

// Digits returns the number of hex digits of one rendered word.
func (ws WordSize) Digits() int {
	return int(ws) * 2
}

// RowLength returns how many tokens are written before a line break.
func (ws WordSize) RowLength() int {
	switch ws {
	case WordSize64:
		return 4
	case WordSize32, WordSize16:
		return 8
	default:
		return 16
	}
}

// WordCount returns ceil(total / ws). ws must be valid.
func WordCount(ws WordSize, total int) int {
	return total/int(ws) + boolToInt(total%int(ws) != 0)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Input is the payload handed to the renderers.
// Size is the logical length in bytes. Data may be nil for formats that only need the size.
type Input struct {
	Data []byte
	Size int
}

// Bytes wraps data as an Input of len(data) bytes.
func Bytes(data []byte) Input {
	return Input{Data: data, Size: len(data)}
}

// SizeOnly returns an Input that carries a size but no data.
func SizeOnly(n int) Input {
	return Input{Size: n}
}

// Words is a zero-padded copy of an input, read as fixed-width words in native byte order.
type Words struct {
	buf  []byte
	ws   WordSize
	size int
}

// Group copies the first in.Size bytes of in.Data into a buffer padded with zeros
// up to a whole number of words.
func Group(ws WordSize, in Input) (Words, error) {
	if !ws.Valid() {
		return Words{}, fmt.Errorf("%w: %d", ErrInvalidWordSize, int(ws))
	}
	if in.Size < 0 || len(in.Data) < in.Size {
		return Words{}, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooShort, len(in.Data), in.Size)
	}

	buf := make([]byte, WordCount(ws, in.Size)*int(ws))
	copy(buf, in.Data[:in.Size])

	return Words{buf: buf, ws: ws, size: in.Size}, nil
}

// Len returns the number of words.
func (w Words) Len() int {
	return len(w.buf) / int(w.ws)
}

// Size returns the unpadded byte length the words were built from.
func (w Words) Size() int {
	return w.size
}

// WordSize returns the width of each word.
func (w Words) WordSize() WordSize {
	return w.ws
}

// At returns word i widened to uint64.
func (w Words) At(i int) uint64 {
	off := i * int(w.ws)
	b := w.buf[off : off+int(w.ws)]
	switch w.ws {
	case WordSize64:
		return binary.NativeEndian.Uint64(b)
	case WordSize32:
		return uint64(binary.NativeEndian.Uint32(b))
	case WordSize16:
		return uint64(binary.NativeEndian.Uint16(b))
	default:
		return uint64(b[0])
	}
}
