package chex

import (
	"io"
	"strconv"
)

// WriteWords writes every word as prefix + zero-padded lowercase hex + separator.
// A line break follows every RowLength tokens, except after the last one.
func WriteWords(w io.Writer, words Words, prefix, separator string) error {
	n := words.Len()
	if n == 0 {
		return nil
	}

	row := words.WordSize().RowLength()
	digits := words.WordSize().Digits()

	buf := make([]byte, 0, n*(len(prefix)+digits+len(separator)+1))
	for i := 0; i < n; i++ {
		buf = append(buf, prefix...)
		buf = appendHex(buf, words.At(i), digits)
		buf = append(buf, separator...)
		if (i+1)%row == 0 && i+1 < n {
			buf = append(buf, '\n')
		}
	}

	_, err := w.Write(buf)
	return err
}

// appendHex appends v as lowercase hex, left-padded with zeros to width digits.
func appendHex(dst []byte, v uint64, width int) []byte {
	var tmp [16]byte
	s := strconv.AppendUint(tmp[:0], v, 16)
	for i := len(s); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}
