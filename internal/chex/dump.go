// Package chex renders binary data as hex literals for embedding in C or Zig source,
// or as a plain hex string.
//
// Rendering is pure: the same request and input always produce the same text, and
// nothing is shared between calls.
package chex

import (
	"bytes"
	"fmt"
	"io"
)

// Dump renders in with format f and writes the result to w.
//
// The whole emission is built in memory first, so an invalid word size, a short
// buffer or an unknown format leaves w untouched. An error returned by w itself may
// leave a truncated artifact behind.
func Dump(w io.Writer, req *Request, in Input, f Format) error {
	if !req.WordSize.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidWordSize, int(req.WordSize))
	}
	e, ok := lookup(f)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}

	var buf bytes.Buffer
	if err := e.render(&buf, req, in); err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s output: %w", e.Name, err)
	}
	return nil
}

// DumpString is Dump into a string.
func DumpString(req *Request, in Input, f Format) (string, error) {
	var sb bytes.Buffer
	if err := Dump(&sb, req, in, f); err != nil {
		return "", err
	}
	return sb.String(), nil
}
