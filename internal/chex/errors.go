package chex

import "errors"

var (
	// ErrInvalidWordSize is returned when a word size is not one of 1, 2, 4 or 8.
	ErrInvalidWordSize = errors.New("invalid word size")
	// ErrBufferTooShort is returned when the input holds fewer bytes than its declared size.
	ErrBufferTooShort = errors.New("buffer too short")
	// ErrUnknownFormat is returned for a format outside the known set.
	ErrUnknownFormat = errors.New("unknown format")
)
