package ident

import (
	"strings"
	"unicode"
)

var alnum = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0030, 0x0039, 1},
		{0x0041, 0x005a, 1},
		{0x0061, 0x007a, 1},
	},
	LatinOffset: 3,
}

// Basename builds the identifier used in emitted declarations.
// prefix is copied as is. Every rune of name that is not an ASCII letter or digit
// becomes '_', and with caps the letters of name are upper-cased.
func Basename(name, prefix string, caps bool) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(name))
	b.WriteString(prefix)

	for _, r := range name {
		switch {
		case !unicode.Is(alnum, r):
			b.WriteByte('_')
		case caps:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
