package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeName makes a file name safe to draw in a terminal. Names come
// straight from the filesystem and may carry escape sequences or bidi
// overrides: control characters become '?', line breaks and tabs become
// spaces, and invisible formatting runes are shown as <U+XXXX>.
func SanitizeName(name string) string {
	for _, r := range name {
		if unsafeRune(r) {
			return sanitize(name)
		}
	}
	return name
}

func unsafeRune(r rune) bool {
	return unicode.IsControl(r) || unicode.In(r, unicode.Cf, unicode.Zl, unicode.Zp)
}

func sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case unicode.In(r, unicode.Cf, unicode.Zl, unicode.Zp):
			fmt.Fprintf(&b, "<U+%04X>", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
