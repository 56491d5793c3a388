// Package util contains small helpers shared by the pattern parser and the
// public API.
package util

import (
	"strconv"
	"strings"
	"unicode"
)

// IsASCIIString reports whether s contains only ASCII bytes.
func IsASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}

	return true
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsIdentifier reports whether name is a valid group name:
// an ASCII letter or underscore followed by ASCII letters, digits or
// underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]

		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_':
		case IsDigit(c) && i > 0:
		default:
			return false
		}
	}

	return true
}

var quoteReplacer = strings.NewReplacer(`'`, `\'`, `\"`, `"`)

// Repr returns a quoted representation of a string, preferring single quotes.
func Repr(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 3)

	var quote byte
	if strings.IndexByte(s, '\'') < 0 || strings.IndexByte(s, '"') >= 0 {
		quote = '\''
	} else {
		quote = '"'
	}

	q := strconv.Quote(s)

	if quote == '\'' {
		b.WriteByte('\'')
		_, _ = quoteReplacer.WriteString(&b, q[1:len(q)-1])
		b.WriteByte('\'')
	} else {
		b.WriteString(q)
	}

	return b.String()
}
