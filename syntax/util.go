package syntax

import (
	"strconv"

	"github.com/avigne/unire/util"
)

func isDigitString(s string) bool {
	for i := 0; i < len(s); i++ {
		if !util.IsDigit(s[i]) {
			return false
		}
	}

	return true
}

func isASCIILetter(b rune) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isOctDigit(b rune) bool {
	return '0' <= b && b <= '7'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// precondition: b must be in set "0123456789"
func digit(b rune) int {
	return int(b) - '0'
}

func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isFlag(c rune) bool {
	switch c {
	case 'i', 'm', 's', 'x':
		return true
	default:
		return false
	}
}

func getFlag(c rune) int {
	switch c {
	case 'i':
		return FlagIgnoreCase
	case 'm':
		return FlagMultiline
	case 's':
		return FlagDotAll
	case 'x':
		return FlagExtended
	default:
		return 0
	}
}

func isRepeatCode(o opcode) bool {
	switch o {
	case opMinRepeat, opMaxRepeat, opPossessiveRepeat:
		return true
	default:
		return false
	}
}

// assertion: string is valid and does not overflow int
func parseIntRune(s string, base int) rune {
	r, _ := strconv.ParseUint(s, base, 32)
	return rune(r)
}
