package ucp

import (
	"errors"
	"testing"
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

func TestRangeTable(t *testing.T) {
	tests := []struct {
		prop Property
		in   []rune
		out  []rune
	}{
		{Any{}, []rune{0, 'a', '￿', unicode.MaxRune}, nil},
		{CasedLetter{}, []rune{'a', 'A', 'Ǆ'}, []rune{'1', 'ʰ', ' '}},
		{Alnum{}, []rune{'a', '5', 'Ⅷ'}, []rune{'_', ' ', '-'}},
		{Space{}, []rune{' ', '\t', '\n', 0x85, ' '}, []rune{'a', '_'}},
		{Word{}, []rune{'a', '5', '_', 'ä'}, []rune{' ', '-'}},
		{UCNC{}, []rune{'$', '@', '`', 0xa0, '€'}, []rune{'a', '0', ' '}},
		{Category{CatLu}, []rune{'A', 'Ä'}, []rune{'a', '1'}},
		{Category{CatL}, []rune{'a', 'A', 'ʰ'}, []rune{'1', ' '}},
		{Category{CatNd}, []rune{'0', '٣'}, []rune{'a', 'Ⅷ'}},
		{Category{CatCn}, []rune{0x378}, []rune{'a', ' ', 0x85}},
		{Script{ScLatin}, []rune{'a', 'Z'}, []rune{'α', '5'}},
		{ScriptExt{ScGreek}, []rune{'α', 'Ω'}, []rune{'a', 'я'}},
		{Script{ScHan}, []rune{'漢'}, []rune{'a'}},
		{Binary{BinASCII}, []rune{0, 'a', 0x7f}, []rune{0x80, 'ä'}},
		{Binary{BinAlphabetic}, []rune{'a', 'Ω', 'ﬀ'}, []rune{'1', ' '}},
		{Binary{BinBidiControl}, []rune{0x200e, 0x2066}, []rune{'a'}},
		{Binary{BinWhiteSpace}, []rune{' ', '\t'}, []rune{'a'}},
		{Binary{BinMath}, []rune{'+', '∑'}, []rune{'a', '1'}},
		{Binary{BinIDStart}, []rune{'a', 'Ω'}, []rune{'1', '_', ' '}},
		{Binary{BinIDContinue}, []rune{'a', '1', '_'}, []rune{' ', '+'}},
		{BidiClass{bidi.AL}, []rune{'ا'}, []rune{'a', '1'}},
		{BidiClass{bidi.EN}, []rune{'0', '9'}, []rune{'a', '١'}},
		{BidiClass{bidi.WS}, []rune{' ', ' '}, []rune{'a', '\n'}},
	}

	for _, tt := range tests {
		rt, err := RangeTable(tt.prop)
		if err != nil {
			t.Errorf("RangeTable(%v): %v", tt.prop, err)
			continue
		}

		for _, r := range tt.in {
			if !unicode.Is(rt, r) {
				t.Errorf("%v: %U not in table", tt.prop, r)
			}
		}
		for _, r := range tt.out {
			if unicode.Is(rt, r) {
				t.Errorf("%v: %U unexpectedly in table", tt.prop, r)
			}
		}
	}
}

func TestRangeTableUnsupported(t *testing.T) {
	for _, p := range []Property{
		Binary{BinEmoji},
		Binary{BinBidiMirrored},
		Binary{BinGraphemeBase},
	} {
		_, err := RangeTable(p)
		if err == nil {
			t.Errorf("RangeTable(%v) succeeded, expected an error", p)
			continue
		}

		var ue *UnsupportedError
		if !errors.As(err, &ue) {
			t.Errorf("RangeTable(%v): error type %T, want *UnsupportedError", p, err)
		}
	}
}

// Every script name referenced by the table must exist in the unicode
// package, so that script tests cannot fail at match time.
func TestScriptTables(t *testing.T) {
	for c := ScriptCode(0); c < numScriptCodes; c++ {
		if _, err := scriptTable(c); err != nil {
			t.Errorf("script %s: %v", c, err)
		}
	}
}

func TestCategoryTables(t *testing.T) {
	for c := CategoryCode(0); c < numCategoryCodes; c++ {
		if _, err := categoryTable(c); err != nil {
			t.Errorf("category %s: %v", c, err)
		}
	}
}

// PerlSpace and Space resolve to different properties but must match the
// same set.
func TestSpaceSets(t *testing.T) {
	a, err := RangeTable(Space{})
	if err != nil {
		t.Fatal(err)
	}

	b, err := RangeTable(PerlSpace{})
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Error("Space and PerlSpace use different tables")
	}
}
