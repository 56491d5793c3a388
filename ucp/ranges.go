package ucp

import (
	"fmt"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/rangetable"
)

// UnsupportedError is returned by RangeTable for properties that resolve
// but whose code point set cannot be derived from the available Unicode
// tables. Resolution and matching are separate capabilities; a name may be
// recognized even if no set exists for it.
type UnsupportedError struct {
	Prop Property
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no code point data for property %s", e.Prop)
}

// RangeTable returns the set of code points matched by the property.
// The returned table is shared and must not be modified.
//
// Script extension tests fall back to the plain script set, because the
// Script_Extensions data is not available in the unicode package.
func RangeTable(p Property) (*unicode.RangeTable, error) {
	switch p := p.(type) {
	case Any:
		return anyTable, nil
	case CasedLetter:
		return casedLetter(), nil
	case Alnum:
		return alnum(), nil
	case Space, PerlSpace:
		return space(), nil
	case Word:
		return word(), nil
	case UCNC:
		return ucnc, nil
	case Category:
		return categoryTable(p.Code)
	case Binary:
		return binaryTable(p.Code)
	case Script:
		return scriptTable(p.Code)
	case ScriptExt:
		return scriptTable(p.Code)
	case BidiClass:
		return bidiTable(p.Class), nil
	}

	return nil, &UnsupportedError{Prop: p}
}

var anyTable = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0, Hi: 0xffff, Stride: 1}},
	R32: []unicode.Range32{{Lo: 0x10000, Hi: unicode.MaxRune, Stride: 1}},
}

var asciiTable = &unicode.RangeTable{
	R16:         []unicode.Range16{{Lo: 0, Hi: 0x7f, Stride: 1}},
	LatinOffset: 1,
}

var ucnc = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: '$', Hi: '$', Stride: 1},
		{Lo: '@', Hi: '@', Stride: 1},
		{Lo: '`', Hi: '`', Stride: 1},
		{Lo: 0xa0, Hi: 0xffff, Stride: 1},
	},
	R32:         []unicode.Range32{{Lo: 0x10000, Hi: unicode.MaxRune, Stride: 1}},
	LatinOffset: 3,
}

// Merged and derived tables are built on first use and then shared.
var (
	casedLetter = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt)
	})

	alnum = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.L, unicode.N)
	})

	space = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.Z, &unicode.RangeTable{
			R16: []unicode.Range16{
				{Lo: '\t', Hi: '\r', Stride: 1}, // HT, LF, VT, FF, CR
				{Lo: 0x85, Hi: 0x85, Stride: 1}, // NEL
			},
			LatinOffset: 2,
		})
	})

	word = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.L, unicode.N, &unicode.RangeTable{
			R16:         []unicode.Range16{{Lo: '_', Hi: '_', Stride: 1}},
			LatinOffset: 1,
		})
	})

	alphabetic = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_Alphabetic)
	})

	cased = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt,
			unicode.Other_Uppercase, unicode.Other_Lowercase)
	})

	lowercase = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.Ll, unicode.Other_Lowercase)
	})

	uppercase = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.Lu, unicode.Other_Uppercase)
	})

	mathProp = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.Sm, unicode.Other_Math)
	})

	graphemeExtend = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.Me, unicode.Mn, unicode.Other_Grapheme_Extend)
	})

	idStart = sync.OnceValue(func() *unicode.RangeTable {
		return derived(isIDStart)
	})

	idContinue = sync.OnceValue(func() *unicode.RangeTable {
		return derived(func(r rune) bool {
			return isIDStart(r) ||
				unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
		})
	})

	unassigned = sync.OnceValue(func() *unicode.RangeTable {
		return derived(func(r rune) bool {
			return !unicode.In(r, unicode.C, unicode.L, unicode.M,
				unicode.N, unicode.P, unicode.S, unicode.Z)
		})
	})

	unknownScript = sync.OnceValue(func() *unicode.RangeTable {
		tables := make([]*unicode.RangeTable, 0, len(unicode.Scripts))
		for _, t := range unicode.Scripts {
			tables = append(tables, t)
		}
		known := rangetable.Merge(tables...)

		return derived(func(r rune) bool {
			return !unicode.Is(known, r)
		})
	})
)

func isIDStart(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

// derived builds a range table by scanning the whole code space.
// Only used for sets that need subtraction or complement; plain unions
// are merged directly from the stdlib tables.
func derived(include func(rune) bool) *unicode.RangeTable {
	var runes []rune
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if utf8.ValidRune(r) && include(r) {
			runes = append(runes, r)
		}
	}

	return rangetable.New(runes...)
}

func categoryTable(c CategoryCode) (*unicode.RangeTable, error) {
	if c == CatCn {
		// Cn (unassigned) has no stdlib table; it is the complement of
		// all assigned code points.
		return unassigned(), nil
	}

	if t, ok := unicode.Categories[categoryNames[c]]; ok {
		return t, nil
	}

	return nil, &UnsupportedError{Prop: Category{Code: c}}
}

func scriptTable(c ScriptCode) (*unicode.RangeTable, error) {
	if c == ScUnknown {
		return unknownScript(), nil
	}

	if t, ok := unicode.Scripts[scriptNames[c]]; ok {
		return t, nil
	}

	return nil, &UnsupportedError{Prop: Script{Code: c}}
}

func binaryTable(c BinaryCode) (*unicode.RangeTable, error) {
	switch c {
	case BinASCII:
		return asciiTable, nil
	case BinAlphabetic:
		return alphabetic(), nil
	case BinCased:
		return cased(), nil
	case BinLowercase:
		return lowercase(), nil
	case BinUppercase:
		return uppercase(), nil
	case BinMath:
		return mathProp(), nil
	case BinGraphemeExtend:
		return graphemeExtend(), nil
	case BinIDStart, BinXIDStart:
		// XID differs from ID only in the NFKC closure, which removes a
		// handful of code points; the ID set is used for both.
		return idStart(), nil
	case BinIDContinue, BinXIDContinue:
		return idContinue(), nil
	}

	if t, ok := unicode.Properties[binaryNames[c]]; ok {
		return t, nil
	}

	return nil, &UnsupportedError{Prop: Binary{Code: c}}
}

// Bidi class sets are derived from x/text's bidi trie. A single scan of the
// code space fills the tables for all classes at once.
var bidiTables = sync.OnceValue(func() map[bidi.Class]*unicode.RangeTable {
	runes := make(map[bidi.Class][]rune)

	var buf [utf8.UTFMax]byte
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}

		n := utf8.EncodeRune(buf[:], r)
		p, _ := bidi.Lookup(buf[:n])

		c := p.Class()
		runes[c] = append(runes[c], r)
	}

	tables := make(map[bidi.Class]*unicode.RangeTable, len(runes))
	for c, rs := range runes {
		tables[c] = rangetable.New(rs...)
	}

	return tables
})

func bidiTable(c bidi.Class) *unicode.RangeTable {
	t, ok := bidiTables()[c]
	if !ok {
		// no code point currently has this class
		return &unicode.RangeTable{}
	}

	return t
}
