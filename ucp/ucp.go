// Package ucp resolves Unicode property names, as they appear in \p{...}
// and \P{...} pattern escapes, to their canonical property values.
//
// Names are matched loosely, following the Unicode convention that Perl
// and PCRE use: ASCII letters are compared case-insensitively and
// underscores are ignored, so "Bidi_Control", "bidicontrol" and
// "BIDICONTROL" all resolve to the same property.
package ucp

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Property is the resolved value of a property name. It is a closed set of
// types: Any, CasedLetter, Alnum, Space, PerlSpace, Word, UCNC, Category,
// Binary, Script, ScriptExt and BidiClass.
type Property interface {
	property()
	String() string
}

type (
	// Any matches every code point.
	Any struct{}

	// CasedLetter is the "L&" pseudo-category: titlecase, uppercase and
	// lowercase letters (Lu, Ll and Lt).
	CasedLetter struct{}

	// Alnum matches alphanumeric characters (categories L and N).
	Alnum struct{}

	// Space matches white space, i.e. category Z plus the control
	// characters HT, LF, VT, FF, CR and NEL.
	Space struct{}

	// PerlSpace matches Perl white space. Since Perl added VT to its white
	// space set, it is the same set as Space.
	PerlSpace struct{}

	// Word matches word characters: alphanumerics and the underscore.
	Word struct{}

	// UCNC matches characters that may appear in an universal character
	// name: '$', '@', '`' and every code point of at least U+00A0.
	UCNC struct{}

	// Category is a general category test, either a one-letter group such
	// as L or a two-letter particular category such as Lu.
	Category struct {
		Code CategoryCode
	}

	// Binary is a binary (yes/no) property test such as Alphabetic.
	Binary struct {
		Code BinaryCode
	}

	// Script is a plain script test.
	Script struct {
		Code ScriptCode
	}

	// ScriptExt is a script test that also takes the Script_Extensions
	// property into account.
	ScriptExt struct {
		Code ScriptCode
	}

	// BidiClass is a bidirectional class test.
	BidiClass struct {
		Class bidi.Class
	}
)

func (Any) property()         {}
func (CasedLetter) property() {}
func (Alnum) property()       {}
func (Space) property()       {}
func (PerlSpace) property()   {}
func (Word) property()        {}
func (UCNC) property()        {}
func (Category) property()    {}
func (Binary) property()      {}
func (Script) property()      {}
func (ScriptExt) property()   {}
func (BidiClass) property()   {}

func (Any) String() string         { return "any" }
func (CasedLetter) String() string { return "cased letter (L&)" }
func (Alnum) String() string       { return "alphanumeric" }
func (Space) String() string       { return "white space" }
func (PerlSpace) String() string   { return "perl white space" }
func (Word) String() string        { return "word character" }
func (UCNC) String() string        { return "universal character name" }

func (p Category) String() string  { return "category " + p.Code.String() }
func (p Binary) String() string    { return "binary property " + p.Code.String() }
func (p Script) String() string    { return "script " + p.Code.String() }
func (p ScriptExt) String() string { return "script extensions " + p.Code.String() }
func (p BidiClass) String() string { return "bidi class " + bidiClassName(p.Class) }

// String returns the canonical Unicode name of the category.
func (c CategoryCode) String() string {
	if c >= numCategoryCodes {
		return "???"
	}
	return categoryNames[c]
}

// String returns the canonical Unicode name of the binary property.
func (c BinaryCode) String() string {
	if c >= numBinaryCodes {
		return "???"
	}
	return binaryNames[c]
}

// String returns the canonical Unicode name of the script.
func (c ScriptCode) String() string {
	if c >= numScriptCodes {
		return "???"
	}
	return scriptNames[c]
}

var bidiClassNames = map[bidi.Class]string{
	bidi.L:   "L",
	bidi.R:   "R",
	bidi.EN:  "EN",
	bidi.ES:  "ES",
	bidi.ET:  "ET",
	bidi.AN:  "AN",
	bidi.CS:  "CS",
	bidi.B:   "B",
	bidi.S:   "S",
	bidi.WS:  "WS",
	bidi.ON:  "ON",
	bidi.BN:  "BN",
	bidi.NSM: "NSM",
	bidi.AL:  "AL",
	bidi.LRO: "LRO",
	bidi.RLO: "RLO",
	bidi.LRE: "LRE",
	bidi.RLE: "RLE",
	bidi.PDF: "PDF",
	bidi.LRI: "LRI",
	bidi.RLI: "RLI",
	bidi.FSI: "FSI",
	bidi.PDI: "PDI",
}

func bidiClassName(c bidi.Class) string {
	if n, ok := bidiClassNames[c]; ok {
		return n
	}
	return "???"
}

// NotFoundError is returned by Resolve for unrecognized property names.
// It carries the name exactly as the caller supplied it, so that pattern
// compilers can report the original spelling.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown property name %q", e.Name)
}

// propertyName is one row of the sorted name table.
type propertyName struct {
	name string
	prop Property
}

// Resolve maps a property name to its property value.
// The name is normalized before the lookup; see the package comment.
// If no property with this name exists, an error of type *NotFoundError
// is returned.
func Resolve(name string) (Property, error) {
	i, ok := slices.BinarySearchFunc(propertyNames[:], normalize(name), func(e propertyName, key string) int {
		return strings.Compare(e.name, key)
	})
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	return propertyNames[i].prop, nil
}

// normalize lowercases ASCII letters and removes underscores.
// All other characters, in particular the '&' of "L&", pass through
// unchanged; names containing them simply never match the table.
func normalize(name string) string {
	// common case: the name is already in normalized form
	i := 0
	for i < len(name) {
		c := name[i]
		if c == '_' || ('A' <= c && c <= 'Z') {
			break
		}
		i++
	}
	if i == len(name) {
		return name
	}

	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(name[:i])

	for ; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
			// skip
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// NumEntries returns the number of recognized property names.
func NumEntries() int {
	return len(propertyNames)
}

// Entry returns the normalized name and the property of table entry i.
// Entries are sorted by name in ascending order.
func Entry(i int) (string, Property) {
	e := propertyNames[i]
	return e.name, e.prop
}
