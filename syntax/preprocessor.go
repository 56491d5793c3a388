package syntax

import (
	"fmt"
	"regexp/syntax"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/avigne/unire/ucp"
)

// Preprocessor translates a parsed pattern into the dialects of the two
// matching engines. The standard engine is preferred; FallbackPattern is
// used when IsSupported reports false.
type Preprocessor struct {
	p *subPattern
}

func NewPreprocessor(s string, flags int) (*Preprocessor, error) {
	sp, err := parse(s, flags)
	if err != nil {
		return nil, err
	}

	// properties must be expressible as rune sets before any pattern
	// string is produced
	if err := checkProperties(sp); err != nil {
		return nil, err
	}

	p := &Preprocessor{
		p: sp,
	}

	return p, nil
}

func checkProperties(p *subPattern) error {
	for _, item := range p.data {
		if err := checkNodeProperties(item); err != nil {
			return err
		}
	}

	return nil
}

func checkNodeProperties(t *node) error {
	switch t.opcode {
	case opProperty:
		p := t.params.(propertyParams)

		if _, err := ucp.RangeTable(p.prop); err != nil {
			return &Error{Msg: err.Error()}
		}
	case opIn:
		for _, item := range t.items() {
			if err := checkNodeProperties(item); err != nil {
				return err
			}
		}
	case opAssert, opAssertNot:
		return checkProperties(t.params.(assertParams).p)
	case opBranch:
		for _, item := range t.params.([]*subPattern) {
			if err := checkProperties(item); err != nil {
				return err
			}
		}
	case opGrouprefExists:
		p := t.params.(grouprefExParams)

		if err := checkProperties(p.itemYes); err != nil {
			return err
		}
		if p.itemNo != nil {
			return checkProperties(p.itemNo)
		}
	case opMinRepeat, opMaxRepeat, opPossessiveRepeat:
		return checkProperties(t.params.(repeatParams).item)
	case opSubpattern:
		return checkProperties(t.params.(subPatternParams).p)
	case opAtomicGroup:
		return checkProperties(t.params.(*subPattern))
	}

	return nil
}

func (p *Preprocessor) Flags() int {
	return p.p.state.flags
}

func (p *Preprocessor) GroupNames() map[string]int {
	return p.p.state.groupdict
}

// IsSupported checks, whether the current pattern is supported by the regexp
// engine of the Go stdlib.
func (p *Preprocessor) IsSupported() bool {
	return !p.p.isUnsupported()
}

// StdPattern returns the pattern in the dialect of the stdlib regexp package.
func (p *Preprocessor) StdPattern() string {
	var b strings.Builder

	flags := p.Flags()
	if flags&supportedFlags != 0 {
		b.WriteString("(?")

		if flags&FlagIgnoreCase != 0 {
			b.WriteByte('i')
		}
		if flags&FlagMultiline != 0 {
			b.WriteByte('m')
		}
		if flags&FlagDotAll != 0 {
			b.WriteByte('s')
		}

		b.WriteByte(')')
	}

	b.WriteString(p.p.string(func(w *subPatternWriter, t *node, ctx *subPatternContext) bool {
		return p.defaultReplacer(w, t, ctx, true)
	}))

	return b.String()
}

// FallbackPattern returns the pattern in the dialect of the fallback engine,
// together with a mapping of the renamed capture groups.
func (p *Preprocessor) FallbackPattern() (string, map[string]int) {
	groupMapping := make(map[string]int)

	var b strings.Builder
	b.WriteString(p.p.string(func(w *subPatternWriter, t *node, ctx *subPatternContext) bool {
		if p.defaultReplacer(w, t, ctx, false) {
			return true
		}

		if t.opcode == opSubpattern {
			// The preprocessor must only write subpatterns differently,
			// that have a group number.

			p := t.params.(subPatternParams)

			if p.group < 0 {
				return false
			}

			g := fmt.Sprintf("g%02d", p.group) // every group gets a unique group name to keep its order
			groupMapping[g] = p.group          // store the group position (determined from the parser) together with its new name

			w.WriteString("(?<")
			w.WriteString(g)
			w.WriteByte('>')
			if p.p.len() > 0 {
				w.writePattern(p.p, &p)
			}
			w.WriteByte(')')

			return true
		}

		return false
	}))

	return b.String(), groupMapping
}

// Character classes for the \d, \s, \w, \h and \v escapes and their negated
// counterparts. The positive classes are written into the pattern directly;
// the negated ones are only used to derive rune ranges when they appear
// inside a character set.
var unicodeRanges = map[catcode]string{
	categoryDigit:         `[\p{Nd}]`,
	categoryNotDigit:      `[^\p{Nd}]`,
	categorySpace:         `[\t-\r \x{85}\p{Z}]`,
	categoryNotSpace:      `[^\t-\r \x{85}\p{Z}]`,
	categoryWord:          `[\p{L}\p{N}_]`,
	categoryNotWord:       `[^\p{L}\p{N}_]`,
	categoryHorizSpace:    `[\t\p{Zs}]`,
	categoryNotHorizSpace: `[^\t\p{Zs}]`,
	categoryVertSpace:     `[\n-\r\x{85}\x{2028}\x{2029}]`,
	categoryNotVertSpace:  `[^\n-\r\x{85}\x{2028}\x{2029}]`,
}

func isNegatedCategory(c catcode) bool {
	switch c {
	case categoryNotDigit, categoryNotSpace, categoryNotWord,
		categoryNotHorizSpace, categoryNotVertSpace:
		return true
	default:
		return false
	}
}

// defaultReplacer rewrites the nodes whose written form differs from the
// parsed one: category escapes become their Unicode classes, \R becomes an
// explicit newline alternation and property tests become either a \p{...}
// class known to the engine or explicit rune ranges.
func (p *Preprocessor) defaultReplacer(w *subPatternWriter, t *node, ctx *subPatternContext, std bool) bool {
	switch t.opcode {
	case opCategory:
		category := t.params.(catcode)

		r, ok := unicodeRanges[category]
		if !ok {
			return false
		}

		if !ctx.inSet {
			// the class string is already a bracketed set
			w.WriteString(r)
			return true
		}

		if !isNegatedCategory(category) {
			w.WriteString(strings.TrimSuffix(strings.TrimPrefix(r, "["), "]"))
			return true
		}

		// A negated class cannot be spelled inside a character set, so the
		// ranges of all characters it contains are written instead.
		unirange, err := classRanges(r)
		if err != nil {
			return false
		}

		writeRanges(w, unirange)
		return true
	case opNewline:
		w.WriteString(`(?:\r\n|[\n-\r\x{85}\x{2028}\x{2029}])`)
		return true
	case opProperty:
		pm := t.params.(propertyParams)

		switch prop := pm.prop.(type) {
		case ucp.Category:
			writePropClass(w, prop.Code.String(), pm.negated)
			return true
		case ucp.Script:
			if std {
				writePropClass(w, prop.Code.String(), pm.negated)
				return true
			}
		case ucp.ScriptExt:
			if std {
				writePropClass(w, prop.Code.String(), pm.negated)
				return true
			}
		}

		// all remaining properties are spelled out as rune ranges
		rt, err := ucp.RangeTable(pm.prop)
		if err != nil {
			return false
		}

		unirange := tableRanges(rt)
		if pm.negated {
			unirange = negateRanges(unirange)
		}

		if len(unirange) == 0 {
			// the complement of the full code space matches nothing
			if !ctx.inSet {
				w.WriteString(`[^\x00-\x{10ffff}]`)
			}
			return true
		}

		if !ctx.inSet {
			w.WriteByte('[')
			writeRanges(w, unirange)
			w.WriteByte(']')
		} else {
			writeRanges(w, unirange)
		}

		return true
	}

	return false
}

// writePropClass writes a \p{...} class for a name both engines know.
func writePropClass(w *subPatternWriter, name string, negated bool) {
	if negated {
		w.WriteString(`\P{`)
	} else {
		w.WriteString(`\p{`)
	}
	w.WriteString(name)
	w.WriteByte('}')
}

func writeRanges(w *subPatternWriter, unirange []rune) {
	for i := 0; i < len(unirange); i += 2 {
		lo, hi := unirange[i], unirange[i+1]

		w.writeLiteral(lo)
		if lo != hi {
			w.WriteByte('-')
			w.writeLiteral(hi)
		}
	}
}

// classRanges determines the rune ranges of a character class by parsing it
// with the stdlib regexp parser.
func classRanges(s string) ([]rune, error) {
	re, err := syntax.Parse(s, syntax.Perl)
	if err != nil {
		return nil, err
	}

	if re.Op != syntax.OpCharClass {
		return nil, fmt.Errorf("expected regex syntax type %s, got %s", syntax.OpCharClass, re.Op)
	}

	return re.Rune, nil
}

// tableRanges flattens a range table into pairs of range bounds,
// expanding strides and merging adjacent ranges.
func tableRanges(rt *unicode.RangeTable) []rune {
	var unirange []rune

	add := func(lo, hi, stride rune) {
		if stride == 1 {
			unirange = appendRange(unirange, lo, hi)
			return
		}
		for c := lo; c <= hi; c += stride {
			unirange = appendRange(unirange, c, c)
		}
	}

	for _, r := range rt.R16 {
		add(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range rt.R32 {
		add(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}

	return unirange
}

func appendRange(unirange []rune, lo, hi rune) []rune {
	if n := len(unirange); n > 0 && unirange[n-1]+1 >= lo {
		if unirange[n-1] < hi {
			unirange[n-1] = hi
		}
		return unirange
	}

	return append(unirange, lo, hi)
}

// negateRanges complements a set of rune ranges. The surrogate block can
// never match, so it is treated as part of the set to keep it out of the
// written ranges.
func negateRanges(unirange []rune) []rune {
	unirange = slices.Clone(unirange)
	unirange = insertRange(unirange, 0xd800, 0xdfff)

	var out []rune
	next := rune(0)
	for i := 0; i < len(unirange); i += 2 {
		lo, hi := unirange[i], unirange[i+1]

		if lo > next {
			out = append(out, next, lo-1)
		}
		if hi+1 > next {
			next = hi + 1
		}
	}

	if next <= utf8.MaxRune {
		out = append(out, next, utf8.MaxRune)
	}

	return out
}

func insertRange(unirange []rune, lo, hi rune) []rune {
	i := 0
	for i < len(unirange) && unirange[i] < lo {
		i += 2
	}

	return slices.Insert(unirange, i, lo, hi)
}
