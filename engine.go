package unire

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/avigne/unire/syntax"
	"github.com/avigne/unire/util"
)

// regexEngine is the common interface of the two matching engines.
// Matches are reported as byte index pairs on the original string,
// in the same layout the stdlib regexp package uses.
type regexEngine interface {
	SubexpNames() []string
	NumSubexp() int
	SubexpIndex(name string) int
	find(s string) []int
	findAll(s string, n int) [][]int
	findFull(s string) []int
}

// compileEngine selects an engine for the preprocessed pattern.
// The stdlib engine is preferred; patterns using lookarounds, backreferences,
// atomic groups or possessive repeats fall back to regexp2.
func compileEngine(p *syntax.Preprocessor) (regexEngine, error) {
	if p.IsSupported() {
		pattern := p.StdPattern()

		r, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}

		// A second machine in leftmost-longest mode serves findFull: the
		// default leftmost-first match of "a|ab" on "ab" is "a", which
		// does not span the string even though "ab" would.
		longest, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		longest.Longest()

		return &stdEngine{re: r, longest: longest}, nil
	}

	pattern, groupMapping := p.FallbackPattern()

	flags := p.Flags()
	options := regexp2.None | regexp2.RE2 | regexp2.Unicode

	if flags&syntax.FlagIgnoreCase != 0 {
		options |= regexp2.IgnoreCase
	}
	if flags&syntax.FlagMultiline != 0 {
		options |= regexp2.Multiline
	}
	if flags&syntax.FlagDotAll != 0 {
		options |= regexp2.Singleline
	}

	r2, err := regexp2.Compile(pattern, options)
	if err != nil {
		return nil, err
	}

	// The backtracking engine has no longest-match mode, so findFull uses an
	// anchored variant that forces backtracking into a spanning alternative.
	full, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, options)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(groupMapping)+1)
	for name, gid := range p.GroupNames() {
		if gid < len(names) {
			names[gid] = name
		}
	}

	return &advEngine{
		re:           r2,
		full:         full,
		names:        names,
		groupMapping: groupMapping,
	}, nil
}

type stdEngine struct {
	re      *regexp.Regexp
	longest *regexp.Regexp
}

var _ regexEngine = (*stdEngine)(nil)

func (r *stdEngine) SubexpNames() []string {
	return r.re.SubexpNames()
}

func (r *stdEngine) NumSubexp() int {
	return r.re.NumSubexp()
}

func (r *stdEngine) SubexpIndex(name string) int {
	return r.re.SubexpIndex(name)
}

func (r *stdEngine) find(s string) []int {
	s, offsets := replaceInvalidChars(s)

	a := r.re.FindStringSubmatchIndex(s)
	applyOffsets(a, offsets)

	return a
}

func (r *stdEngine) findFull(s string) []int {
	orig := s
	s, offsets := replaceInvalidChars(s)

	// in leftmost-longest mode, the match at position 0 is the longest one,
	// so a single span check suffices
	a := r.longest.FindStringSubmatchIndex(s)
	applyOffsets(a, offsets)

	if a == nil || a[0] != 0 || a[1] != len(orig) {
		return nil
	}

	return a
}

func (r *stdEngine) findAll(s string, n int) [][]int {
	s, offsets := replaceInvalidChars(s)

	matches := r.re.FindAllStringSubmatchIndex(s, n)
	for _, a := range matches {
		applyOffsets(a, offsets)
	}

	return matches
}

// replaceInvalidChars replaces invalid UTF-8 bytes with legal codepoints.
// This is necessary, because the Go regex engine can only match valid UTF-8
// codepoints instead of arbitrary bytes.
// If the string does not contain any invalid UTF-8 bytes, the string is
// returned unchanged, and `nil` is returned for the offset slice.
func replaceInvalidChars(s string) (string, []int) {
	if utf8.ValidString(s) { // if no invalid utf8 values exist, we can skip everything else
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) + 4) // reserve 4 extra bytes

	offsets := make([]int, 0, len(s)+4+1) // reserve 4 extra offsets (+1 for the last offset)
	offset := 0

	for len(s) > 0 {
		ch, size := utf8.DecodeRuneInString(s)

		if ch != utf8.RuneError {
			b.WriteRune(ch)

			for i := 0; i < size; i++ {
				offsets = append(offsets, offset)
			}
		} else {
			t := string(s[0])
			b.WriteString(t)

			// At this point, `s[0]` is in range 128-255, so
			// `t` is either of format '\xc2\x..' or '\xc3\x..',
			// so two offsets must be added to the offset slice.
			// Also because one more element is added to the string, that previously not existed,
			// the second offset must be decreased by one.
			offsets = append(offsets, offset, offset-1)
			offset--
		}

		s = s[size:] // if the rune is not valid, the size returned is 1, so slicing with `size` is correct
	}

	// append a last offset value, that corresponds to `len(s)`
	offsets = append(offsets, offset)

	return b.String(), offsets
}

func applyOffsets(a []int, offsets []int) {
	if a == nil || offsets == nil {
		return
	}
	for i, v := range a {
		if v >= 0 {
			a[i] = v + offsets[v]
		}
	}
}

type advEngine struct {
	re           *regexp2.Regexp
	full         *regexp2.Regexp // anchored variant for whole-string matching
	names        []string        // original group names by group number; "" for unnamed groups
	groupMapping map[string]int  // the fallback pattern renames all groups, so the original numbering must be saved
}

var _ regexEngine = (*advEngine)(nil)

func (r *advEngine) SubexpNames() []string {
	return r.names
}

func (r *advEngine) NumSubexp() int {
	return len(r.groupMapping)
}

func (r *advEngine) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}

	for i, n := range r.names {
		if n == name {
			return i
		}
	}

	return -1
}

func (r *advEngine) find(s string) []int {
	chars, offsetsByte := getRuneOffsets(s)

	m, err := r.re.FindRunesMatch(chars)
	if err != nil || m == nil {
		return nil
	}

	return r.matchIndices(m, offsetsByte)
}

func (r *advEngine) findFull(s string) []int {
	chars, offsetsByte := getRuneOffsets(s)

	m, err := r.full.FindRunesMatch(chars)
	if err != nil || m == nil {
		return nil
	}

	return r.matchIndices(m, offsetsByte)
}

func (r *advEngine) findAll(s string, n int) [][]int {
	chars, offsetsByte := getRuneOffsets(s)

	var matches [][]int

	m, err := r.re.FindRunesMatch(chars)
	for err == nil && m != nil {
		if n >= 0 && len(matches) == n {
			break
		}

		matches = append(matches, r.matchIndices(m, offsetsByte))
		m, err = r.re.FindNextMatch(m)
	}

	if len(matches) == 0 {
		return nil
	}

	return matches
}

func (r *advEngine) matchIndices(m *regexp2.Match, offsetsByte []int) []int {
	a := make([]int, 2*(r.NumSubexp()+1))
	for i := range a {
		a[i] = -1
	}

	whole := m.Groups()[0]
	a[0] = whole.Index
	a[1] = whole.Index + whole.Length

	// the renamed groups carry the original numbering
	for name, gid := range r.groupMapping {
		g := m.GroupByName(name)
		if g == nil || len(g.Captures) == 0 {
			continue
		}

		a[2*gid] = g.Index
		a[2*gid+1] = g.Index + g.Length
	}

	// rune indices to byte indices
	if offsetsByte != nil {
		for i, v := range a {
			if v >= 0 {
				a[i] = v + offsetsByte[v]
			}
		}
	}

	return a
}

// getRuneOffsets converts a string to runes, together with an offset slice
// for converting rune indices back to byte indices. Invalid bytes are kept
// as their codepoint values, matching the replacement done for the stdlib
// engine.
func getRuneOffsets(s string) ([]rune, []int) {
	if util.IsASCIIString(s) { // if the string has only ASCII characters, offsets are not necessary
		return []rune(s), nil
	}

	chars := make([]rune, 0, len(s))

	offsetsByte := make([]int, 0, len(s)+4) // reserve 4 extra offsets
	offset := 0

	for len(s) > 0 {
		ch, size := utf8.DecodeRuneInString(s)
		incr := size - 1

		if ch == utf8.RuneError {
			ch = rune(s[0])
			incr = utf8.RuneLen(ch) - 1
		}

		chars = append(chars, ch)

		offsetsByte = append(offsetsByte, offset)
		offset += incr

		s = s[size:] // if the rune is not valid, the size returned is 1, so slicing with `size` is correct
	}

	offsetsByte = append(offsetsByte, offset)

	return chars, offsetsByte
}
