// Package unire implements a PCRE-flavored regular expression layer with
// full Unicode property support on top of the stdlib regexp package, falling
// back to regexp2 for patterns using lookarounds, backreferences, atomic
// groups or possessive repeats.
package unire

import (
	"strings"

	"github.com/avigne/unire/syntax"
	"github.com/avigne/unire/util"
)

// Possible flags for the flags parameter of Compile.
const (
	IgnoreCase = syntax.FlagIgnoreCase
	Multiline  = syntax.FlagMultiline
	DotAll     = syntax.FlagDotAll
	Extended   = syntax.FlagExtended
)

// Regexp is a compiled regular expression.
// It is safe for concurrent use by multiple goroutines.
type Regexp struct {
	pattern string
	flags   int
	re      regexEngine
}

// Compile parses a pattern and compiles it for matching.
func Compile(pattern string, flags int) (*Regexp, error) {
	p, err := syntax.NewPreprocessor(pattern, flags)
	if err != nil {
		return nil, err
	}

	re, err := compileEngine(p)
	if err != nil {
		return nil, err
	}

	return &Regexp{
		pattern: pattern,
		flags:   p.Flags(),
		re:      re,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, flags int) *Regexp {
	re, err := Compile(pattern, flags)
	if err != nil {
		panic(`unire: Compile(` + util.Repr(pattern) + `): ` + err.Error())
	}

	return re
}

// String returns the source pattern.
func (re *Regexp) String() string {
	return re.pattern
}

// Flags returns the compile flags, including inline global flags.
func (re *Regexp) Flags() int {
	return re.flags
}

// NumSubexp returns the number of capture groups.
func (re *Regexp) NumSubexp() int {
	return re.re.NumSubexp()
}

// SubexpNames returns the names of the capture groups, indexed by group
// number. Unnamed groups have an empty name.
func (re *Regexp) SubexpNames() []string {
	return re.re.SubexpNames()
}

// SubexpIndex returns the number of the group with the given name, or -1.
func (re *Regexp) SubexpIndex(name string) int {
	return re.re.SubexpIndex(name)
}

// MatchString reports whether the pattern matches somewhere in s.
func (re *Regexp) MatchString(s string) bool {
	return re.re.find(s) != nil
}

// FindString returns the text of the leftmost match, or "" if there is none.
// Use FindStringIndex to distinguish an empty match from no match.
func (re *Regexp) FindString(s string) string {
	a := re.re.find(s)
	if a == nil {
		return ""
	}

	return s[a[0]:a[1]]
}

// FindStringIndex returns the byte index pair of the leftmost match,
// or nil if there is none.
func (re *Regexp) FindStringIndex(s string) []int {
	a := re.re.find(s)
	if a == nil {
		return nil
	}

	return a[:2]
}

// FindStringSubmatch returns the texts of the leftmost match and its groups.
// Groups that did not participate in the match yield "".
func (re *Regexp) FindStringSubmatch(s string) []string {
	a := re.re.find(s)
	if a == nil {
		return nil
	}

	return submatchStrings(s, a)
}

// FindStringSubmatchIndex returns the byte index pairs of the leftmost match
// and its groups. Groups that did not participate yield the pair -1, -1.
func (re *Regexp) FindStringSubmatchIndex(s string) []int {
	return re.re.find(s)
}

// FindAllString returns the texts of all non-overlapping matches.
// If n >= 0, at most n matches are returned.
func (re *Regexp) FindAllString(s string, n int) []string {
	matches := re.re.findAll(s, n)
	if matches == nil {
		return nil
	}

	res := make([]string, len(matches))
	for i, a := range matches {
		res[i] = s[a[0]:a[1]]
	}

	return res
}

// FindAllStringIndex returns the byte index pairs of all non-overlapping
// matches.
func (re *Regexp) FindAllStringIndex(s string, n int) [][]int {
	matches := re.re.findAll(s, n)
	if matches == nil {
		return nil
	}

	res := make([][]int, len(matches))
	for i, a := range matches {
		res[i] = a[:2]
	}

	return res
}

// FindAllStringSubmatch returns the texts of all non-overlapping matches and
// their groups.
func (re *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	matches := re.re.findAll(s, n)
	if matches == nil {
		return nil
	}

	res := make([][]string, len(matches))
	for i, a := range matches {
		res[i] = submatchStrings(s, a)
	}

	return res
}

// FindAllStringSubmatchIndex returns the byte index pairs of all
// non-overlapping matches and their groups.
func (re *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	return re.re.findAll(s, n)
}

// fullMatchIndex returns the byte index pairs of a match spanning all of s,
// or nil if no such match exists. Unlike find, it considers every
// alternative, not just the leftmost-first one.
func (re *Regexp) fullMatchIndex(s string) []int {
	return re.re.findFull(s)
}

func submatchStrings(s string, a []int) []string {
	res := make([]string, len(a)/2)
	for i := range res {
		if a[2*i] >= 0 {
			res[i] = s[a[2*i]:a[2*i+1]]
		}
	}

	return res
}

// ReplaceAllString returns src with all matches replaced by the expansion of
// the template repl. Inside repl, $1, ${1} and ${name} insert submatches and
// $$ inserts a literal dollar sign.
func (re *Regexp) ReplaceAllString(src, repl string) string {
	return re.replaceAll(src, func(b *strings.Builder, a []int) {
		re.expand(b, repl, src, a)
	})
}

// ReplaceAllStringFunc returns src with all matches replaced by the return
// value of repl applied to the matched text.
func (re *Regexp) ReplaceAllStringFunc(src string, repl func(string) string) string {
	return re.replaceAll(src, func(b *strings.Builder, a []int) {
		b.WriteString(repl(src[a[0]:a[1]]))
	})
}

func (re *Regexp) replaceAll(src string, write func(b *strings.Builder, a []int)) string {
	matches := re.re.findAll(src, -1)
	if matches == nil {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))

	last := 0
	for _, a := range matches {
		b.WriteString(src[last:a[0]])
		write(&b, a)
		last = a[1]
	}
	b.WriteString(src[last:])

	return b.String()
}

// Split slices s into substrings separated by matches of the pattern.
// If n >= 0, at most n separators are applied.
func (re *Regexp) Split(s string, n int) []string {
	matches := re.re.findAll(s, n)
	if matches == nil {
		return []string{s}
	}

	res := make([]string, 0, len(matches)+1)

	last := 0
	for _, a := range matches {
		// empty matches directly after a previous match are skipped,
		// so splitting on a pattern that can match empty does not
		// produce empty fields between every character pair
		if a[0] == a[1] && a[0] == last && last > 0 {
			continue
		}

		res = append(res, s[last:a[0]])
		last = a[1]
	}
	res = append(res, s[last:])

	return res
}
