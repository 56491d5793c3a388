package syntax

import (
	"strings"
	"testing"
)

func TestStdPattern(t *testing.T) {
	tests := []struct {
		pattern string
		flags   int
		want    string
	}{
		{`a`, 0, `\x61`},
		{`a`, FlagIgnoreCase, `(?i)\x61`},
		{`a`, FlagIgnoreCase | FlagMultiline | FlagDotAll, `(?ims)\x61`},
		{`a|b|c`, 0, `[\x61\x62\x63]`},
		{`^a$`, 0, `^\x61$`},
		{`\Aa\z`, 0, `\A\x61\z`},
		{`a.`, 0, `\x61.`},
		{`a{2,4}`, 0, `\x61{2,4}`},
		{`a{2,}`, 0, `\x61{2,}`},
		{`(?:ab)+?`, 0, `(?:\x61\x62)+?`},
		{`\d`, 0, `[\p{Nd}]`},
		{`[^\d]`, 0, `[^\p{Nd}]`},
		{`\w+`, 0, `[\p{L}\p{N}_]+`},
		{`\h`, 0, `[\t\p{Zs}]`},
		{`\p{L}`, 0, `\p{L}`},
		{`\p{Lu}+`, 0, `\p{Lu}+`},
		{`\P{L}`, 0, `\P{L}`},
		{`\p{^L}`, 0, `\P{L}`},
		{`\P{^L}`, 0, `\p{L}`},
		{`\pL`, 0, `\p{L}`},
		{`\p{Greek}`, 0, `\p{Greek}`},
		{`\p{sc:Greek}`, 0, `\p{Greek}`},
		{`\p{scx:Greek}`, 0, `\p{Greek}`},
		{`[\p{L}\p{Nd}]`, 0, `[\p{L}\p{Nd}]`},
		{`\N`, 0, `[^\x0a]`},
		{`\x41`, 0, `\x41`},
		{`\x{1F600}`, 0, `\x{0001f600}`},
		{`\o{101}`, 0, `\x41`},
		{`\e`, 0, `\x1b`},
		{`\cA`, 0, `\x01`},
		{`(?P<y>\d)`, 0, `(?P<y>[\p{Nd}])`},
		{`(?<y>\d)`, 0, `(?P<y>[\p{Nd}])`},
		{`[[:digit:]]`, 0, `[\p{Nd}]`},
		{`[[:alpha:]]`, 0, `[\p{L}]`},
		{`(?i)a`, 0, `(?i)\x61`},
		{`# comment
a`, FlagExtended, `\x61`},
	}

	for _, test := range tests {
		p, err := NewPreprocessor(test.pattern, test.flags)
		if err != nil {
			t.Errorf("NewPreprocessor(%q) failed: %v", test.pattern, err)
			continue
		}

		if !p.IsSupported() {
			t.Errorf("pattern %q unexpectedly needs the fallback engine", test.pattern)
			continue
		}

		if got := p.StdPattern(); got != test.want {
			t.Errorf("StdPattern(%q) = %q, want %q", test.pattern, got, test.want)
		}
	}
}

func TestStdPatternExtendedFlagNotWritten(t *testing.T) {
	// the extended flag is consumed at parse time and must not appear in the
	// engine pattern
	p, err := NewPreprocessor(`a b`, FlagExtended)
	if err != nil {
		t.Fatal(err)
	}

	want := `\x61\x62`
	if got := p.StdPattern(); got != want {
		t.Fatalf("StdPattern() = %q, want %q", got, want)
	}
}

func TestFallbackPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
		groups  map[string]int
	}{
		{`(?<=a)b`, `(?<=\x61)\x62`, map[string]int{}},
		{`(a)\1`, `(?<g01>\x61)\1`, map[string]int{"g01": 1}},
		{`a*+`, `\x61*+`, map[string]int{}},
		{`(?>ab)`, `(?>\x61\x62)`, map[string]int{}},
		{`(?P<w>a)\k<w>`, `(?<g01>\x61)\1`, map[string]int{"g01": 1}},
		{`a\Z`, `\x61\Z`, map[string]int{}},
	}

	for _, test := range tests {
		p, err := NewPreprocessor(test.pattern, 0)
		if err != nil {
			t.Errorf("NewPreprocessor(%q) failed: %v", test.pattern, err)
			continue
		}

		if p.IsSupported() {
			t.Errorf("pattern %q unexpectedly supported by the std engine", test.pattern)
			continue
		}

		got, groups := p.FallbackPattern()
		if got != test.want {
			t.Errorf("FallbackPattern(%q) = %q, want %q", test.pattern, got, test.want)
		}

		if len(groups) != len(test.groups) {
			t.Errorf("FallbackPattern(%q) renamed %d groups, want %d", test.pattern, len(groups), len(test.groups))
			continue
		}
		for name, gid := range test.groups {
			if groups[name] != gid {
				t.Errorf("FallbackPattern(%q) group %s = %d, want %d", test.pattern, name, groups[name], gid)
			}
		}
	}
}

func TestPropertyRanges(t *testing.T) {
	// properties without a \p{...} name known to the engines are written as
	// explicit ranges
	p, err := NewPreprocessor(`\p{Bidi_Control}`, 0)
	if err != nil {
		t.Fatal(err)
	}

	got := p.StdPattern()
	if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]") {
		t.Fatalf("StdPattern() = %q, want a bracketed range set", got)
	}
	if !strings.Contains(got, `\x{200e}`) {
		t.Fatalf("StdPattern() = %q, want it to contain \\x{200e}", got)
	}
}

func TestScriptRangesInFallback(t *testing.T) {
	// the fallback engine does not know script names, so scripts become
	// ranges there
	p, err := NewPreprocessor(`(?>\p{Greek})`, 0)
	if err != nil {
		t.Fatal(err)
	}

	got, _ := p.FallbackPattern()
	if strings.Contains(got, "Greek") {
		t.Fatalf("FallbackPattern() = %q, script name should have been expanded", got)
	}
	if !strings.Contains(got, `\x{038e}-\x{03a1}`) {
		t.Fatalf("FallbackPattern() = %q, want Greek capital letter range", got)
	}
}

func TestUnsupportedProperty(t *testing.T) {
	_, err := NewPreprocessor(`\p{Emoji}`, 0)
	if err == nil {
		t.Fatal("expected an error for a property without code point data")
	}

	if !strings.Contains(err.Error(), "Emoji") {
		t.Fatalf("error %q does not name the property", err)
	}
}

func TestGroupNames(t *testing.T) {
	p, err := NewPreprocessor(`(?P<year>\d{4})-(?P<month>\d{2})`, 0)
	if err != nil {
		t.Fatal(err)
	}

	names := p.GroupNames()
	if names["year"] != 1 || names["month"] != 2 {
		t.Fatalf("GroupNames() = %v", names)
	}
}

func TestNegatedPropertyInSet(t *testing.T) {
	// the empty complement of \p{Any} adds nothing to the set
	p, err := NewPreprocessor(`[a\P{Any}]`, 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := p.StdPattern(); got != `[\x61]` {
		t.Fatalf("StdPattern() = %q, want %q", got, `[\x61]`)
	}
}
