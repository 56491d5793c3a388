package unire

import (
	"slices"
	"testing"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		flags   int
		input   string
		want    bool
	}{
		{`abc`, 0, "xabcy", true},
		{`abc`, 0, "xaBcy", false},
		{`abc`, IgnoreCase, "xaBcy", true},
		{`^abc$`, 0, "abc", true},
		{`^abc$`, 0, "xabc", false},
		{`\p{Greek}+`, 0, "το γράμμα", true},
		{`\p{Greek}+`, 0, "letter", false},
		{`\p{Lu}`, 0, "över", false},
		{`\p{Lu}`, 0, "Över", true},
		{`\P{L}`, 0, "abc", false},
		{`\P{L}`, 0, "ab c", true},
		{`\p{Bidi_Control}`, 0, "a‎b", true},
		{`\p{Bidi_Control}`, 0, "ab", false},
		{`\p{bc:AL}`, 0, "ا", true},
		{`\p{bc:AL}`, 0, "a", false},
		{`\p{Xan}+`, 0, "٣٤٥", true},
		{`\p{Xsp}`, 0, "a b", true},
		{`\p{L&}`, 0, "x", true},
		{`\p{L&}`, 0, "3", false},
		{`\d+`, 0, "٣٤٥", true},
		{`\w+`, 0, "žluťoučký", true},
		{`\h`, 0, "a b", true},
		{`\v`, 0, "a b", true},
		{`\N+`, 0, "\n\n", false},
		{`a\z`, 0, "ba", true},
		{`a\z`, 0, "ab", false},
		// fallback engine
		{`(?<=€)\d+`, 0, "€42", true},
		{`(?<=€)\d+`, 0, "$42", false},
		{`(\p{Greek})\1`, 0, "αα", true},
		{`(\p{Greek})\1`, 0, "αβ", false},
		{`a\Z`, 0, "ba\n", true},
		{`a\Z`, 0, "ab\n", false},
		{`(?>a*)a`, 0, "aaa", false},
	}

	for _, test := range tests {
		re, err := Compile(test.pattern, test.flags)
		if err != nil {
			t.Errorf("Compile(%q) failed: %v", test.pattern, err)
			continue
		}

		if got := re.MatchString(test.input); got != test.want {
			t.Errorf("MatchString(%q, %q) = %v, want %v", test.pattern, test.input, got, test.want)
		}
	}
}

func TestFindString(t *testing.T) {
	re := MustCompile(`\p{Greek}+`, 0)

	if got := re.FindString("ab γράμμα cd"); got != "γράμμα" {
		t.Fatalf("FindString() = %q", got)
	}

	if got := re.FindString("abcd"); got != "" {
		t.Fatalf("FindString() = %q, want empty", got)
	}
}

func TestFindStringIndex(t *testing.T) {
	re := MustCompile(`\d+`, 0)

	got := re.FindStringIndex("ab123cd")
	want := []int{2, 5}
	if !slices.Equal(got, want) {
		t.Fatalf("FindStringIndex() = %v, want %v", got, want)
	}
}

func TestFindStringSubmatch(t *testing.T) {
	re := MustCompile(`(?P<year>\d{4})-(?P<month>\d{2})(-(?P<day>\d{2}))?`, 0)

	got := re.FindStringSubmatch("date: 2023-09")
	want := []string{"2023-09", "2023", "09", "", ""}
	if !slices.Equal(got, want) {
		t.Fatalf("FindStringSubmatch() = %q, want %q", got, want)
	}

	if got := re.SubexpIndex("month"); got != 2 {
		t.Fatalf("SubexpIndex(month) = %d, want 2", got)
	}
	if got := re.NumSubexp(); got != 4 {
		t.Fatalf("NumSubexp() = %d, want 4", got)
	}
}

func TestFindStringSubmatchFallback(t *testing.T) {
	// backreference forces the fallback engine; group numbering and names
	// must be preserved
	re := MustCompile(`(?P<open>[<(])(?P<word>\w+)\1`, 0)

	got := re.FindStringSubmatch("x (word( y")
	want := []string{"(word(", "(", "word"}
	if !slices.Equal(got, want) {
		t.Fatalf("FindStringSubmatch() = %q, want %q", got, want)
	}

	if got := re.SubexpIndex("word"); got != 2 {
		t.Fatalf("SubexpIndex(word) = %d, want 2", got)
	}

	names := re.SubexpNames()
	wantNames := []string{"", "open", "word"}
	if !slices.Equal(names, wantNames) {
		t.Fatalf("SubexpNames() = %q, want %q", names, wantNames)
	}
}

func TestFullMatchIndex(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		// the leftmost-first match of "a|ab" is "a"; the whole-string match
		// must still be found
		{`a|ab`, "ab", true},
		{`a|ab`, "a", true},
		{`a|ab`, "ac", false},
		{`a|ab`, "aab", false},
		{`\w+`, "hello", true},
		{`\w+`, "hello world", false},
		// fallback engine
		{`(a)\1|ab`, "ab", true},
		{`(a)\1|ab`, "aa", true},
		{`(a)\1|ab`, "aab", false},
		{`(?>a|ab)c`, "abc", false},
	}

	for _, test := range tests {
		re := MustCompile(test.pattern, 0)

		a := re.fullMatchIndex(test.input)
		if got := a != nil; got != test.want {
			t.Errorf("fullMatchIndex(%q, %q) = %v, want %v", test.pattern, test.input, a, test.want)
			continue
		}

		if a != nil && (a[0] != 0 || a[1] != len(test.input)) {
			t.Errorf("fullMatchIndex(%q, %q) = %v, does not span the string", test.pattern, test.input, a)
		}
	}
}

func TestFindAllString(t *testing.T) {
	re := MustCompile(`\p{Nd}+`, 0)

	got := re.FindAllString("1 22 ٣٣٣ 4444", -1)
	want := []string{"1", "22", "٣٣٣", "4444"}
	if !slices.Equal(got, want) {
		t.Fatalf("FindAllString() = %q, want %q", got, want)
	}

	got = re.FindAllString("1 22 333", 2)
	want = []string{"1", "22"}
	if !slices.Equal(got, want) {
		t.Fatalf("FindAllString(n=2) = %q, want %q", got, want)
	}
}

func TestFindAllStringFallback(t *testing.T) {
	re := MustCompile(`(?<=\p{Lu})\p{Ll}+`, 0)

	got := re.FindAllString("HeLlo WoRld", -1)
	want := []string{"e", "lo", "o", "ld"}
	if !slices.Equal(got, want) {
		t.Fatalf("FindAllString() = %q, want %q", got, want)
	}
}

func TestReplaceAllString(t *testing.T) {
	tests := []struct {
		pattern string
		src     string
		repl    string
		want    string
	}{
		{`\d+`, "a1b22c", "#", "a#b#c"},
		{`(\d+)`, "a1b22c", "<$1>", "a<1>b<22>c"},
		{`(?P<n>\d+)`, "a1b22c", "<${n}>", "a<1>b<22>c"},
		{`\d+`, "a1b2", "$$", "a$b$"},
		{`(\d)(\d)`, "a12", "${2}${1}", "a21"},
		{`x`, "axa", "$zzz", "a$zzza"},
	}

	for _, test := range tests {
		re := MustCompile(test.pattern, 0)

		if got := re.ReplaceAllString(test.src, test.repl); got != test.want {
			t.Errorf("ReplaceAllString(%q, %q, %q) = %q, want %q",
				test.pattern, test.src, test.repl, got, test.want)
		}
	}
}

func TestReplaceAllStringFunc(t *testing.T) {
	re := MustCompile(`\p{Ll}+`, 0)

	got := re.ReplaceAllStringFunc("ab CD ef", func(s string) string {
		return "<" + s + ">"
	})
	if got != "<ab> CD <ef>" {
		t.Fatalf("ReplaceAllStringFunc() = %q", got)
	}
}

func TestSplit(t *testing.T) {
	re := MustCompile(`[,;]\s*`, 0)

	got := re.Split("a, b;c ,d", -1)
	want := []string{"a", "b", "c ", "d"}
	if !slices.Equal(got, want) {
		t.Fatalf("Split() = %q, want %q", got, want)
	}

	got = re.Split("abc", -1)
	want = []string{"abc"}
	if !slices.Equal(got, want) {
		t.Fatalf("Split() = %q, want %q", got, want)
	}
}

func TestCompileError(t *testing.T) {
	for _, pattern := range []string{`(`, `\p{NoSuchProperty}`, `\p{Emoji}`} {
		if _, err := Compile(pattern, 0); err == nil {
			t.Errorf("Compile(%q) unexpectedly succeeded", pattern)
		}
	}
}

func TestEscape(t *testing.T) {
	re := MustCompile(Escape(`a.b*c`), 0)

	if !re.MatchString("xa.b*cy") {
		t.Fatal("escaped pattern does not match the literal text")
	}
	if re.MatchString("aXbYc") {
		t.Fatal("escaped pattern still matches as a regex")
	}
}

func TestInvalidUTF8Input(t *testing.T) {
	re := MustCompile(`b`, 0)

	// the invalid byte must not break byte index reporting
	got := re.FindStringIndex("a\xffb")
	want := []int{2, 3}
	if !slices.Equal(got, want) {
		t.Fatalf("FindStringIndex() = %v, want %v", got, want)
	}
}

func TestFlags(t *testing.T) {
	re := MustCompile(`(?i)x`, 0)

	if re.Flags()&IgnoreCase == 0 {
		t.Fatal("inline global flag not reported")
	}
}
