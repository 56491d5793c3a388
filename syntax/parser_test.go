package syntax

import (
	"strings"
	"testing"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		msg     string
	}{
		{`(`, "missing ), unterminated subpattern"},
		{`)`, "unbalanced parenthesis"},
		{`*`, "nothing to repeat"},
		{`a**`, "multiple repeat"},
		{`a{3,2}`, "min repeat greater than max repeat"},
		{`[`, "unterminated character set"},
		{`[z-a]`, "bad character range"},
		{`(?P<n>a)(?P<n>b)`, "redefinition of group name"},
		{`(?P=missing)`, "unknown group name 'missing'"},
		{`\1`, "invalid group reference 1"},
		{`(a\1)`, "cannot refer to an open group"},
		{`(?(3)a)`, "invalid group reference 3"},
		{`(?(1)a|b|c)(x)`, "conditional reference with more than two branches"},
		{`(?P<1a>x)`, "bad character in group name"},
		{`\p`, "missing property name"},
		{`\p{}`, "missing property name"},
		{`\p{NoSuchProperty}`, `unknown property name "NoSuchProperty"`},
		{`\p{sc:Word}`, "'Word' is not a script name"},
		{`\p{bc:Greek}`, "unknown bidi class 'Greek'"},
		{`\x{110000}`, `bad escape \x{110000}`},
		{`\x4`, `incomplete escape \x4`},
		{`\q`, `bad escape \q`},
		{`[[:nosuch:]]`, "unknown POSIX class name 'nosuch'"},
		{`(?i`, "missing -, : or )"},
		{`(?i-`, "missing flag"},
		{`(?i-i:a)`, "bad inline flags: flag turned on and off"},
		{`a(?i)b`, "global flags not at the start of the expression"},
	}

	for _, test := range tests {
		_, err := parse(test.pattern, 0)
		if err == nil {
			t.Errorf("parse(%q) unexpectedly succeeded", test.pattern)
			continue
		}

		if !strings.Contains(err.Error(), test.msg) {
			t.Errorf("parse(%q) error = %q, want it to contain %q", test.pattern, err, test.msg)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := parse(`ab\p{Nope}`, 0)
	if err == nil {
		t.Fatal("expected an error")
	}

	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error has type %T, want *Error", err)
	}

	if perr.Pos == 0 {
		t.Fatalf("error position not set: %v", perr)
	}
}

func TestParseGroups(t *testing.T) {
	p, err := parse(`(a)(?P<x>b)(?:c)(?<y>d)`, 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := p.state.groups(); got != 4 {
		t.Fatalf("groups() = %d, want 4", got)
	}

	want := map[string]int{"x": 2, "y": 3}
	for name, gid := range want {
		if p.state.groupdict[name] != gid {
			t.Errorf("group %q = %d, want %d", name, p.state.groupdict[name], gid)
		}
	}
}

func TestParseBranchPrefixExtraction(t *testing.T) {
	// "ab|ac" shares the prefix "a", which is moved out of the branch
	p, err := parse(`ab|ac`, 0)
	if err != nil {
		t.Fatal(err)
	}

	if p.len() != 2 {
		t.Fatalf("len() = %d, want 2", p.len())
	}

	first := p.get(0)
	if first.opcode != opLiteral || first.c != 'a' {
		t.Fatalf("first node = %v %q", first.opcode, first.c)
	}

	if got := p.get(1).opcode; got != opIn {
		t.Fatalf("second node = %v, want %v", got, opIn)
	}
}

func TestParseProperty(t *testing.T) {
	p, err := parse(`\p{Greek}`, 0)
	if err != nil {
		t.Fatal(err)
	}

	if p.len() != 1 {
		t.Fatalf("len() = %d, want 1", p.len())
	}

	t0 := p.get(0)
	if t0.opcode != opProperty {
		t.Fatalf("opcode = %v, want %v", t0.opcode, opProperty)
	}

	params := t0.params.(propertyParams)
	if params.negated {
		t.Fatal("property unexpectedly negated")
	}
}

func TestParseGraphemeCluster(t *testing.T) {
	p, err := parse(`\X`, 0)
	if err != nil {
		t.Fatal(err)
	}

	if got := p.get(0).opcode; got != opAtomicGroup {
		t.Fatalf("opcode = %v, want %v", got, opAtomicGroup)
	}
}

func TestParseVerboseMode(t *testing.T) {
	p1, err := parse(`a b # comment
c`, FlagExtended)
	if err != nil {
		t.Fatal(err)
	}

	p2, err := parse(`abc`, 0)
	if err != nil {
		t.Fatal(err)
	}

	if p1.len() != p2.len() {
		t.Fatalf("verbose parse has %d nodes, plain parse has %d", p1.len(), p2.len())
	}
}

func TestParseConditional(t *testing.T) {
	p, err := parse(`(a)(?(1)b|c)`, 0)
	if err != nil {
		t.Fatal(err)
	}

	t1 := p.get(1)
	if t1.opcode != opGrouprefExists {
		t.Fatalf("opcode = %v, want %v", t1.opcode, opGrouprefExists)
	}

	params := t1.params.(grouprefExParams)
	if params.condgroup != 1 || params.itemNo == nil {
		t.Fatalf("conditional params = %+v", params)
	}
}
