package unire

import (
	_ "embed"
	"testing"

	"go.starlark.net/starlark"
)

//go:embed starlark_test.py
var starlarkScript string

func TestStarlarkModule(t *testing.T) {
	err := ExecScript("starlark_test.py", starlarkScript)
	if err != nil {
		if e, ok := err.(*starlark.EvalError); ok {
			t.Fatal(e.Backtrace())
		}

		t.Fatal(err)
	}
}

func TestStarlarkCompileError(t *testing.T) {
	err := ExecScript("err.star", `re.compile("(")`)
	if err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
}

func TestStarlarkCacheEviction(t *testing.T) {
	m := NewModule()

	for i := 0; i < 2*maxRegexpCacheSize; i++ {
		pattern := Escape(string(rune('a' + i%26)))

		if _, err := m.compile(pattern, i); err != nil {
			t.Fatal(err)
		}
	}

	if m.list.Len() > maxRegexpCacheSize {
		t.Fatalf("cache holds %d patterns, limit is %d", m.list.Len(), maxRegexpCacheSize)
	}

	if len(m.cache) != m.list.Len() {
		t.Fatalf("cache map has %d entries, list has %d", len(m.cache), m.list.Len())
	}
}
