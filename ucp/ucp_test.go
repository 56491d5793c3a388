package ucp

import (
	"errors"
	"testing"

	"golang.org/x/text/unicode/bidi"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want Property
	}{
		{"any", Any{}},
		{"L&", CasedLetter{}},
		{"Lc", CasedLetter{}},
		{"alnum", Alnum{}},
		{"word", Word{}},
		{"ucnc", UCNC{}},
		{"L", Category{CatL}},
		{"Lu", Category{CatLu}},
		{"Nd", Category{CatNd}},
		{"greek", ScriptExt{ScGreek}},
		{"Greek", ScriptExt{ScGreek}},
		{"grek", ScriptExt{ScGreek}},
		{"Ahom", Script{ScAhom}},
		{"Alphabetic", Binary{BinAlphabetic}},
		{"alpha", Binary{BinAlphabetic}},
		{"Lowercase", Binary{BinLowercase}},
		{"Bidi_Control", Binary{BinBidiControl}},
		{"bidicontrol", Binary{BinBidiControl}},
		{"BIDICONTROL", Binary{BinBidiControl}},
		{"bidi_al", BidiClass{bidi.AL}},
		{"BidiL", BidiClass{bidi.L}},
		{"xidstart", Binary{BinXIDStart}},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.name)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.name, err)
			continue
		}

		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	for _, name := range []string{"NotAProperty", "", "l&&", "bidi"} {
		_, err := Resolve(name)
		if err == nil {
			t.Errorf("Resolve(%q) succeeded, expected an error", name)
			continue
		}

		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Resolve(%q): error type %T, want *NotFoundError", name, err)
		} else if nf.Name != name {
			t.Errorf("Resolve(%q): error reports name %q", name, nf.Name)
		}
	}
}

// The cased-letter pseudo-class must stay distinct from both the Lu
// category and the Lowercase binary property.
func TestCasedLetterDistinct(t *testing.T) {
	amp, err := Resolve("L&")
	if err != nil {
		t.Fatal(err)
	}

	lu, err := Resolve("Lu")
	if err != nil {
		t.Fatal(err)
	}

	lower, err := Resolve("Lowercase")
	if err != nil {
		t.Fatal(err)
	}

	if amp == lu || amp == lower {
		t.Errorf("L& resolved to %v, which collides with Lu (%v) or Lowercase (%v)", amp, lu, lower)
	}
}

// Every table entry must resolve to itself, both under its stored name and
// under an uppercased spelling of it.
func TestResolveRoundTrip(t *testing.T) {
	for i := 0; i < NumEntries(); i++ {
		name, want := Entry(i)

		got, err := Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("Resolve(%q) = %v, want %v", name, got, want)
		}

		upper := make([]byte, len(name))
		for j := 0; j < len(name); j++ {
			c := name[j]
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			upper[j] = c
		}

		got, err = Resolve(string(upper))
		if err != nil {
			t.Fatalf("Resolve(%q): %v", upper, err)
		}
		if got != want {
			t.Fatalf("Resolve(%q) = %v, want %v", upper, got, want)
		}
	}
}

// The table must be strictly sorted with no duplicate names; binary search
// depends on it.
func TestTableSorted(t *testing.T) {
	prev, _ := Entry(0)
	for i := 1; i < NumEntries(); i++ {
		name, _ := Entry(i)
		if name <= prev {
			t.Fatalf("entry %d (%q) not greater than its predecessor %q", i, name, prev)
		}
		prev = name
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"bidicontrol", "bidicontrol"},
		{"Bidi_Control", "bidicontrol"},
		{"BIDI_CONTROL", "bidicontrol"},
		{"L&", "l&"},
		{"Old_Uyghur", "olduyghur"},
		{"___", ""},
		{"a b", "a b"},
	}

	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
