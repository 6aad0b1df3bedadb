package tindalwic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tindalwic-format/go-tindalwic/ir"
)

// Documents already in canonical form must survive a parse/encode
// cycle byte for byte.
func TestCanonicalFixedPoint(t *testing.T) {
	docs := []string{
		"",
		"title=Hop On Pop",
		"#!/usr/bin/env tool\nk=v",
		"# intro\na=1",
		"[weekend]\n\tSaturday\n\tSunday",
		"{book}\n\tauthor=Dr. Seuss\n\t[chapters]\n\t\tOne\n\t\tTwo",
		"{empty}\n\t# nothing here yet",
		"<poem>\n\tline one\n\tline two",
		"<blank>",
		"a=1\n# trailing",
		"[s]\n\tx\n# closing",
		"a=1\n\n// about b\nb=2",
		"// no gap\na=1",
		"{outer}\n\ta=1\n\t\n\t// b\n\tb=2",
		"[s]\n\t[]\n\t\tx\n\t{}\n\t\tk=v\n\t<>\n\t\ttext\n\t<>",
		"# multi\n\tline intro\na=1",
		"<a=b>\n\tneeds the bracketed key",
		"=empty key",
	}
	for _, doc := range docs {
		got, err := Canonical([]byte(doc))
		if err != nil {
			t.Errorf("Canonical(%q): %v", doc, err)
			continue
		}
		if string(got) != doc {
			t.Errorf("Canonical(%q) = %q; not a fixed point", doc, got)
		}
	}
}

// Lenient spellings normalize once, then stay put.
func TestCanonicalConverges(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		// whitespace-only long body reads as empty, encodes bare
		{"<k>\n\t", "<k>"},
		// inline empty value normalizes to the bracketed empty form
		{"k=", "<k>"},
		// inline value with leading whitespace moves to long form
		{"k= x", "<k>\n\t x"},
		// a blank element line reads as the empty string
		{"[s]\n\tx\n\t", "[s]\n\tx\n\t<>"},
	}
	for _, tc := range tests {
		once, err := Canonical([]byte(tc.in))
		if err != nil {
			t.Errorf("Canonical(%q): %v", tc.in, err)
			continue
		}
		if string(once) != tc.want {
			t.Errorf("Canonical(%q) = %q, expected %q", tc.in, once, tc.want)
			continue
		}
		twice, err := Canonical(once)
		if err != nil {
			t.Errorf("Canonical^2(%q): %v", tc.in, err)
			continue
		}
		if string(twice) != string(once) {
			t.Errorf("Canonical(%q) did not converge: %q then %q", tc.in, once, twice)
		}
	}
}

func TestParseEncodeStructural(t *testing.T) {
	doc := "#!/usr/bin/env tool\n# intro\ntitle=Hop On Pop\n[weekend]\n\t# days\n\tSaturday\n\tSunday\n# done"
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	out, err := EncodeBytes(f)
	if err != nil {
		t.Fatal(err)
	}
	g, err := Parse(out)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if !ir.EqualFile(f, g) {
		t.Errorf("parse/encode/parse changed the tree")
	}
}

func TestEncodeStringMatchesBytes(t *testing.T) {
	f := ir.NewFile()
	f.Root.Set("a", ir.NewText("1"))
	b, err := EncodeBytes(f)
	if err != nil {
		t.Fatal(err)
	}
	s, err := EncodeString(f)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(string(b), s); d != "" {
		t.Errorf("EncodeString disagrees with EncodeBytes:\n%s", d)
	}
}
