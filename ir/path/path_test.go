package path

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tindalwic-format/go-tindalwic/ir"
)

func testRoot() *ir.Node {
	root := ir.NewAssoc()
	root.Set("title", ir.NewText("Hop On Pop"))
	root.Set("weekend", ir.FromStrings("Saturday", "Sunday"))
	book := ir.NewAssoc()
	book.Set("author", ir.NewText("Dr. Seuss"))
	chapters := ir.NewSeq(ir.NewAssoc())
	chapters.Values[0].Set("name", ir.NewText("One"))
	book.Set("chapters", chapters)
	root.Set("book", book)
	return root
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", nil},
		{".a", Path{{Key: "a"}}},
		{"[3]", Path{{Index: 3, IsIndex: true}}},
		{".a[1].b", Path{{Key: "a"}, {Index: 1, IsIndex: true}, {Key: "b"}}},
		{".a.b", Path{{Key: "a"}, {Key: "b"}}},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", tc.in, d)
		}
		if got.String() != tc.in {
			t.Errorf("String round trip: got %q, expected %q", got.String(), tc.in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"a", "[x]", "[1", ".a]"} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q): got %v, expected ErrSyntax", in, err)
		}
	}
}

func TestFind(t *testing.T) {
	root := testRoot()
	s, err := Path{{Key: "book"}, {Key: "chapters"}, {Index: 0, IsIndex: true}, {Key: "name"}}.Text(root)
	if err != nil {
		t.Fatal(err)
	}
	if s != "One" {
		t.Errorf("got %q, expected %q", s, "One")
	}
	n, err := Find(root, ".weekend[1]")
	if err != nil {
		t.Fatal(err)
	}
	if n.Text != "Sunday" {
		t.Errorf("got %q, expected %q", n.Text, "Sunday")
	}
	if n, err := Find(root, ""); err != nil || n != root {
		t.Errorf("empty path should resolve to the root, got %v, %v", n, err)
	}
}

func TestFindErrors(t *testing.T) {
	root := testRoot()
	if _, err := Find(root, ".missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, expected ErrNotFound", err)
	}
	if _, err := Find(root, ".weekend[9]"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, expected ErrNotFound", err)
	}
	if _, err := Find(root, ".title.x"); !errors.Is(err, ErrWrongType) {
		t.Errorf("got %v, expected ErrWrongType", err)
	}
	if _, err := Find(root, ".book[0]"); !errors.Is(err, ErrWrongType) {
		t.Errorf("got %v, expected ErrWrongType", err)
	}
	if _, err := (Path{{Key: "title"}}).Seq(root); !errors.Is(err, ErrWrongType) {
		t.Errorf("Seq on text: expected ErrWrongType, got %v", err)
	}
	if _, err := (Path{{Key: "weekend"}}).Assoc(root); !errors.Is(err, ErrWrongType) {
		t.Errorf("Assoc on seq: expected ErrWrongType, got %v", err)
	}
}
