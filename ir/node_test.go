package ir

import (
	"errors"
	"testing"
)

func sampleFile() *File {
	f := NewFile()
	f.SetHashbang("/usr/bin/env tool")
	f.Root.Set("title", NewText("Hop On Pop"))
	days := FromStrings("Saturday", "Sunday")
	f.Root.Set("weekend", days)
	book := NewAssoc()
	book.Set("author", NewText("Dr. Seuss"))
	book.SetIntro(" a classic")
	f.Root.Set("book", book)
	f.Root.Key("book").SetComment(" the main record", true)
	return f
}

func TestBackRefs(t *testing.T) {
	f := sampleFile()
	for i, v := range f.Root.Values {
		if v.Parent != f.Root {
			t.Errorf("value %d has wrong parent", i)
		}
		if v.ParentIndex != i {
			t.Errorf("value %d has ParentIndex %d", i, v.ParentIndex)
		}
	}
	book := f.Root.Get("book")
	if book.Get("author").Root() != f.Root {
		t.Errorf("Root() did not reach the document root")
	}
}

func TestCommentBinding(t *testing.T) {
	f := sampleFile()
	book := f.Root.Get("book")
	if book.Intro == nil || book.Intro.Subject != book {
		t.Fatalf("intro comment not bound to its collection")
	}
	if book.Intro.Position != Introducing {
		t.Errorf("intro position: got %v", book.Intro.Position)
	}
	k := f.Root.Key("book")
	if k.Comment == nil || k.Comment.SubjectKey != k {
		t.Fatalf("key comment not bound to its key")
	}
	if !k.Gap {
		t.Errorf("gap flag lost")
	}
	txt := f.Root.Get("title")
	c := txt.SetAfter(" trailing")
	if c.Position != Trailing || c.Subject != txt {
		t.Errorf("after comment on text: got %v", c.Position)
	}
	seq := f.Root.Get("weekend")
	cc := seq.SetAfter(" closing")
	if cc.Position != Closing {
		t.Errorf("after comment on seq: got %v", cc.Position)
	}
}

func TestClone(t *testing.T) {
	f := sampleFile()
	g := f.Clone()
	if !EqualFile(f, g) {
		t.Fatalf("clone not equal to original")
	}
	g.Root.Get("book").Set("author", NewText("someone else"))
	if EqualFile(f, g) {
		t.Fatalf("clone shares structure with original")
	}
	// cloned comments must point at cloned subjects
	gb := g.Root.Get("book")
	if gb.Intro.Subject != gb {
		t.Errorf("cloned intro comment bound to foreign subject")
	}
	if g.Root.Key("book").Comment.SubjectKey != g.Root.Key("book") {
		t.Errorf("cloned key comment bound to foreign key")
	}
}

func TestVisit(t *testing.T) {
	f := sampleFile()
	var pre, post int
	err := f.Root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, title, weekend, 2 days, book, author
	if pre != 7 || post != 7 {
		t.Errorf("visit counts: pre=%d post=%d, expected 7/7", pre, post)
	}
}

func TestInsertDuplicate(t *testing.T) {
	f := sampleFile()
	n := len(f.Root.Keys)
	err := f.Root.Insert(0, "title", NewText("again"))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("got %v, expected ErrDuplicateKey", err)
	}
	if len(f.Root.Keys) != n {
		t.Errorf("failed insert changed the tree")
	}
}

func TestInvalidKey(t *testing.T) {
	a := NewAssoc()
	if err := a.Set("bad\nkey", NewText("x")); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Set: got %v, expected ErrInvalidKey", err)
	}
	if err := a.Insert(0, "bad\nkey", NewText("x")); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("Insert: got %v, expected ErrInvalidKey", err)
	}
	if len(a.Keys) != 0 {
		t.Errorf("failed ops changed the tree")
	}
}

func TestRemoveAndMove(t *testing.T) {
	a := NewAssoc()
	a.Set("a", NewText("1"))
	a.Set("b", NewText("2"))
	a.Set("c", NewText("3"))
	v := a.Remove("b")
	if v == nil || v.Text != "2" {
		t.Fatalf("Remove returned %v", v)
	}
	if a.Index("c") != 1 || a.Values[1].ParentIndex != 1 {
		t.Errorf("reindex after Remove failed")
	}
	if err := a.Move("c", 0); err != nil {
		t.Fatal(err)
	}
	if a.Keys[0].Name != "c" || a.Keys[1].Name != "a" {
		t.Errorf("Move order: %q, %q", a.Keys[0].Name, a.Keys[1].Name)
	}
	for i, v := range a.Values {
		if v.ParentIndex != i {
			t.Errorf("ParentIndex %d at %d after Move", v.ParentIndex, i)
		}
	}
}

func TestSeqOps(t *testing.T) {
	s := FromStrings("a", "b", "c")
	if err := s.MoveTo(2, 0); err != nil {
		t.Fatal(err)
	}
	if s.Values[0].Text != "c" || s.Values[1].Text != "a" || s.Values[2].Text != "b" {
		t.Fatalf("MoveTo order wrong")
	}
	if err := s.InsertAt(1, NewText("x")); err != nil {
		t.Fatal(err)
	}
	v, err := s.RemoveAt(1)
	if err != nil || v.Text != "x" {
		t.Fatalf("RemoveAt: %v, %v", v, err)
	}
	for i, v := range s.Values {
		if v.ParentIndex != i || v.Parent != s {
			t.Errorf("back refs broken at %d", i)
		}
	}
	if _, err := s.RemoveAt(17); !errors.Is(err, ErrRange) {
		t.Errorf("got %v, expected ErrRange", err)
	}
	if err := NewText("t").Append(NewText("x")); !errors.Is(err, ErrType) {
		t.Errorf("got %v, expected ErrType", err)
	}
}

func TestEqualComments(t *testing.T) {
	a := sampleFile()
	b := sampleFile()
	if !EqualFile(a, b) {
		t.Fatalf("identical trees not equal")
	}
	b.Root.Get("book").Intro.Text = " different"
	if EqualFile(a, b) {
		t.Errorf("comment text ignored by EqualFile")
	}
}
