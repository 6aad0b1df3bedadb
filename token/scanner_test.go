package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	input := "a=1\n\tnested\n\n\t\tdeep\nno final newline"
	sc := NewScanner([]byte(input))
	type line struct {
		Text   string
		Indent int
		Offset int
	}
	var got []line
	for {
		raw, ok := sc.Next()
		if !ok {
			break
		}
		got = append(got, line{string(raw.Bytes), raw.Indent, raw.Pos.I})
	}
	want := []line{
		{"a=1", 0, 0},
		{"\tnested", 1, 4},
		{"", 0, 12},
		{"\t\tdeep", 2, 13},
		{"no final newline", 0, 20},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("lines (-want +got):\n%s", d)
	}
}

func TestScannerEmpty(t *testing.T) {
	sc := NewScanner(nil)
	if _, ok := sc.Next(); ok {
		t.Errorf("expected no lines from empty input")
	}
}

func TestScannerTrailingNewline(t *testing.T) {
	sc := NewScanner([]byte("x\n"))
	raw, ok := sc.Next()
	if !ok || string(raw.Bytes) != "x" {
		t.Fatalf("got %q, %v", raw.Bytes, ok)
	}
	if _, ok := sc.Next(); ok {
		t.Errorf("trailing newline should not yield an extra line")
	}
}

func TestPosLineCol(t *testing.T) {
	input := "abc\ndef\nghi"
	sc := NewScanner([]byte(input))
	for {
		if _, ok := sc.Next(); !ok {
			break
		}
	}
	doc := sc.Doc()
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{4, 1, 0},
		{6, 1, 2},
		{8, 2, 0},
		{10, 2, 2},
	}
	for _, tc := range tests {
		l, c := doc.LineCol(tc.off)
		if l != tc.line || c != tc.col {
			t.Errorf("LineCol(%d): got (%d,%d), expected (%d,%d)", tc.off, l, c, tc.line, tc.col)
		}
	}
}

func TestRawBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"\t", true},
		{"\t ", true},
		{"\tx", false},
		{"x", false},
	}
	for _, tc := range tests {
		sc := NewScanner([]byte(tc.input))
		raw, ok := sc.Next()
		if !ok {
			if tc.input == "" {
				continue
			}
			t.Fatalf("no line for %q", tc.input)
		}
		if got := raw.Blank(); got != tc.want {
			t.Errorf("Blank(%q) = %v, expected %v", tc.input, got, tc.want)
		}
	}
}
