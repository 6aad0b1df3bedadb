package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindalwic-format/go-tindalwic/ir"
)

func sampleFile(t *testing.T) *ir.File {
	t.Helper()
	f := ir.NewFile()
	f.SetHashbang("/usr/bin/env tool")
	f.Root.SetIntro(" top")
	require.NoError(t, f.Root.Set("title", ir.NewText("Hop On Pop")))
	require.NoError(t, f.Root.Set("weekend", ir.FromStrings("Saturday", "Sunday")))
	f.Root.Key("weekend").SetComment(" days", true)
	book := ir.NewAssoc()
	require.NoError(t, book.Set("author", ir.NewText("Dr. Seuss")))
	require.NoError(t, f.Root.Set("book", book))
	require.NoError(t, f.Root.Set("poem", ir.NewText("line one\nline two")))
	f.Root.Get("poem").SetAfter(" done")
	return f
}

func TestToPlain(t *testing.T) {
	f := sampleFile(t)
	m := ToPlain(f)
	assert.Equal(t, map[string]any{
		"title":   "Hop On Pop",
		"weekend": []any{"Saturday", "Sunday"},
		"book":    map[string]any{"author": "Dr. Seuss"},
		"poem":    "line one\nline two",
	}, m)
}

func TestFromPlain(t *testing.T) {
	f, err := FromPlain(map[string]any{
		"n":     int64(3),
		"ok":    true,
		"none":  nil,
		"items": []any{"a", map[string]any{"k": "v"}},
	})
	require.NoError(t, err)
	// map order is gone, keys come out sorted
	names := make([]string, len(f.Root.Keys))
	for i, k := range f.Root.Keys {
		names[i] = k.Name
	}
	assert.Equal(t, []string{"items", "n", "none", "ok"}, names)
	assert.Equal(t, "3", f.Root.Get("n").Text)
	assert.Equal(t, "true", f.Root.Get("ok").Text)
	assert.Equal(t, "", f.Root.Get("none").Text)
	assert.Equal(t, ir.AssocType, f.Root.Get("items").Values[1].Type)
}

func TestFromPlainBadValue(t *testing.T) {
	_, err := FromPlain(map[string]any{"ch": make(chan int)})
	require.ErrorIs(t, err, ErrValue)
}

func TestToYAML(t *testing.T) {
	f := sampleFile(t)
	want := `--- !map
#!/usr/bin/env tool
#0i: top
"title": |2-
  Hop On Pop
#0b
#0k: days
"weekend":
 - |2-
   Saturday
 - |2-
   Sunday
"book":
 "author": |2-
   Dr. Seuss
"poem": |2-
  line one
  line two
#0a: done
...
`
	assert.Equal(t, want, string(ToYAML(f)))
}

func TestToYAMLForms(t *testing.T) {
	f := ir.NewFile()
	require.NoError(t, f.Root.Set("empty", ir.NewText("")))
	require.NoError(t, f.Root.Set("kept", ir.NewText("a\n")))
	require.NoError(t, f.Root.Set("none", ir.NewSeq()))
	require.NoError(t, f.Root.Set("bare", ir.NewAssoc()))
	require.NoError(t, f.Root.Set("q\"\t\\e", ir.NewText("x")))
	want := `--- !map
"empty": |2-
"kept": |2+
  a
"none": []
"bare": {}
"q\"\t\\e": |2-
  x
...
`
	assert.Equal(t, want, string(ToYAML(f)))
}

func TestFromYAML(t *testing.T) {
	in := []byte(`b: "2"
a: 1
list:
  - x
  - y
n: 3.5
empty:
`)
	f, err := FromYAML(in)
	require.NoError(t, err)
	names := make([]string, len(f.Root.Keys))
	for i, k := range f.Root.Keys {
		names[i] = k.Name
	}
	assert.Equal(t, []string{"b", "a", "list", "n", "empty"}, names)
	assert.Equal(t, "2", f.Root.Get("b").Text)
	assert.Equal(t, "1", f.Root.Get("a").Text)
	assert.Equal(t, "3.5", f.Root.Get("n").Text)
	assert.Equal(t, "", f.Root.Get("empty").Text)
	require.Equal(t, ir.SeqType, f.Root.Get("list").Type)
	assert.Equal(t, "y", f.Root.Get("list").Values[1].Text)
}

func TestFromYAMLNonMapping(t *testing.T) {
	_, err := FromYAML([]byte("- a\n- b\n"))
	require.ErrorIs(t, err, ErrValue)
}

func TestToJSON(t *testing.T) {
	f := sampleFile(t)
	out, err := ToJSON(f)
	require.NoError(t, err)
	want := `{
  "title": "Hop On Pop",
  "weekend": [
    "Saturday",
    "Sunday"
  ],
  "book": {
    "author": "Dr. Seuss"
  },
  "poem": "line one\nline two"
}
`
	assert.Equal(t, want, string(out))
}

func TestToJSONEmpty(t *testing.T) {
	f := ir.NewFile()
	require.NoError(t, f.Root.Set("s", ir.NewSeq()))
	require.NoError(t, f.Root.Set("a", ir.NewAssoc()))
	out, err := ToJSON(f)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"s\": [],\n  \"a\": {}\n}\n", string(out))
}

func TestFromJSON(t *testing.T) {
	f, err := FromJSON([]byte(`{"n": 1.50, "s": ["x", {"k": null}]}`))
	require.NoError(t, err)
	// numbers keep their source spelling
	assert.Equal(t, "1.50", f.Root.Get("n").Text)
	assert.Equal(t, "x", f.Root.Get("s").Values[0].Text)
	assert.Equal(t, "", f.Root.Get("s").Values[1].Get("k").Text)
}

func TestFromJSONNonObject(t *testing.T) {
	_, err := FromJSON([]byte(`[1, 2]`))
	require.ErrorIs(t, err, ErrValue)
}
