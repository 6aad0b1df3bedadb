package tindalwic

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/tindalwic-format/go-tindalwic/ir"
)

// Random document generator for round-trip exercise. Keys, text, and
// comments draw from printable ASCII plus tab; the encoder's form
// selection has to cope with whatever comes out.
type generator struct {
	r       *rand.Rand
	deepest int
	widest  int
}

const genChars = "\t !\"$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~#"

func (g *generator) chunk(n int) string {
	b := make([]byte, g.r.Intn(n))
	for i := range b {
		b[i] = genChars[g.r.Intn(len(genChars))]
	}
	return string(b)
}

func (g *generator) comment(kind string) string {
	lines := []string{" " + kind}
	for i := g.r.Intn(3); i > 0; i-- {
		lines = append(lines, g.chunk(40))
	}
	text := lines[0]
	for _, l := range lines[1:] {
		text += "\n" + l
	}
	return text
}

func (g *generator) text() *ir.Node {
	switch g.r.Intn(3) {
	case 0:
		return ir.NewText("")
	case 1:
		return ir.NewText(g.chunk(40))
	default:
		return ir.NewText(g.chunk(40) + "\n" + g.chunk(40))
	}
}

func (g *generator) value(depth int) *ir.Node {
	switch g.r.Intn(3) {
	case 0:
		a := ir.NewAssoc()
		g.assocEntries(a, depth+1)
		if g.r.Intn(2) == 1 {
			a.SetAfter(g.comment("after"))
		}
		return a
	case 1:
		s := ir.NewSeq()
		g.seqElements(s, depth+1)
		if g.r.Intn(2) == 1 {
			s.SetAfter(g.comment("after"))
		}
		return s
	default:
		return g.text()
	}
}

func (g *generator) seqElements(s *ir.Node, depth int) {
	if depth < g.r.Intn(g.deepest) {
		for i := g.r.Intn(g.widest); i > 0; i-- {
			s.Append(g.value(depth))
		}
	}
	if len(s.Values) == 0 {
		s.Append(ir.NewText("value"))
	}
	if g.r.Intn(2) == 1 {
		s.SetIntro(g.comment("intro"))
	}
}

func (g *generator) assocEntries(a *ir.Node, depth int) {
	if depth < g.r.Intn(g.deepest) {
		for i := g.r.Intn(g.widest); i > 0; i-- {
			name := g.chunk(12)
			if a.Index(name) >= 0 {
				name = fmt.Sprintf("%s-%d", name, i)
			}
			if a.Index(name) >= 0 {
				continue
			}
			k := &ir.Key{Name: name}
			if g.r.Intn(2) == 1 {
				k.SetComment(g.comment("before"), g.r.Intn(2) == 1)
			}
			v := g.value(depth)
			a.Keys = append(a.Keys, k)
			a.Values = append(a.Values, v)
			v.Parent = a
			v.ParentIndex = len(a.Values) - 1
		}
	}
	if len(a.Keys) == 0 {
		a.Set("key", ir.NewText("value"))
	}
	if g.r.Intn(2) == 1 {
		a.SetIntro(g.comment("intro"))
	}
}

func (g *generator) file() *ir.File {
	f := ir.NewFile()
	if g.r.Intn(2) == 1 {
		f.SetHashbang("/usr/bin/env tool")
	}
	g.assocEntries(f.Root, 0)
	return f
}

func TestRandomRoundTrip(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := &generator{r: rand.New(rand.NewSource(seed)), deepest: 6, widest: 8}
		f := g.file()
		first, err := EncodeBytes(f)
		if err != nil {
			t.Fatalf("seed %d: encode: %v", seed, err)
		}
		back, err := Parse(first)
		if err != nil {
			t.Fatalf("seed %d: re-parse: %v\n%s", seed, err, first)
		}
		if !ir.EqualFile(f, back) {
			t.Fatalf("seed %d: tree changed across encode/parse\n%s", seed, first)
		}
		second, err := EncodeBytes(back)
		if err != nil {
			t.Fatalf("seed %d: second encode: %v", seed, err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("seed %d: encoding is not a fixed point\n%q\n%q", seed, first, second)
		}
	}
}
