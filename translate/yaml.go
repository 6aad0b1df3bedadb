package translate

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/tindalwic-format/go-tindalwic/debug"
	"github.com/tindalwic-format/go-tindalwic/ir"
)

// ToYAML renders a document as YAML that preserves all the input,
// with no attempt at looking nice. Comments become YAML comments
// carrying a marker of their subject depth and position, so nothing
// is lost even though plain YAML loaders will skip them:
//
//	#!...   hashbang
//	#Ni:    introducing comment at depth N
//	#Nk:    key comment at depth N
//	#Na:    comment after a value at depth N
//	#Nb     blank line before a key comment at depth N
func ToYAML(f *ir.File) []byte {
	w := &yamlWriter{}
	w.buf.WriteString("--- !map\n")
	if f.Hashbang != nil {
		for _, l := range strings.Split(f.Hashbang.Text, "\n") {
			w.buf.WriteString("#!")
			w.buf.WriteString(l)
			w.buf.WriteByte('\n')
		}
	}
	w.assoc("", noKey, f.Root)
	w.buf.WriteString("...\n")
	return w.buf.Bytes()
}

type yamlWriter struct {
	buf bytes.Buffer
}

// key spellings: the root association has no key, list items are "-",
// entries quote their key.
type yamlKey struct {
	name string
	kind int
}

const (
	keyNone = iota
	keyItem
	keyNamed
)

var (
	noKey   = yamlKey{kind: keyNone}
	itemKey = yamlKey{kind: keyItem}
)

func namedKey(name string) yamlKey {
	return yamlKey{name: name, kind: keyNamed}
}

func quoteKey(name string) string {
	r := strings.NewReplacer("\\", `\\`, "\"", `\"`, "\t", `\t`)
	return "\"" + r.Replace(name) + "\""
}

func (w *yamlWriter) key(indent string, key yamlKey, end string) {
	w.buf.WriteString(indent)
	switch key.kind {
	case keyNone:
		w.buf.WriteString(end)
	case keyItem:
		w.buf.WriteString("-")
		if end != "" {
			w.buf.WriteString(" ")
			w.buf.WriteString(end)
		}
	case keyNamed:
		w.buf.WriteString(quoteKey(key.name))
		w.buf.WriteString(":")
		if end != "" {
			w.buf.WriteString(" ")
			w.buf.WriteString(end)
		}
	}
	w.buf.WriteByte('\n')
}

func (w *yamlWriter) comment(indent, marker string, c *ir.Comment) {
	if c == nil {
		return
	}
	for _, l := range strings.Split(c.Text, "\n") {
		fmt.Fprintf(&w.buf, "%s#%d%s%s\n", indent, len(indent), marker, l)
	}
}

func (w *yamlWriter) value(indent string, key yamlKey, v *ir.Node) {
	switch v.Type {
	case ir.TextType:
		w.text(indent, key, v)
	case ir.SeqType:
		w.seq(indent, key, v)
	case ir.AssocType:
		w.assoc(indent, key, v)
	}
	w.comment(indent, "a:", v.After)
}

func (w *yamlWriter) text(indent string, key yamlKey, v *ir.Node) {
	var lines []string
	if v.Text != "" {
		lines = strings.Split(v.Text, "\n")
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		w.key(indent, key, "|2+")
		lines = lines[:len(lines)-1]
	} else {
		w.key(indent, key, "|2-")
	}
	for _, l := range lines {
		w.buf.WriteString(indent)
		w.buf.WriteString("  ")
		w.buf.WriteString(l)
		w.buf.WriteByte('\n')
	}
}

func (w *yamlWriter) seq(indent string, key yamlKey, v *ir.Node) {
	if len(v.Values) == 0 {
		w.key(indent, key, "[]")
		return
	}
	w.key(indent, key, "")
	indent += " "
	w.comment(indent, "i:", v.Intro)
	for _, e := range v.Values {
		w.value(indent, itemKey, e)
	}
}

func (w *yamlWriter) assoc(indent string, key yamlKey, v *ir.Node) {
	if len(v.Keys) == 0 && key.kind != keyNone {
		w.key(indent, key, "{}")
		return
	}
	if key.kind != keyNone {
		w.key(indent, key, "")
		indent += " "
	}
	w.comment(indent, "i:", v.Intro)
	for i, k := range v.Keys {
		if k.Gap {
			fmt.Fprintf(&w.buf, "%s#%db\n", indent, len(indent))
		}
		w.comment(indent, "k:", k.Comment)
		w.value(indent, namedKey(k.Name), v.Values[i])
	}
}

// FromYAML reads YAML into a document, preserving entry order.
// Comments in the YAML are skipped by the loader; only structure and
// text come back. Scalars are stringified.
func FromYAML(d []byte) (*ir.File, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	if debug.Translate() {
		debug.Logf("yaml loaded as %T\n", v)
	}
	root, err := fromYAMLAny(v)
	if err != nil {
		return nil, err
	}
	f := ir.NewFile()
	if root != nil {
		if root.Type != ir.AssocType {
			return nil, fmt.Errorf("%w: document root must be a mapping, got %s", ErrValue, root.Type)
		}
		f.Root = root
	}
	return f, nil
}

func fromYAMLAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.NewAssoc()
		for _, item := range x {
			n, err := fromYAMLAny(item.Value)
			if err != nil {
				return nil, err
			}
			if err := res.Set(fmt.Sprint(item.Key), n); err != nil {
				return nil, err
			}
		}
		return res, nil
	case []any:
		res := ir.NewSeq()
		for _, e := range x {
			n, err := fromYAMLAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case nil:
		return ir.NewText(""), nil
	default:
		return ir.NewText(fmt.Sprint(x)), nil
	}
}
