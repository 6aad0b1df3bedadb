package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tindalwic-format/go-tindalwic/ir"
	"github.com/tindalwic-format/go-tindalwic/token"
)

type EncState struct {
	depth int
	Color func(t ir.Type, a ColorAttr, s string) string
}

// Encode writes the canonical form of f to w.
func Encode(f *ir.File, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, o := range opts {
		o(es)
	}
	e := &encoder{w: w, es: es}
	if f.Root.After != nil {
		return fmt.Errorf("%w: the document cannot carry a closing comment", ir.ErrMisplacedComment)
	}
	if f.Hashbang != nil {
		if err := e.comment("#!", es.depth, ir.AssocType, f.Hashbang.Text); err != nil {
			return err
		}
	} else if es.depth == 0 && f.Root.Intro != nil && strings.HasPrefix(f.Root.Intro.Text, "!") {
		return fmt.Errorf("%w: document comment %q would read back as a hashbang", ErrEncoding, firstLine(f.Root.Intro.Text))
	}
	return e.assoc(f.Root, es.depth)
}

// Bytes renders f to a fresh buffer.
func Bytes(f *ir.File, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(f, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String renders f to a string.
func String(f *ir.File, opts ...EncodeOption) (string, error) {
	b, err := Bytes(f, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type encoder struct {
	w     io.Writer
	es    *EncState
	count int
}

func (e *encoder) color(t ir.Type, a ColorAttr, s string) string {
	if e.es.Color == nil || s == "" {
		return s
	}
	return e.es.Color(t, a, s)
}

// line writes one output line: depth tabs followed by the parts. A
// call with no parts is a blank line carrying the context's tabs.
func (e *encoder) line(depth int, parts ...string) error {
	if e.count > 0 {
		if _, err := io.WriteString(e.w, "\n"); err != nil {
			return err
		}
	}
	e.count++
	if _, err := io.WriteString(e.w, strings.Repeat("\t", depth)); err != nil {
		return err
	}
	for _, part := range parts {
		if _, err := io.WriteString(e.w, part); err != nil {
			return err
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (e *encoder) checkUTF8(what, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s %q is not valid UTF-8", ErrEncoding, what, s)
	}
	return nil
}

// comment writes a comment: the marker line at depth, continuation
// lines one deeper, text copied through verbatim.
func (e *encoder) comment(marker string, depth int, t ir.Type, text string) error {
	if err := e.checkUTF8("comment", text); err != nil {
		return err
	}
	lines := strings.Split(text, "\n")
	if err := e.line(depth, e.color(t, CommentColor, marker+lines[0])); err != nil {
		return err
	}
	for _, l := range lines[1:] {
		if err := e.line(depth+1, e.color(t, CommentColor, l)); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) checkKey(name string) error {
	if !ir.ValidKey(name) {
		return fmt.Errorf("%w: %q contains a line break", ir.ErrInvalidKey, name)
	}
	return e.checkUTF8("key", name)
}

func (e *encoder) assoc(a *ir.Node, depth int) error {
	if a.Intro != nil {
		if err := e.comment("#", depth, ir.AssocType, a.Intro.Text); err != nil {
			return err
		}
	}
	for i, k := range a.Keys {
		v := a.Values[i]
		if k.Gap {
			if k.Comment == nil {
				return fmt.Errorf("%w: blank line before %q has no key comment", ir.ErrMisplacedComment, k.Name)
			}
			if err := e.line(depth); err != nil {
				return err
			}
		}
		if k.Comment != nil {
			if err := e.comment("//", depth, ir.AssocType, k.Comment.Text); err != nil {
				return err
			}
		}
		if err := e.checkKey(k.Name); err != nil {
			return err
		}
		if err := e.value(k.Name, true, v, depth); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) seq(s *ir.Node, depth int) error {
	if s.Intro != nil {
		if err := e.comment("#", depth, ir.SeqType, s.Intro.Text); err != nil {
			return err
		}
	}
	for _, v := range s.Values {
		if err := e.value("", false, v, depth); err != nil {
			return err
		}
	}
	return nil
}

// value writes one keyed entry or one element, then any comment that
// follows it. keyed distinguishes the empty key from element position.
func (e *encoder) value(key string, keyed bool, v *ir.Node, depth int) error {
	switch v.Type {
	case ir.TextType:
		if err := e.text(key, keyed, v, depth); err != nil {
			return err
		}
	case ir.SeqType:
		if err := e.line(depth, e.color(ir.SeqType, MarkerColor, "["), e.color(ir.SeqType, KeyColor, key), e.color(ir.SeqType, MarkerColor, "]")); err != nil {
			return err
		}
		if err := e.seq(v, depth+1); err != nil {
			return err
		}
	case ir.AssocType:
		if err := e.line(depth, e.color(ir.AssocType, MarkerColor, "{"), e.color(ir.AssocType, KeyColor, key), e.color(ir.AssocType, MarkerColor, "}")); err != nil {
			return err
		}
		if err := e.assoc(v, depth+1); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, v.Type)
	}
	if v.After != nil {
		return e.comment("#", depth, v.Type, v.After.Text)
	}
	return nil
}

func (e *encoder) text(key string, keyed bool, v *ir.Node, depth int) error {
	if err := e.checkUTF8("text", v.Text); err != nil {
		return err
	}
	short := !token.NeedsLongText(v.Text)
	if keyed {
		short = short && !token.NeedsLongKey(key)
		if short {
			return e.line(depth,
				e.color(ir.TextType, KeyColor, key),
				e.color(ir.TextType, MarkerColor, "="),
				e.color(ir.TextType, ValueColor, v.Text))
		}
	} else if short {
		return e.line(depth, e.color(ir.TextType, ValueColor, v.Text))
	}
	err := e.line(depth,
		e.color(ir.TextType, MarkerColor, "<"),
		e.color(ir.TextType, KeyColor, key),
		e.color(ir.TextType, MarkerColor, ">"))
	if err != nil {
		return err
	}
	if v.Text == "" {
		return nil
	}
	for _, l := range strings.Split(v.Text, "\n") {
		if err := e.line(depth+1, e.color(ir.TextType, ValueColor, l)); err != nil {
			return err
		}
	}
	return nil
}
