package parse

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tindalwic-format/go-tindalwic/ir"
	"github.com/tindalwic-format/go-tindalwic/token"
)

// Parse reads a whole document. It returns the first error it meets,
// with position, and never a partial tree.
func Parse(d []byte, opts ...ParseOption) (*ir.File, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{sc: token.NewScanner(d), opts: pOpts}
	p.next()
	file := ir.NewFile()
	if p.ok && p.raw.Indent == 0 && bytes.HasPrefix(p.raw.Bytes, []byte("#!")) {
		file.Hashbang = &ir.Comment{
			Text:     p.readComment(0, string(p.raw.Bytes[2:])),
			Position: ir.Hashbang,
		}
	}
	if err := p.readAssoc(file.Root, 0); err != nil {
		return nil, err
	}
	return file, nil
}

type parser struct {
	sc   *token.Scanner
	raw  token.Raw
	ok   bool
	opts *parseOpts
}

func (p *parser) next() {
	p.raw, p.ok = p.sc.Next()
}

func (p *parser) pos() *token.Pos {
	if !p.ok {
		return p.sc.Doc().Pos(p.sc.Doc().Len())
	}
	return p.sc.Doc().Pos(p.raw.Pos.I + p.raw.Indent)
}

func (p *parser) errf(sentinel error, format string, args ...any) error {
	args = append([]any{sentinel}, args...)
	return token.NewLineErr(fmt.Errorf("%w: "+format, args...), p.pos())
}

func (p *parser) track(n *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil {
		p.opts.positions[n] = pos
	}
}

// checkExcess fails on a line indented deeper than the context allows.
// At depth 0 this also catches an indented root line.
func (p *parser) checkExcess(depth int) error {
	if p.ok && p.raw.Indent > depth {
		return p.errf(token.ErrIndentation, "expected at most %d tabs, got %d", depth, p.raw.Indent)
	}
	return nil
}

// readComment collects a comment opened on the current line; first is
// the text after the marker. Lines indented past the subject's depth
// continue the comment, with one tab stripped; deeper tabs are text.
func (p *parser) readComment(depth int, first string) string {
	lines := []string{first}
	for p.next(); p.ok && p.raw.Indent >= depth+1; p.next() {
		lines = append(lines, string(p.raw.Rest(depth+1)))
	}
	return strings.Join(lines, "\n")
}

// readText collects a bracketed string body. Zero lines and one empty
// line both read as the empty string.
func (p *parser) readText(depth int) string {
	var lines []string
	for p.next(); p.ok && p.raw.Indent >= depth+1; p.next() {
		lines = append(lines, string(p.raw.Rest(depth+1)))
	}
	return strings.Join(lines, "\n")
}

// readAfter claims a comment directly following a value at the
// value's own depth: trailing for text, closing for collections.
func (p *parser) readAfter(v *ir.Node, depth int) {
	if !p.ok || p.raw.Indent != depth {
		return
	}
	rest := p.raw.Bytes[depth:]
	if len(rest) == 0 || rest[0] != '#' {
		return
	}
	pos := ir.Trailing
	if v.Type != ir.TextType {
		pos = ir.Closing
	}
	v.After = &ir.Comment{
		Text:     p.readComment(depth, string(rest[1:])),
		Position: pos,
		Subject:  v,
	}
}

func (p *parser) readAssoc(a *ir.Node, depth int) error {
	if err := p.checkExcess(depth); err != nil {
		return err
	}
	if !p.ok || p.raw.Indent < depth {
		return nil
	}
	if rest := p.raw.Bytes[depth:]; len(rest) > 0 && rest[0] == '#' {
		a.Intro = &ir.Comment{
			Text:     p.readComment(depth, string(rest[1:])),
			Position: ir.Introducing,
			Subject:  a,
		}
		if err := p.checkExcess(depth); err != nil {
			return err
		}
	}
	gap := false
	var comment *ir.Comment
	for p.ok && p.raw.Indent == depth {
		line, err := token.Classify(p.raw)
		if err != nil {
			return err
		}
		startPos := line.Pos()
		var key *ir.Key
		var value *ir.Node
		switch line.Kind {
		case token.KindBlank:
			if comment != nil {
				return p.errf(ErrMisplacedComment, "blank line must precede the key comment")
			}
			if gap {
				return p.errf(ErrMisplacedComment, "more than one blank line")
			}
			gap = true
			p.next()
		case token.KindComment:
			return p.errf(ErrMisplacedComment, "comment has no subject here")
		case token.KindKeyComment:
			if comment != nil {
				return p.errf(ErrMisplacedComment, "more than one key comment")
			}
			comment = &ir.Comment{
				Text:     p.readComment(depth, line.Value),
				Position: ir.PrecedingKey,
			}
		case token.KindTextOpen:
			key = &ir.Key{Name: line.Key}
			value = ir.NewText(p.readText(depth))
		case token.KindSeqOpen:
			key = &ir.Key{Name: line.Key}
			value = &ir.Node{Type: ir.SeqType}
			p.next()
			if err := p.readSeq(value, depth+1); err != nil {
				return err
			}
		case token.KindAssocOpen:
			key = &ir.Key{Name: line.Key}
			value = ir.NewAssoc()
			p.next()
			if err := p.readAssoc(value, depth+1); err != nil {
				return err
			}
		case token.KindInline:
			key = &ir.Key{Name: line.Key}
			value = ir.NewText(line.Value)
			p.next()
		case token.KindItem:
			return p.errf(ErrParse, "expected a key=value entry, context opening, or comment")
		}
		if value != nil {
			p.readAfter(value, depth)
			if gap && comment == nil {
				return token.NewLineErr(fmt.Errorf("%w: a blank line is only legal before a key comment", ErrMisplacedComment), startPos)
			}
			if a.Index(key.Name) >= 0 {
				return token.NewLineErr(fmt.Errorf("%w: %q", ir.ErrDuplicateKey, key.Name), startPos)
			}
			key.Gap = gap
			if comment != nil {
				comment.SubjectKey = key
				key.Comment = comment
			}
			gap, comment = false, nil
			a.Keys = append(a.Keys, key)
			a.Values = append(a.Values, value)
			value.Parent = a
			value.ParentIndex = len(a.Values) - 1
			p.track(value, startPos)
		}
		if err := p.checkExcess(depth); err != nil {
			return err
		}
	}
	if comment != nil || gap {
		return p.errf(ErrMisplacedComment, "key comment or blank line claims no key")
	}
	return nil
}

func (p *parser) readSeq(s *ir.Node, depth int) error {
	if err := p.checkExcess(depth); err != nil {
		return err
	}
	if !p.ok || p.raw.Indent < depth {
		return nil
	}
	if rest := p.raw.Bytes[depth:]; len(rest) > 0 && rest[0] == '#' {
		s.Intro = &ir.Comment{
			Text:     p.readComment(depth, string(rest[1:])),
			Position: ir.Introducing,
			Subject:  s,
		}
		if err := p.checkExcess(depth); err != nil {
			return err
		}
	}
	for p.ok && p.raw.Indent == depth {
		rest := p.raw.Bytes[depth:]
		startPos := p.pos()
		var value *ir.Node
		switch {
		case len(bytes.TrimLeft(rest, " \t\v\f\r")) == 0:
			// a blank element line reads as the empty string
			value = ir.NewText("")
			p.next()
		case rest[0] == '#':
			return p.errf(ErrMisplacedComment, "comment is not attached to any element")
		case rest[0] == '/':
			if len(rest) > 1 && rest[1] == '/' {
				return p.errf(ErrMisplacedComment, "key comment in element position")
			}
			return p.errf(token.ErrRequiresLongForm, "element begins with marker byte '/'")
		case rest[0] == '<' || rest[0] == '[' || rest[0] == '{':
			line, err := token.Classify(p.raw)
			if err != nil {
				return err
			}
			if line.Key != "" {
				return p.errf(ErrParse, "keyed context opening in element position")
			}
			switch line.Kind {
			case token.KindTextOpen:
				value = ir.NewText(p.readText(depth))
			case token.KindSeqOpen:
				value = &ir.Node{Type: ir.SeqType}
				p.next()
				if err := p.readSeq(value, depth+1); err != nil {
					return err
				}
			case token.KindAssocOpen:
				value = ir.NewAssoc()
				p.next()
				if err := p.readAssoc(value, depth+1); err != nil {
					return err
				}
			}
		default:
			// elements are verbatim, '=' and all
			value = ir.NewText(string(rest))
			p.next()
		}
		p.readAfter(value, depth)
		s.Values = append(s.Values, value)
		value.Parent = s
		value.ParentIndex = len(s.Values) - 1
		p.track(value, startPos)
		if err := p.checkExcess(depth); err != nil {
			return err
		}
	}
	return nil
}
