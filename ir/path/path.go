package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tindalwic-format/go-tindalwic/ir"
)

var (
	ErrSyntax    = errors.New("path syntax error")
	ErrNotFound  = errors.New("path not found")
	ErrWrongType = errors.New("path type mismatch")
)

// Step is one descent: a key into an association or an index into a
// sequence.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Step) String() string {
	if s.IsIndex {
		return fmt.Sprintf("[%d]", s.Index)
	}
	return "." + s.Key
}

type Path []Step

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Parse reads a path like ".a[1].b". A leading dot is required before
// each key step; the empty string is the root path.
func Parse(s string) (Path, error) {
	var p Path
	rest := s
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			p = append(p, Step{Key: rest[:end]})
			rest = rest[end:]
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: missing ']' in %q", ErrSyntax, s)
			}
			i, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, rest[1:end], s)
			}
			p = append(p, Step{Index: i, IsIndex: true})
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("%w: expected '.' or '[' at %q in %q", ErrSyntax, rest, s)
		}
	}
	return p, nil
}

// Find resolves the path from root. Failures name the step that could
// not be taken and the prefix that led there.
func (p Path) Find(root *ir.Node) (*ir.Node, error) {
	n := root
	for i, s := range p {
		switch {
		case s.IsIndex:
			if n.Type != ir.SeqType {
				return nil, fmt.Errorf("%w: %q is not a sequence, can't take %s", ErrWrongType, p[:i].String(), s)
			}
			if s.Index < 0 || s.Index >= len(n.Values) {
				return nil, fmt.Errorf("%w: %q has %d elements, can't take %s", ErrNotFound, p[:i].String(), len(n.Values), s)
			}
			n = n.Values[s.Index]
		default:
			if n.Type != ir.AssocType {
				return nil, fmt.Errorf("%w: %q is not an association, can't take %s", ErrWrongType, p[:i].String(), s)
			}
			v := n.Get(s.Key)
			if v == nil {
				return nil, fmt.Errorf("%w: %q has no key %q", ErrNotFound, p[:i].String(), s.Key)
			}
			n = v
		}
	}
	return n, nil
}

// Text resolves the path and requires a text node.
func (p Path) Text(root *ir.Node) (string, error) {
	n, err := p.Find(root)
	if err != nil {
		return "", err
	}
	if n.Type != ir.TextType {
		return "", fmt.Errorf("%w: %q is %s, not text", ErrWrongType, p.String(), n.Type)
	}
	return n.Text, nil
}

// Seq resolves the path and requires a sequence node.
func (p Path) Seq(root *ir.Node) (*ir.Node, error) {
	n, err := p.Find(root)
	if err != nil {
		return nil, err
	}
	if n.Type != ir.SeqType {
		return nil, fmt.Errorf("%w: %q is %s, not a sequence", ErrWrongType, p.String(), n.Type)
	}
	return n, nil
}

// Assoc resolves the path and requires an associative node.
func (p Path) Assoc(root *ir.Node) (*ir.Node, error) {
	n, err := p.Find(root)
	if err != nil {
		return nil, err
	}
	if n.Type != ir.AssocType {
		return nil, fmt.Errorf("%w: %q is %s, not an association", ErrWrongType, p.String(), n.Type)
	}
	return n, nil
}

// Find is shorthand for Parse followed by Path.Find.
func Find(root *ir.Node, s string) (*ir.Node, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return p.Find(root)
}
