package token

import (
	"bytes"
	"fmt"
	"strings"
)

type LineKind int

const (
	KindBlank LineKind = iota
	KindComment
	KindKeyComment
	KindTextOpen
	KindSeqOpen
	KindAssocOpen
	KindInline
	KindItem
)

func (k LineKind) String() string {
	return map[LineKind]string{
		KindBlank:      "KindBlank",
		KindComment:    "KindComment",
		KindKeyComment: "KindKeyComment",
		KindTextOpen:   "KindTextOpen",
		KindSeqOpen:    "KindSeqOpen",
		KindAssocOpen:  "KindAssocOpen",
		KindInline:     "KindInline",
		KindItem:       "KindItem",
	}[k]
}

// Line is one classified physical line.
//
// Key is set for the three context openings (empty for the anonymous
// spellings <>, [], {}) and for inline entries. Value is the text
// after the marker for comments and key comments, the text after the
// first '=' for inline entries, and the whole remainder for bare
// elements. Raw is the unclassified line, which the parser uses when
// an inline-looking line sits in element position.
type Line struct {
	Kind   LineKind
	Indent int
	Key    string
	Value  string
	Raw    Raw
}

// Pos is the position of the line's first content byte.
func (l *Line) Pos() *Pos {
	return &Pos{I: l.Raw.Pos.I + l.Indent, D: l.Raw.Pos.D}
}

// Classify determines the lexical kind of one physical line from its
// first content byte or two. It never consults context; context rules
// (which kinds are legal where) belong to the parser.
func Classify(r Raw) (*Line, error) {
	l := &Line{Indent: r.Indent, Raw: r}
	rest := r.Bytes[r.Indent:]
	if len(rest) == 0 || len(bytes.TrimLeft(rest, " \t\v\f\r")) == 0 {
		l.Kind = KindBlank
		return l, nil
	}
	switch rest[0] {
	case ' ', '\v', '\f', '\r':
		return nil, NewLineErr(fmt.Errorf("%w: whitespace after indent", ErrIndentation), l.Pos())
	case '#':
		l.Kind = KindComment
		l.Value = string(rest[1:])
		return l, nil
	case '/':
		if len(rest) < 2 || rest[1] != '/' {
			return nil, NewLineErr(fmt.Errorf("%w: `/` opens a key comment only as `//`", ErrRequiresLongForm), l.Pos())
		}
		l.Kind = KindKeyComment
		l.Value = string(rest[2:])
		return l, nil
	case '<':
		return l.bracket(rest, '>', KindTextOpen)
	case '[':
		return l.bracket(rest, ']', KindSeqOpen)
	case '{':
		return l.bracket(rest, '}', KindAssocOpen)
	}
	if i := bytes.IndexByte(rest, '='); i >= 0 {
		l.Kind = KindInline
		l.Key = string(rest[:i])
		l.Value = string(rest[i+1:])
		if l.Value != "" {
			switch l.Value[0] {
			case '#', '/', '<', '[', '{':
				return nil, NewLineErr(fmt.Errorf("%w: inline value begins with marker byte %q", ErrRequiresLongForm, l.Value[0]), l.Pos())
			}
		}
		return l, nil
	}
	l.Kind = KindItem
	l.Value = string(rest)
	return l, nil
}

func (l *Line) bracket(rest []byte, close byte, kind LineKind) (*Line, error) {
	if len(rest) < 2 || rest[len(rest)-1] != close {
		return nil, NewLineErr(fmt.Errorf("%w: %q is not closed by %q", ErrUnterminatedContext, string(rest), close), l.Pos())
	}
	l.Kind = kind
	l.Key = string(rest[1 : len(rest)-1])
	return l, nil
}

// NeedsLongText reports whether a string value must be spelled with a
// bracketed string context rather than the compact single-line form.
// Empty strings, strings with line breaks, and strings whose first
// byte would classify as a marker or as indentation all need it.
func NeedsLongText(s string) bool {
	if s == "" {
		return true
	}
	if strings.IndexByte(s, '\n') >= 0 {
		return true
	}
	switch s[0] {
	case '#', '/', '<', '[', '{', '\t', ' ':
		return true
	}
	return false
}

// NeedsLongKey reports whether a key must be spelled inside a bracket
// pair rather than in the inline key=value form. The empty key is
// fine inline: `=value` reads back with an empty key.
func NeedsLongKey(k string) bool {
	if k == "" {
		return false
	}
	if strings.IndexByte(k, '=') >= 0 {
		return true
	}
	switch k[0] {
	case '#', '/', '<', '[', '{', '\t', ' ':
		return true
	}
	return false
}
