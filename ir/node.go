package ir

type Type int

const (
	TextType Type = iota
	SeqType
	AssocType
)

func (t Type) String() string {
	return map[Type]string{
		TextType:  "TextType",
		SeqType:   "SeqType",
		AssocType: "AssocType",
	}[t]
}

// File is one whole document: an optional hashbang comment and the
// root associative node. The root never carries an After comment;
// the document grammar has no closing position.
type File struct {
	Hashbang *Comment
	Root     *Node
}

func NewFile() *File {
	return &File{Root: NewAssoc()}
}

// SetHashbang binds a hashbang comment to the file. Text is the
// comment body without the `#!` marker.
func (f *File) SetHashbang(text string) *Comment {
	c := &Comment{Text: text, Position: Hashbang}
	f.Hashbang = c
	return c
}

func (f *File) Clone() *File {
	res := &File{Root: f.Root.Clone()}
	if f.Hashbang != nil {
		res.Hashbang = &Comment{Text: f.Hashbang.Text, Position: Hashbang}
	}
	return res
}

// Node is a single value: a tagged variant over text, sequence, and
// association. Text is set for TextType; Values for SeqType; Keys and
// Values in lockstep for AssocType, so Keys[i] names Values[i].
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	Text   string
	Keys   []*Key
	Values []*Node

	Intro *Comment
	After *Comment
}

// Key names one association entry. Gap records a single blank line
// before the entry's key comment; the grammar permits the blank only
// as a comment prefix, so encoding fails on Gap without Comment.
type Key struct {
	Name    string
	Gap     bool
	Comment *Comment
}

func NewText(s string) *Node {
	return &Node{Type: TextType, Text: s}
}

func NewSeq(values ...*Node) *Node {
	res := &Node{Type: SeqType, Values: values}
	for i, v := range values {
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

func NewAssoc() *Node {
	return &Node{Type: AssocType}
}

// FromStrings builds a sequence of text nodes.
func FromStrings(ss ...string) *Node {
	values := make([]*Node, len(ss))
	for i, s := range ss {
		values[i] = NewText(s)
	}
	return NewSeq(values...)
}

// SetIntro binds an introducing comment to a collection node.
func (n *Node) SetIntro(text string) *Comment {
	c := &Comment{Text: text, Position: Introducing, Subject: n}
	n.Intro = c
	return c
}

// SetAfter binds the comment that follows the node: trailing for a
// text value, closing for a collection.
func (n *Node) SetAfter(text string) *Comment {
	pos := Trailing
	if n.Type != TextType {
		pos = Closing
	}
	c := &Comment{Text: text, Position: pos, Subject: n}
	n.After = c
	return c
}

// SetComment binds a key comment to the entry, optionally preceded by
// one blank line.
func (k *Key) SetComment(text string, gap bool) *Comment {
	c := &Comment{Text: text, Position: PrecedingKey, SubjectKey: k}
	k.Comment = c
	k.Gap = gap
	return c
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.Text = n.Text
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dstV := &Node{}
			v.CloneTo(dstV)
			dstV.Parent = dst
			dstV.ParentIndex = i
			dst.Values[i] = dstV
		}
	}
	if n.Keys != nil {
		dst.Keys = make([]*Key, len(n.Keys))
		for i, k := range n.Keys {
			dstK := &Key{Name: k.Name, Gap: k.Gap}
			if k.Comment != nil {
				dstK.Comment = &Comment{
					Text:       k.Comment.Text,
					Position:   PrecedingKey,
					SubjectKey: dstK,
				}
			}
			dst.Keys[i] = dstK
		}
	}
	if n.Intro != nil {
		dst.Intro = &Comment{Text: n.Intro.Text, Position: Introducing, Subject: dst}
	}
	if n.After != nil {
		dst.After = &Comment{Text: n.After.Text, Position: n.After.Position, Subject: dst}
	}
	return dst
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the subtree depth first. f is called once before a
// node's children with isPost false and once after with isPost true;
// returning false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
