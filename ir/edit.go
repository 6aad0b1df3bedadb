package ir

import (
	"fmt"
	"strings"
)

// ValidKey reports whether name can appear as an association key.
// Any UTF-8 is allowed except line breaks; the bracketed key form
// carries everything else.
func ValidKey(name string) bool {
	return !strings.ContainsRune(name, '\n')
}

// Index returns the entry position of name, or -1.
func (n *Node) Index(name string) int {
	for i, k := range n.Keys {
		if k.Name == name {
			return i
		}
	}
	return -1
}

// Get returns the value under name, or nil.
func (n *Node) Get(name string) *Node {
	if i := n.Index(name); i >= 0 {
		return n.Values[i]
	}
	return nil
}

// Key returns the Key entry for name, or nil. Useful for reaching a
// key comment.
func (n *Node) Key(name string) *Key {
	if i := n.Index(name); i >= 0 {
		return n.Keys[i]
	}
	return nil
}

// Set replaces the value under name, or appends a new entry when the
// key is absent.
func (n *Node) Set(name string, v *Node) error {
	if n.Type != AssocType {
		return fmt.Errorf("%w: Set on %s", ErrType, n.Type)
	}
	if !ValidKey(name) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	if i := n.Index(name); i >= 0 {
		v.Parent = n
		v.ParentIndex = i
		n.Values[i] = v
		return nil
	}
	n.Keys = append(n.Keys, &Key{Name: name})
	n.Values = append(n.Values, v)
	v.Parent = n
	v.ParentIndex = len(n.Values) - 1
	return nil
}

// Insert adds a new entry at position i, failing on a duplicate key.
// The tree is unchanged on error.
func (n *Node) Insert(i int, name string, v *Node) error {
	if n.Type != AssocType {
		return fmt.Errorf("%w: Insert on %s", ErrType, n.Type)
	}
	if !ValidKey(name) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	if n.Index(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, name)
	}
	if i < 0 || i > len(n.Values) {
		return fmt.Errorf("%w: %d of %d", ErrRange, i, len(n.Values))
	}
	n.Keys = append(n.Keys[:i], append([]*Key{{Name: name}}, n.Keys[i:]...)...)
	n.Values = append(n.Values[:i], append([]*Node{v}, n.Values[i:]...)...)
	v.Parent = n
	n.reindex(i)
	return nil
}

// Remove deletes the entry under name and returns its value, or nil
// when the key is absent.
func (n *Node) Remove(name string) *Node {
	i := n.Index(name)
	if i < 0 {
		return nil
	}
	v := n.Values[i]
	n.Keys = append(n.Keys[:i], n.Keys[i+1:]...)
	n.Values = append(n.Values[:i], n.Values[i+1:]...)
	v.Parent = nil
	v.ParentIndex = 0
	n.reindex(i)
	return v
}

// Move relocates the entry under name to position i, preserving its
// key comment.
func (n *Node) Move(name string, i int) error {
	from := n.Index(name)
	if from < 0 {
		return fmt.Errorf("%w: no key %q", ErrRange, name)
	}
	if i < 0 || i >= len(n.Values) {
		return fmt.Errorf("%w: %d of %d", ErrRange, i, len(n.Values))
	}
	k, v := n.Keys[from], n.Values[from]
	n.Keys = append(n.Keys[:from], n.Keys[from+1:]...)
	n.Values = append(n.Values[:from], n.Values[from+1:]...)
	n.Keys = append(n.Keys[:i], append([]*Key{k}, n.Keys[i:]...)...)
	n.Values = append(n.Values[:i], append([]*Node{v}, n.Values[i:]...)...)
	n.reindex(min(from, i))
	return nil
}

// Append adds v at the end of a sequence.
func (n *Node) Append(v *Node) error {
	if n.Type != SeqType {
		return fmt.Errorf("%w: Append on %s", ErrType, n.Type)
	}
	v.Parent = n
	v.ParentIndex = len(n.Values)
	n.Values = append(n.Values, v)
	return nil
}

// InsertAt adds v at position i of a sequence.
func (n *Node) InsertAt(i int, v *Node) error {
	if n.Type != SeqType {
		return fmt.Errorf("%w: InsertAt on %s", ErrType, n.Type)
	}
	if i < 0 || i > len(n.Values) {
		return fmt.Errorf("%w: %d of %d", ErrRange, i, len(n.Values))
	}
	n.Values = append(n.Values[:i], append([]*Node{v}, n.Values[i:]...)...)
	v.Parent = n
	n.reindex(i)
	return nil
}

// RemoveAt deletes element i of a sequence and returns it.
func (n *Node) RemoveAt(i int) (*Node, error) {
	if n.Type != SeqType {
		return nil, fmt.Errorf("%w: RemoveAt on %s", ErrType, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: %d of %d", ErrRange, i, len(n.Values))
	}
	v := n.Values[i]
	n.Values = append(n.Values[:i], n.Values[i+1:]...)
	v.Parent = nil
	v.ParentIndex = 0
	n.reindex(i)
	return v, nil
}

// MoveTo relocates element from to position to within a sequence.
func (n *Node) MoveTo(from, to int) error {
	if n.Type != SeqType {
		return fmt.Errorf("%w: MoveTo on %s", ErrType, n.Type)
	}
	if from < 0 || from >= len(n.Values) || to < 0 || to >= len(n.Values) {
		return fmt.Errorf("%w: %d->%d of %d", ErrRange, from, to, len(n.Values))
	}
	v := n.Values[from]
	n.Values = append(n.Values[:from], n.Values[from+1:]...)
	n.Values = append(n.Values[:to], append([]*Node{v}, n.Values[to:]...)...)
	n.reindex(min(from, to))
	return nil
}

func (n *Node) reindex(from int) {
	for i := from; i < len(n.Values); i++ {
		n.Values[i].ParentIndex = i
	}
}
