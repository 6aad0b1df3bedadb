package ir

// EqualFile reports structural equality of two documents, comments
// included.
func EqualFile(a, b *File) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equalComment(a.Hashbang, b.Hashbang) && Equal(a.Root, b.Root)
}

// Equal reports structural equality of two subtrees: same shape, same
// text, same keys in the same order, and the same comments in the
// same positions. Parent back references are not compared.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	if !equalComment(a.Intro, b.Intro) || !equalComment(a.After, b.After) {
		return false
	}
	switch a.Type {
	case TextType:
		return a.Text == b.Text
	case SeqType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case AssocType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i := range a.Keys {
			ak, bk := a.Keys[i], b.Keys[i]
			if ak.Name != bk.Name || ak.Gap != bk.Gap {
				return false
			}
			if !equalComment(ak.Comment, bk.Comment) {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalComment(a, b *Comment) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Text == b.Text && a.Position == b.Position
}
