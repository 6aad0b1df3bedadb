package translate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tindalwic-format/go-tindalwic/ir"
)

// ErrValue reports data that has no place in a document tree.
var ErrValue = errors.New("untranslatable value")

// ToPlain converts a document to plain Go values: strings, []any, and
// map[string]any. Comments and entry order do not survive.
func ToPlain(f *ir.File) map[string]any {
	return toPlain(f.Root).(map[string]any)
}

// Plain converts a single node the same way ToPlain converts a file.
func Plain(n *ir.Node) any {
	return toPlain(n)
}

func toPlain(n *ir.Node) any {
	switch n.Type {
	case ir.TextType:
		return n.Text
	case ir.SeqType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toPlain(v)
		}
		return res
	default:
		res := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			res[k.Name] = toPlain(n.Values[i])
		}
		return res
	}
}

// FromPlain converts plain Go values to a document. Scalars are
// stringified on the way in; the tree itself is typeless. Map entries
// come out key sorted, since Go maps carry no order.
func FromPlain(m map[string]any) (*ir.File, error) {
	f := ir.NewFile()
	root, err := fromAny(m)
	if err != nil {
		return nil, err
	}
	f.Root = root
	return f, nil
}

func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.NewText(""), nil
	case string:
		return ir.NewText(x), nil
	case bool, int, int64, uint64, float64:
		return ir.NewText(fmt.Sprint(x)), nil
	case []any:
		res := ir.NewSeq()
		for _, e := range x {
			n, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := ir.NewAssoc()
		for _, k := range keys {
			n, err := fromAny(x[k])
			if err != nil {
				return nil, err
			}
			if err := res.Set(k, n); err != nil {
				return nil, err
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrValue, v)
	}
}
