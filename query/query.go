package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tindalwic-format/go-tindalwic/debug"
	"github.com/tindalwic-format/go-tindalwic/ir"
	"github.com/tindalwic-format/go-tindalwic/translate"
)

// Filter is a compiled boolean expression over document entries.
type Filter struct {
	src string
	prg *vm.Program
}

// Compile builds a Filter from an expression such as
//
//	type == "text" && text startsWith "a"
//	key matches "^ch[0-9]+$"
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

var typeNames = map[ir.Type]string{
	ir.TextType:  "text",
	ir.SeqType:   "seq",
	ir.AssocType: "assoc",
}

func entryEnv(key string, index int, v *ir.Node) map[string]any {
	return map[string]any{
		"key":   key,
		"index": index,
		"type":  typeNames[v.Type],
		"text":  v.Text,
		"value": translate.Plain(v),
	}
}

func (f *Filter) match(env map[string]any) (bool, error) {
	res, err := vm.Run(f.prg, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q gave %T, not a boolean", f.src, res)
	}
	if debug.Query() {
		debug.Logf("filter %q on key=%q index=%v gave %v\n", f.src, env["key"], env["index"], b)
	}
	return b, nil
}

// Select returns the children of a collection node for which the
// filter holds, in document order. Filtering a text node is an error.
func (f *Filter) Select(n *ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	switch n.Type {
	case ir.AssocType:
		for i, k := range n.Keys {
			ok, err := f.match(entryEnv(k.Name, i, n.Values[i]))
			if err != nil {
				return nil, err
			}
			if ok {
				res = append(res, n.Values[i])
			}
		}
	case ir.SeqType:
		for i, v := range n.Values {
			ok, err := f.match(entryEnv("", i, v))
			if err != nil {
				return nil, err
			}
			if ok {
				res = append(res, v)
			}
		}
	default:
		return nil, fmt.Errorf("%w: cannot filter a %s node", ir.ErrType, n.Type)
	}
	return res, nil
}

// SelectKeys returns the keys of an association's matching entries.
func (f *Filter) SelectKeys(a *ir.Node) ([]string, error) {
	if a.Type != ir.AssocType {
		return nil, fmt.Errorf("%w: cannot list keys of a %s node", ir.ErrType, a.Type)
	}
	var res []string
	for i, k := range a.Keys {
		ok, err := f.match(entryEnv(k.Name, i, a.Values[i]))
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, k.Name)
		}
	}
	return res, nil
}

// Find walks the subtree under root in preorder and returns every
// node, root included, for which the filter holds.
func (f *Filter) Find(root *ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	err := root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		key := ""
		if n.Parent != nil && n.Parent.Type == ir.AssocType {
			key = n.Parent.Keys[n.ParentIndex].Name
		}
		ok, err := f.match(entryEnv(key, n.ParentIndex, n))
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
