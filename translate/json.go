package translate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tindalwic-format/go-tindalwic/ir"
)

// ToJSON renders a document as indented JSON. Comments and the
// hashbang are dropped; entry order survives because the tree is
// written directly rather than through a Go map.
func ToJSON(f *ir.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := jsonNode(&buf, f.Root, ""); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func jsonNode(buf *bytes.Buffer, n *ir.Node, indent string) error {
	inner := indent + "  "
	switch n.Type {
	case ir.TextType:
		d, err := json.Marshal(n.Text)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ir.SeqType:
		if len(n.Values) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[")
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
			buf.WriteString(inner)
			if err := jsonNode(buf, v, inner); err != nil {
				return err
			}
		}
		buf.WriteString("\n")
		buf.WriteString(indent)
		buf.WriteString("]")
	case ir.AssocType:
		if len(n.Keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{")
		for i, k := range n.Keys {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
			buf.WriteString(inner)
			d, err := json.Marshal(k.Name)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteString(": ")
			if err := jsonNode(buf, n.Values[i], inner); err != nil {
				return err
			}
		}
		buf.WriteString("\n")
		buf.WriteString(indent)
		buf.WriteString("}")
	}
	return nil
}

// FromJSON reads JSON into a document. The root must be an object.
// Scalars are stringified; numbers keep their source spelling.
func FromJSON(d []byte) (*ir.File, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document root must be an object, got %T", ErrValue, v)
	}
	return FromPlain(jsonStrings(m).(map[string]any))
}

// jsonStrings rewrites json.Number leaves as strings so the plain
// bridge sees only the types it knows.
func jsonStrings(v any) any {
	switch x := v.(type) {
	case json.Number:
		return x.String()
	case []any:
		for i, e := range x {
			x[i] = jsonStrings(e)
		}
		return x
	case map[string]any:
		for k, e := range x {
			x[k] = jsonStrings(e)
		}
		return x
	default:
		return v
	}
}
