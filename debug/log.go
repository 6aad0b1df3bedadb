package debug

import (
	"fmt"
	"os"

	"github.com/tindalwic-format/go-tindalwic/encode"
	"github.com/tindalwic-format/go-tindalwic/ir"
)

// Twc wraps a file so %s in Logf renders its canonical encoding.
type Twc struct{ *ir.File }

func (w Twc) String() string {
	s, err := encode.String(w.File)
	if err != nil {
		return fmt.Sprintf("[raw *ir.File] %v", w.File)
	}
	return s
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.File:
			args[i] = Twc{x}
		case *ir.Node:
			if x.Type != ir.AssocType {
				continue
			}
			s, err := encode.String(&ir.File{Root: x})
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = s
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
