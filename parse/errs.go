package parse

import (
	"errors"

	"github.com/tindalwic-format/go-tindalwic/ir"
)

var (
	// ErrParse reports a grammar violation outside the more specific
	// taxonomy, e.g. a bare word where an entry is required or a keyed
	// context opening in element position.
	ErrParse = errors.New("parse error")

	// ErrMisplacedComment reports a comment, key comment, or blank
	// line with no legal subject at its position.
	ErrMisplacedComment = ir.ErrMisplacedComment
)
