package ir

import "errors"

var (
	// ErrDuplicateKey reports an insert or rename that would give two
	// entries of one association the same key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidKey reports a key that cannot be spelled on one line.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMisplacedComment reports a comment, or the blank line that
	// may prefix a key comment, in a position the grammar gives no
	// subject.
	ErrMisplacedComment = errors.New("misplaced comment")

	// ErrRange reports an index outside a sequence or association.
	ErrRange = errors.New("index out of range")

	// ErrType reports an operation applied to the wrong node type.
	ErrType = errors.New("wrong node type")
)
