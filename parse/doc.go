// Package parse builds document trees from Tindalwic text.
//
// Parse consumes a whole in-memory buffer and returns an ir.File or
// the first error, never a partial tree. The indentation context
// stack is the call stack: each nested collection is one recursive
// call, entered when its opening line is seen and left when the
// indentation drops back. Comments are attached to their subjects as
// they are read; a comment with no legal subject at its position is a
// fatal error.
//
// Errors wrap the package sentinels (ErrParse, ErrMisplacedComment)
// or the token and ir sentinels, and carry the offending line's
// position.
package parse
