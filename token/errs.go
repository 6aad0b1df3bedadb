package token

import (
	"errors"
	"fmt"
)

var (
	// ErrIndentation reports a non-tab whitespace byte in the
	// indentation prefix, an indent more than one level deeper than
	// its context allows, or an indented root line.
	ErrIndentation = errors.New("indentation error")

	// ErrRequiresLongForm reports a value or key spelled in the short
	// form whose content demands the bracketed string context.
	ErrRequiresLongForm = errors.New("requires long form")

	// ErrUnterminatedContext reports a malformed bracket pair on a
	// context-opening line, e.g. `[key}` or a missing closer.
	ErrUnterminatedContext = errors.New("unterminated context")
)

// LineErr attaches a document position to a lexical error.
type LineErr struct {
	Err error
	Pos Pos
}

func NewLineErr(e error, p *Pos) *LineErr {
	return &LineErr{Err: e, Pos: *p}
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
