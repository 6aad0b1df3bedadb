// Package encode renders document trees to canonical Tindalwic text.
//
// The canonical form is fixed: tabs for indentation, Unix line
// endings, no trailing newline, and a deterministic short or long
// spelling per value chosen by the token package's form predicates.
// Encoding an already-canonical document's parse reproduces it byte
// for byte.
//
// The encoder validates what the grammar cannot spell: invalid UTF-8
// (ErrEncoding), keys with line breaks (ir.ErrInvalidKey), a blank
// line flag without a key comment, and a closing comment on the
// document itself (both ir.ErrMisplacedComment).
//
// Output may be colorized for terminals with EncodeColors; colors
// never change the byte content of the document text itself, only
// wrap it in ANSI sequences.
package encode
