// Package token provides the lexical layer for Tindalwic documents.
//
// # Overview
//
// Tindalwic is strictly line oriented: every lexical decision is final
// once a line's indentation and its first content byte (or two) have
// been examined. The package splits a whole in-memory document into
// physical lines (Scanner), classifies each line into one of a small
// set of kinds (Classify), and maps byte offsets back to line/column
// pairs for error reporting (PosDoc, Pos).
//
// # Line Kinds
//
// After the leading tab indentation, a line is one of:
//
//   - blank (empty or whitespace only)
//   - a comment, marked #
//   - a key comment, marked //
//   - a string context opening, <key> or <>
//   - a linear array opening, [key] or []
//   - an associative array opening, {key} or {}
//   - an inline key=value entry
//   - a bare string element
//
// Whether a kind is legal, and what it means, depends on the context
// the parser is in; the classifier only reports what the bytes spell.
// Inside string and comment contexts lines are raw content and are
// never classified.
//
// # Form Selection
//
// NeedsLongText and NeedsLongKey are the single source of truth for
// when a value or key cannot use the compact single-line spelling and
// must use the bracketed context form. The parser rejects short-form
// content that violates them and the encoder consults them when
// choosing output forms, so the two sides cannot disagree.
//
// # Related Packages
//
//   - github.com/tindalwic-format/go-tindalwic/parse - builds trees from lines
//   - github.com/tindalwic-format/go-tindalwic/encode - renders trees to text
//   - github.com/tindalwic-format/go-tindalwic/ir - the document tree model
package token
