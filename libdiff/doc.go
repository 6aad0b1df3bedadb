// Package libdiff computes textual diffs between documents.
//
// # Overview
//
// Two documents are compared through their canonical encodings, so a
// diff shows exactly what would change on disk: key order, comments,
// and form selection all count. Diff gives a line-oriented listing
// with "+"/"-" prefixes; Pretty gives the same with ANSI colors for
// terminals.
//
// # Related Packages
//
//   - github.com/tindalwic-format/go-tindalwic/encode - canonical text
//   - github.com/tindalwic-format/go-tindalwic/ir - document trees
package libdiff
