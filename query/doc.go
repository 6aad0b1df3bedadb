// Package query filters document nodes with compiled expressions.
//
// # Overview
//
// A Filter wraps an expr-lang expression that must evaluate to a
// boolean. The expression sees one entry or element at a time through
// these variables:
//
//	key    entry key, or "" for sequence elements
//	index  position within the parent
//	type   "text", "seq", or "assoc"
//	text   the text of a text node, "" otherwise
//	value  the node as plain Go values (string, []any, map[string]any)
//
// Select applies the filter across one collection's children; Find
// walks a whole subtree.
//
// # Related Packages
//
// [github.com/tindalwic-format/go-tindalwic/ir] supplies the nodes,
// [github.com/tindalwic-format/go-tindalwic/translate] the plain view
// bound to "value".
package query
