// Package path resolves dotted, indexed paths to nodes in a document
// tree.
//
// A path is a chain of steps: ".key" descends into an association and
// "[2]" into a sequence. The empty path names the root. There is no
// quoting; keys containing '.', '[' or ']' cannot be addressed this
// way. Paths are a convenience surface for ordinary keys, not a
// complete addressing scheme.
package path
