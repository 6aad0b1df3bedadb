// Package ir defines the document tree for Tindalwic.
//
// # Overview
//
// A parsed document is a File: an optional hashbang comment plus a
// root associative node. Every value in the tree is a Node, a tagged
// variant over three types:
//
//   - TextType: one opaque UTF-8 string (line breaks allowed)
//   - SeqType: an ordered list of nodes
//   - AssocType: an ordered list of key/value entries, keys unique
//
// The tree is concrete, not abstract: comments survive parsing and
// each one stays bound to exactly one subject. A Comment hangs off
// the thing it annotates (a File's hashbang slot, a collection's
// Intro, a value's After, a Key's Comment) and carries a back
// reference to that subject, so given any comment the subject is one
// field access away. Comments are not nodes and can never be the
// subject of another comment.
//
// # Editing
//
// Associative nodes are edited through Set, Insert, Remove and Move,
// which keep keys unique and reject keys containing line breaks.
// Sequence nodes use Append, InsertAt, RemoveAt and MoveTo. All of
// them maintain the Parent and ParentIndex back references, so
// navigation stays correct across edits.
//
// Nodes are not safe for concurrent mutation; clone the tree if two
// goroutines need to edit it.
//
// # Related Packages
//
//   - github.com/tindalwic-format/go-tindalwic/parse - text to File
//   - github.com/tindalwic-format/go-tindalwic/encode - File to text
//   - github.com/tindalwic-format/go-tindalwic/ir/path - node lookup by path
package ir
