// Package translate bridges document trees to and from other
// representations: plain Go values, YAML, and JSON.
//
// Every bridge is lossy somewhere. Plain values and JSON drop
// comments and, going through Go maps, entry order. The YAML output
// keeps everything by spelling comments as marked YAML comments, but
// nothing reads those markers back; YAML input recovers structure and
// text only. The lossless representation is the Tindalwic text itself.
package translate
