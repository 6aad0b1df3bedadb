// Package tindalwic wraps parsing and encoding of Tindalwic
// documents, the line-oriented, tab-indented serialization format in
// which every comment is bound to exactly one subject.
//
// The heavy lifting lives in the parse, encode, and ir packages; this
// package only bundles the common call patterns.
package tindalwic

import (
	"io"

	"github.com/tindalwic-format/go-tindalwic/debug"
	"github.com/tindalwic-format/go-tindalwic/encode"
	"github.com/tindalwic-format/go-tindalwic/ir"
	"github.com/tindalwic-format/go-tindalwic/parse"
)

// Parse reads a whole document from d.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.File, error) {
	return parse.Parse(d, opts...)
}

// Encode writes the canonical form of f to w.
func Encode(f *ir.File, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(f, w, opts...)
}

// EncodeBytes renders f canonically.
func EncodeBytes(f *ir.File, opts ...encode.EncodeOption) ([]byte, error) {
	return encode.Bytes(f, opts...)
}

// EncodeString renders f canonically to a string.
func EncodeString(f *ir.File, opts ...encode.EncodeOption) (string, error) {
	return encode.String(f, opts...)
}

// Canonical parses d and re-renders it in canonical form. Parsing is
// lenient in a few spellings the encoder never produces, so the
// result can differ from d; canonical input comes back byte for byte.
func Canonical(d []byte) ([]byte, error) {
	f, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes into:\n%v\n", len(d), f)
	}
	return encode.Bytes(f)
}
