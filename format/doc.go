// Package format names the input and output formats the conversion
// surfaces speak.
//
// # Related Packages
//
//   - github.com/tindalwic-format/go-tindalwic/translate - format bridges
package format
