// Package debug holds environment gated debug switches for the twc
// tools. Switches are read once at startup from TWC_DEBUG_* variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Encode    bool
	Query     bool
	Translate bool
	LSP       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TWC_DEBUG_PARSE")
	d.Encode = boolEnv("TWC_DEBUG_ENCODE")
	d.Query = boolEnv("TWC_DEBUG_QUERY")
	d.Translate = boolEnv("TWC_DEBUG_TRANSLATE")
	d.LSP = boolEnv("TWC_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Query() bool {
	return d.Query
}
func Translate() bool {
	return d.Translate
}
func LSP() bool {
	return d.LSP
}
