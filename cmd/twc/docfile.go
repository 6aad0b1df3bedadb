package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/tindalwic-format/go-tindalwic/encode"
	"github.com/tindalwic-format/go-tindalwic/format"
	"github.com/tindalwic-format/go-tindalwic/ir"
	"github.com/tindalwic-format/go-tindalwic/parse"
	"github.com/tindalwic-format/go-tindalwic/translate"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.File, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return decodeDoc(cfg, d)
}

func decodeDoc(cfg *MainConfig, d []byte) (*ir.File, error) {
	switch cfg.inFormat() {
	case format.YAMLFormat:
		return translate.FromYAML(d)
	case format.JSONFormat:
		return translate.FromJSON(d)
	default:
		return parse.Parse(d)
	}
}

func writeDoc(cfg *MainConfig, w io.Writer, f *ir.File) error {
	switch cfg.outFormat() {
	case format.YAMLFormat:
		_, err := w.Write(translate.ToYAML(f))
		return err
	case format.JSONFormat:
		d, err := translate.ToJSON(f)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		if err := encode.Encode(f, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	}
}

// args or stdin when none were given
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
