package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/tindalwic-format/go-tindalwic/encode"
	"github.com/tindalwic-format/go-tindalwic/parse"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
	}
	for _, file := range inputArgs(args) {
		if err := fmtFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	in, err := readInput(cc, file)
	if err != nil {
		return err
	}
	f, err := parse.Parse(in)
	if err != nil {
		return err
	}
	// canonical form carries no trailing newline
	out, err := encode.Bytes(f)
	if err != nil {
		return err
	}
	if cfg.List {
		if !bytes.Equal(in, out) {
			fmt.Fprintln(cc.Out, file)
		}
		return nil
	}
	if cfg.Write {
		if bytes.Equal(in, out) {
			return nil
		}
		return os.WriteFile(file, out, 0644)
	}
	if _, err := cc.Out.Write(out); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
