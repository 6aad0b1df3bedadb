package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/tindalwic-format/go-tindalwic/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	for _, file := range inputArgs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d); err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
