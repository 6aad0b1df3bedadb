package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/tindalwic-format/go-tindalwic/ir"
	"github.com/tindalwic-format/go-tindalwic/ir/path"
	"github.com/tindalwic-format/go-tindalwic/query"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a document path", cli.ErrUsage)
	}
	p, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	where := cfg.Where
	if where == "" {
		where = "true"
	}
	filter, err := query.Compile(where)
	if err != nil {
		return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
	}
	for _, file := range inputArgs(args[1:]) {
		f, err := getDocFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		n, err := p.Find(f.Root)
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", p, file, err)
		}
		if err := listNode(cc, filter, n); err != nil {
			return fmt.Errorf("error listing %s in %s: %w", p, file, err)
		}
	}
	return nil
}

// listNode prints matching entry keys of an association, or matching
// element indexes of a sequence, one per line.
func listNode(cc *cli.Context, filter *query.Filter, n *ir.Node) error {
	if n.Type == ir.AssocType {
		keys, err := filter.SelectKeys(n)
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cc.Out, k)
		}
		return nil
	}
	picked, err := filter.Select(n)
	if err != nil {
		return err
	}
	for _, v := range picked {
		fmt.Fprintln(cc.Out, v.ParentIndex)
	}
	return nil
}
