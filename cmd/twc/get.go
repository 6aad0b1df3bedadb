package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/tindalwic-format/go-tindalwic/encode"
	"github.com/tindalwic-format/go-tindalwic/ir"
	"github.com/tindalwic-format/go-tindalwic/ir/path"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	p, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
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
		if err := printNode(cfg.MainConfig, cc, p, n); err != nil {
			return err
		}
	}
	return nil
}

// printNode shows a text node as its raw text; a collection is
// rendered as a one-entry document keyed by the last path step.
func printNode(cfg *MainConfig, cc *cli.Context, p path.Path, n *ir.Node) error {
	if n.Type == ir.TextType {
		fmt.Fprintln(cc.Out, n.Text)
		return nil
	}
	f := ir.NewFile()
	c := n.Clone()
	c.After = nil
	if len(p) == 0 {
		f.Root = c
	} else {
		key := p[len(p)-1].Key
		if p[len(p)-1].IsIndex {
			key = fmt.Sprintf("%d", p[len(p)-1].Index)
		}
		if err := f.Root.Set(key, c); err != nil {
			return err
		}
	}
	if err := encode.Encode(f, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err := cc.Out.Write([]byte("\n"))
	return err
}
