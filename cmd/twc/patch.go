package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/tindalwic-format/go-tindalwic/translate"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, an RFC 6902 patch", cli.ErrUsage)
	}
	patchSrc := []byte(args[0])
	if cfg.File {
		patchSrc, err = readInput(cc, args[0])
		if err != nil {
			return err
		}
	}
	p, err := jsonpatch.DecodePatch(patchSrc)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	for _, file := range inputArgs(args[1:]) {
		if err := patchFile(cfg, cc, p, file); err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
	}
	return nil
}

// patchFile applies the patch through the JSON view, so comments and
// entry order do not survive a patched document.
func patchFile(cfg *PatchConfig, cc *cli.Context, p jsonpatch.Patch, file string) error {
	f, err := getDocFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	doc, err := translate.ToJSON(f)
	if err != nil {
		return err
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return err
	}
	res, err := translate.FromJSON(patched)
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc.Out, res)
}
