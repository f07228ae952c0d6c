package main

import (
	"fmt"
	"strings"

	hcl "github.com/microhcl/hcl-format/go-hcl"
	"github.com/microhcl/hcl-format/go-hcl/encode"
	"github.com/microhcl/hcl-format/go-hcl/ir"
	"github.com/microhcl/hcl-format/go-hcl/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch document", cli.ErrUsage)
	}
	var patchDoc *ir.Value
	if cfg.File {
		patchDoc, err = parseArg(args[0])
	} else {
		patchDoc, err = parse.Parse(strings.NewReader(args[0]))
	}
	if err != nil {
		return fmt.Errorf("error parsing patch: %w", err)
	}
	for _, arg := range orStdin(args[1:]) {
		doc, err := parseArg(arg)
		if err != nil {
			return err
		}
		res, err := hcl.MergePatch(doc, patchDoc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
