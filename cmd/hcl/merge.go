package main

import (
	"fmt"

	"github.com/microhcl/hcl-format/go-hcl/encode"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	acc, err := parseArg(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		doc, err := parseArg(arg)
		if err != nil {
			return err
		}
		if err := acc.Merge(doc); err != nil {
			return fmt.Errorf("error merging %s: %w", arg, err)
		}
	}
	return encode.Encode(acc, cc.Out, cfg.encOpts(cc.Out)...)
}
