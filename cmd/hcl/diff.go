package main

import (
	"fmt"

	hcl "github.com/microhcl/hcl-format/go-hcl"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	a, err := parseArg(args[0])
	if err != nil {
		return err
	}
	b, err := parseArg(args[1])
	if err != nil {
		return err
	}
	d, err := hcl.Diff(a, b)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}
