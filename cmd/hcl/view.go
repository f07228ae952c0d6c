package main

import (
	"fmt"

	"github.com/microhcl/hcl-format/go-hcl/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		doc, err := parseArg(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, encode.EncodeColors(encode.NewColors())); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
