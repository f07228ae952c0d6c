package main

import (
	"fmt"

	"github.com/microhcl/hcl-format/go-hcl/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	for _, arg := range orStdin(args[1:]) {
		doc, err := parseArg(arg)
		if err != nil {
			return err
		}
		res := doc.Find(path)
		if res == nil {
			// don't encode anything and don't yell either
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
