package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/microhcl/hcl-format/go-hcl/encode"

	"github.com/scott-cotton/cli"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	for _, arg := range orStdin(args) {
		doc, err := parseArg(arg)
		if err != nil {
			return err
		}
		if !cfg.Write {
			if err := encode.Encode(doc, cc.Out); err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(doc, buf); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if err := os.WriteFile(arg, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}
