package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.JSON && cfg.YAML {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	for _, arg := range orStdin(args) {
		doc, err := parseArg(arg)
		if err != nil {
			return err
		}
		d, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if cfg.YAML {
			d, err = yaml.JSONToYAML(d)
			if err != nil {
				return fmt.Errorf("error converting %s: %w", arg, err)
			}
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
		if !cfg.YAML {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
