package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamled-format/go-yamled/ir"
	"github.com/signadot/yamled-format/go-yamled/token"
)

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: get <path> [file]", cli.ErrUsage)
	}
	doc, _, err := cfg.loadDoc(fileArg(args, 1))
	if err != nil {
		return err
	}
	v, err := doc.Get(ir.ParsePath(args[0]))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, token.FormatScalar(v))
	return err
}
