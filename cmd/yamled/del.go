package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

type DelConfig struct {
	*MainConfig
	Del *cli.Command
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: del <path> [file]", cli.ErrUsage)
	}
	file := fileArg(args, 1)
	doc, before, err := cfg.loadDoc(file)
	if err != nil {
		return err
	}
	if err := doc.Delete(ir.ParsePath(args[0])); err != nil {
		return err
	}
	return cfg.emit(cc, file, before, doc)
}
