package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamled-format/go-yamled/ir"
	"github.com/signadot/yamled-format/go-yamled/token"
)

type SetConfig struct {
	*MainConfig
	Set *cli.Command
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set <path> <value> [file]", cli.ErrUsage)
	}
	file := fileArg(args, 2)
	doc, before, err := cfg.loadDoc(file)
	if err != nil {
		return err
	}
	if err := doc.Set(ir.ParsePath(args[0]), token.ParseScalar(args[1]).Native()); err != nil {
		return err
	}
	return cfg.emit(cc, file, before, doc)
}
