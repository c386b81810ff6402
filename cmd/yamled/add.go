package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamled-format/go-yamled/ir"
	"github.com/signadot/yamled-format/go-yamled/token"
)

type AddConfig struct {
	*MainConfig
	Comment string `cli:"name=c aliases=comment desc='comment to attach above the new key'"`

	Add *cli.Command
}

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: add <parentpath> <key> <value> [file]", cli.ErrUsage)
	}
	file := fileArg(args, 3)
	doc, before, err := cfg.loadDoc(file)
	if err != nil {
		return err
	}
	parent := ir.ParsePath(args[0])
	value := token.ParseScalar(args[2]).Native()
	if err := doc.Add(parent, args[1], value, cfg.Comment); err != nil {
		return err
	}
	return cfg.emit(cc, file, before, doc)
}
