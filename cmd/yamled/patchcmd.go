package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch <patchfile> [file]", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	file := fileArg(args, 1)
	doc, before, err := cfg.loadDoc(file)
	if err != nil {
		return err
	}
	if err := doc.Patch(p); err != nil {
		return err
	}
	return cfg.emit(cc, file, before, doc)
}
