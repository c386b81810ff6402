package main

import (
	"github.com/scott-cotton/cli"
)

type FmtConfig struct {
	*MainConfig
	Fmt *cli.Command
}

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, _, err := cfg.loadDoc(file)
		if err != nil {
			return err
		}
		if cfg.InPlace && file != "-" {
			if err := doc.Save(file, cfg.fileOpts()...); err != nil {
				return err
			}
			continue
		}
		if _, err := cc.Out.Write(doc.Dump(cfg.viewOpts(cc)...)); err != nil {
			return err
		}
	}
	return nil
}
