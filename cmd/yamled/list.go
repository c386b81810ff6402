package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	yamled "github.com/signadot/yamled-format/go-yamled"
	"github.com/signadot/yamled-format/go-yamled/ir"
)

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='expression filter over path, key, kind, indent, value'"`

	List *cli.Command
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	doc, _, err := cfg.loadDoc(fileArg(args, 0))
	if err != nil {
		return err
	}
	var paths []string
	if cfg.Where != "" {
		paths, err = doc.Select(cfg.Where)
		if err != nil {
			return err
		}
	} else {
		doc.Visit(func(n *ir.Node, ancestors ir.Path) yamled.VisitResult {
			if n.Kind.Structural() && n.Key != "" {
				paths = append(paths, ancestors.Child(n.Key).String())
			}
			return yamled.VisitKeep
		})
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(cc.Out, p); err != nil {
			return err
		}
	}
	return nil
}
