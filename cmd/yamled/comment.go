package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

type CommentConfig struct {
	*MainConfig
	Text string `cli:"name=s aliases=set desc='replace the comment with this text'"`

	Comment *cli.Command
}

func comment(cfg *CommentConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Comment.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: comment [-s text] <path> [file]", cli.ErrUsage)
	}
	file := fileArg(args, 1)
	doc, before, err := cfg.loadDoc(file)
	if err != nil {
		return err
	}
	path := ir.ParsePath(args[0])
	if cfg.Text == "" {
		text, err := doc.GetComment(path)
		if err != nil {
			return err
		}
		if text != "" {
			_, err = fmt.Fprintln(cc.Out, text)
		}
		return err
	}
	if err := doc.SetComment(path, cfg.Text); err != nil {
		return err
	}
	return cfg.emit(cc, file, before, doc)
}
