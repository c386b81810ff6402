package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	yamled "github.com/signadot/yamled-format/go-yamled"
	"github.com/signadot/yamled-format/go-yamled/encode"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='render with color'"`
	Diff     bool `cli:"name=diff desc='print the edit as a diff instead of writing'"`
	InPlace  bool `cli:"name=i aliases=inplace desc='rewrite the input file in place'"`
	Collapse bool `cli:"name=collapse desc='drop blank lines inside literal blocks'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// fileArg returns the optional trailing file argument, "" meaning
// stdin.
func fileArg(args []string, i int) string {
	if len(args) <= i {
		return ""
	}
	return args[i]
}

func (cfg *MainConfig) loadDoc(file string) (*yamled.Document, []byte, error) {
	var (
		d   []byte
		err error
	)
	if file == "" || file == "-" {
		d, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading stdin: %w", err)
		}
	} else {
		d, err = os.ReadFile(file)
		if err != nil {
			return nil, nil, fmt.Errorf("could not read %q: %w", file, err)
		}
	}
	return yamled.Parse(d), d, nil
}

// fileOpts are the encode options safe for writing back to a file.
func (cfg *MainConfig) fileOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.CollapseLiteralBlankLines(cfg.Collapse),
	}
}

// viewOpts add colors for terminal display.
func (cfg *MainConfig) viewOpts(cc *cli.Context) []encode.EncodeOption {
	res := cfg.fileOpts()
	if cfg.Color || (cc.Out == os.Stdout && isatty.IsTerminal(os.Stdout.Fd())) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// emit writes an edited document: as a diff preview with -diff, back
// to its source file with -i, or to the configured output otherwise.
func (cfg *MainConfig) emit(cc *cli.Context, file string, before []byte, doc *yamled.Document) error {
	if cfg.Diff {
		_, err := fmt.Fprint(cc.Out, yamled.Diff(before, doc.Dump(cfg.fileOpts()...)))
		return err
	}
	if cfg.InPlace {
		if file == "" || file == "-" {
			return fmt.Errorf("%w: -i requires a file argument", cli.ErrUsage)
		}
		return doc.Save(file, cfg.fileOpts()...)
	}
	_, err := cc.Out.Write(doc.Dump(cfg.viewOpts(cc)...))
	return err
}
