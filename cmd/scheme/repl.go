package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alttpo/scheme"
	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"
)

const (
	banner = "Welcome to Scheme REPL!"
	prompt = "> "
)

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	in   lineReader
	out  io.Writer
	dump bool
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// run reads lines until EOF. Parse errors are printed and never end the loop.
func (r *repl) run() error {
	fmt.Fprintln(r.out, banner)
	for {
		line, err := r.in.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		if line == "" {
			continue
		}
		r.in.AppendHistory(line)
		r.eval(line)
	}
}

func (r *repl) eval(line string) {
	v, err := scheme.Parse(line)
	if err != nil {
		fmt.Fprintln(r.out, scheme.Report(err))
		return
	}
	if r.dump {
		dumper.Fdump(r.out, v)
		return
	}
	fmt.Fprintf(r.out, "%#v\n", v)
}
