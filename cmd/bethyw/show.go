package main

import (
	"io"

	"github.com/pescuma/bethyw/lib/render"
)

type ShowCmd struct {
	cmdWithFilters

	Precision int    `short:"p" default:"6" env:"BETHYW_PRECISION" help:"Decimal places of the values."`
	Humanize  bool   `short:"H" env:"BETHYW_HUMANIZE" help:"Group thousands in the values."`
	Output    string `short:"o" type:"path" help:"File to write to. Default is stdout."`
}

func (c *ShowCmd) Run(ctx *context) error {
	areas, err := c.load(ctx)
	if err != nil {
		return err
	}

	opts := &render.Options{
		Precision: c.Precision,
		Humanize:  c.Humanize,
	}

	return writeOutput(c.Output, func(w io.Writer) error {
		return render.WriteAreas(w, areas, opts)
	})
}
