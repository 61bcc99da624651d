package main

import (
	"io"

	"github.com/pescuma/bethyw/lib/render"
)

type XLSXCmd struct {
	cmdWithFilters

	Output string `short:"o" required:"" type:"path" help:"File to write to."`
}

func (c *XLSXCmd) Run(ctx *context) error {
	areas, err := c.load(ctx)
	if err != nil {
		return err
	}

	err = writeOutput(c.Output, func(w io.Writer) error {
		return render.WriteXLSX(w, areas)
	})
	if err != nil {
		return err
	}

	ctx.console.Printf("Written %v areas to %v\n", areas.Size(), c.Output)

	return nil
}
