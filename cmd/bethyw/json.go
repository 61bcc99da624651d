package main

import (
	"io"

	"github.com/pescuma/bethyw/lib/render"
)

type JSONCmd struct {
	cmdWithFilters

	Output string `short:"o" type:"path" help:"File to write to. Default is stdout."`
}

func (c *JSONCmd) Run(ctx *context) error {
	areas, err := c.load(ctx)
	if err != nil {
		return err
	}

	text, err := render.ToJSON(areas)
	if err != nil {
		return err
	}

	return writeOutput(c.Output, func(w io.Writer) error {
		_, err := io.WriteString(w, text+"\n")
		return err
	})
}
