package main

import (
	"github.com/pescuma/bethyw/lib/render"
	"github.com/pescuma/bethyw/lib/server"
)

type ServeCmd struct {
	cmdWithFilters

	Port      uint `default:"2427" env:"BETHYW_PORT" help:"Port to listen to."`
	Precision int  `short:"p" default:"6" env:"BETHYW_PRECISION" help:"Decimal places of the values in text output."`
}

func (c *ServeCmd) Run(ctx *context) error {
	areas, err := c.load(ctx)
	if err != nil {
		return err
	}

	return server.Run(ctx.console, areas, &server.Options{
		Port:   c.Port,
		Render: &render.Options{Precision: c.Precision},
	})
}
