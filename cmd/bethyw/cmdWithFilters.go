package main

import (
	"os"

	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/importers"
	"github.com/pescuma/bethyw/lib/model"
	"github.com/pescuma/bethyw/lib/workspace"
)

type cmdWithFilters struct {
	Dir      string   `short:"D" default:"datasets" env:"BETHYW_DIR" type:"path" help:"Directory with the dataset files."`
	Datasets []string `short:"d" env:"BETHYW_DATASETS" help:"Datasets to import. Default is all of them."`
	Areas    []string `short:"a" env:"BETHYW_AREAS" help:"Authority codes of the areas to import. Accepts glob patterns. Default is all of them."`
	Measures []string `short:"m" env:"BETHYW_MEASURES" help:"Codenames of the measures to import. Default is all of them."`
	Years    string   `short:"y" env:"BETHYW_YEARS" help:"Years to import: a single year or an inclusive range like 2010-2015. Default is all of them."`
	Partial  bool     `env:"BETHYW_PARTIAL" help:"Keep what was read from a file before it failed to import."`
}

func (c *cmdWithFilters) createFilter() (*filters.Filters, error) {
	return filters.New(filters.Normalize(c.Areas), filters.Normalize(c.Measures), c.Years)
}

func (c *cmdWithFilters) load(ctx *context) (*model.Areas, error) {
	f, err := c.createFilter()
	if err != nil {
		return nil, err
	}

	ws, err := workspace.NewWorkspace(ctx.console, c.Dir, os.Stderr)
	if err != nil {
		return nil, err
	}

	err = ws.Load(c.Datasets, f, &importers.Options{Atomic: !c.Partial})
	if err != nil {
		return nil, err
	}

	return ws.Areas(), nil
}
