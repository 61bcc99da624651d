package main

import (
	"fmt"

	"github.com/pescuma/bethyw/lib/datasets"
)

type DatasetsCmd struct {
}

func (c *DatasetsCmd) Run(_ *context) error {
	for _, d := range datasets.List() {
		fmt.Printf("%-16v %-26v %-30v %v\n", d.Code, d.Name, d.File, d.Type)
	}

	return nil
}
