package byyear

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/importers/common"
	"github.com/pescuma/bethyw/lib/model"
)

// Importer reads CSV files holding a single measure: the header has the
// authority code column followed by one column per year, and each row has the
// readings of one area.
type Importer struct {
	console consoles.Console
	areas   *model.Areas
}

func NewImporter(console consoles.Console, areas *model.Areas) *Importer {
	return &Importer{
		console: console,
		areas:   areas,
	}
}

func (i *Importer) Import(r io.Reader, cols datasets.ColumnMapping, f *filters.Filters) error {
	err := cols.Require(datasets.SingleMeasureCode, datasets.SingleMeasureName)
	if err != nil {
		return err
	}

	codename := cols[datasets.SingleMeasureCode]
	label := cols[datasets.SingleMeasureName]

	if !f.AllowsMeasure(codename) {
		i.console.Printf("Skipping measure %v: filtered out\n", codename)
		return nil
	}

	data, err := common.ReadAll(r)
	if err != nil {
		return err
	}

	var years []int
	header := true
	imported := 0

	err = common.ForEachCSVRecord(data, func(line int, record []string) error {
		if header {
			header = false

			years, err = parseHeader(line, record)
			return err
		}

		code := record[0]
		if code == "" {
			return errors.Wrapf(model.ErrParseFailure, "line %v: empty authority code", line)
		}

		if !f.AllowsArea(code) {
			return nil
		}

		measure := model.NewMeasure(codename, label)

		for j, year := range years {
			cell := record[j+1]
			if cell == "" {
				continue
			}

			if !f.AllowsYear(year) {
				continue
			}

			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return errors.Wrapf(model.ErrParseFailure, "line %v: invalid value for %v: %q", line, year, cell)
			}

			measure.SetValue(year, value)
		}

		area := model.NewArea(code)
		area.SetMeasure(codename, measure)

		i.areas.SetArea(code, area)
		imported++

		return nil
	})
	if err != nil {
		return err
	}

	i.console.Printf("Imported %v for %v areas\n", codename, imported)

	return nil
}

func parseHeader(line int, record []string) ([]int, error) {
	if len(record) < 1 {
		return nil, errors.Wrapf(model.ErrParseFailure, "line %v: empty header", line)
	}

	years := make([]int, 0, len(record)-1)
	for _, cell := range record[1:] {
		year, err := strconv.Atoi(cell)
		if err != nil {
			return nil, errors.Wrapf(model.ErrParseFailure, "line %v: invalid year in header: %q", line, cell)
		}

		years = append(years, year)
	}

	return years, nil
}
