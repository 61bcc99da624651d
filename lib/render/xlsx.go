package render

import (
	"io"
	"sort"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/pescuma/bethyw/lib/model"
)

const xlsxSheet = "Areas"

// WriteXLSX writes a workbook with one row per area and measure. Years are
// columns; a year without a reading is left blank.
func WriteXLSX(w io.Writer, areas *model.Areas) error {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", xlsxSheet)
	if err != nil {
		return errors.Wrap(err, "error creating sheet")
	}

	years := collectYears(areas)

	header := []any{"Code", "Name (eng)", "Name (cym)", "Measure", "Label"}
	for _, y := range years {
		header = append(header, y)
	}
	header = append(header, "Average", "Diff.", "% Diff.")

	err = setRow(f, 1, header)
	if err != nil {
		return err
	}

	row := 2
	for _, a := range areas.ListAreas() {
		eng, _ := a.GetName(model.LangEnglish)
		cym, _ := a.GetName(model.LangWelsh)

		if a.Size() == 0 {
			err = setRow(f, row, []any{a.Code(), eng, cym})
			if err != nil {
				return err
			}
			row++
			continue
		}

		for _, m := range a.Measures() {
			cells := []any{a.Code(), eng, cym, m.Codename(), m.Label()}
			for _, y := range years {
				v, err := m.GetValue(y)
				if err != nil {
					cells = append(cells, nil)
				} else {
					cells = append(cells, v)
				}
			}
			cells = append(cells, m.Average(), m.Difference(), m.DifferenceAsPercentage())

			err = setRow(f, row, cells)
			if err != nil {
				return err
			}
			row++
		}
	}

	err = f.Write(w)
	if err != nil {
		return errors.Wrap(err, "error writing XLSX")
	}

	return nil
}

func collectYears(areas *model.Areas) []int {
	years := set.New[int](0)
	for _, a := range areas.ListAreas() {
		for _, m := range a.Measures() {
			for _, y := range m.Years() {
				years.Insert(y)
			}
		}
	}

	result := years.Slice()
	sort.Ints(result)

	return result
}

func setRow(f *excelize.File, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrapf(err, "invalid row %v", row)
	}

	err = f.SetSheetRow(xlsxSheet, cell, &cells)
	if err != nil {
		return errors.Wrapf(err, "error writing row %v", row)
	}

	return nil
}
