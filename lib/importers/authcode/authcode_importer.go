package authcode

import (
	"io"

	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/importers/common"
	"github.com/pescuma/bethyw/lib/model"
)

// Importer reads CSV files with one local authority per row: its code, its
// English name and its Welsh name. It carries no measures.
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

// Import ignores the filters: names are needed whatever is selected.
func (i *Importer) Import(r io.Reader, cols datasets.ColumnMapping, _ *filters.Filters) error {
	err := cols.Require(datasets.AuthCode, datasets.AuthNameEng, datasets.AuthNameCym)
	if err != nil {
		return err
	}

	data, err := common.ReadAll(r)
	if err != nil {
		return err
	}

	var codeCol, engCol, cymCol int
	header := true
	imported := 0

	err = common.ForEachCSVRecord(data, func(line int, record []string) error {
		if header {
			header = false

			if len(record) != 3 {
				return errors.Wrapf(model.ErrParseFailure, "line %v: expected 3 columns in header, found %v", line, len(record))
			}

			index := common.HeaderIndex(record)
			codeCol = common.FindColumn(index, cols[datasets.AuthCode], 0)
			engCol = common.FindColumn(index, cols[datasets.AuthNameEng], 1)
			cymCol = common.FindColumn(index, cols[datasets.AuthNameCym], 2)

			if codeCol == engCol || codeCol == cymCol || engCol == cymCol {
				codeCol, engCol, cymCol = 0, 1, 2
			}

			return nil
		}

		code := record[codeCol]
		if code == "" {
			return errors.Wrapf(model.ErrParseFailure, "line %v: empty authority code", line)
		}

		area := model.NewArea(code)
		_ = area.SetName(model.LangEnglish, record[engCol])
		_ = area.SetName(model.LangWelsh, record[cymCol])

		i.areas.SetArea(code, area)
		imported++

		return nil
	})
	if err != nil {
		return err
	}

	i.console.Printf("Imported names of %v areas\n", imported)

	return nil
}
