package importers

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/importers/authcode"
	"github.com/pescuma/bethyw/lib/importers/byyear"
	"github.com/pescuma/bethyw/lib/importers/common"
	"github.com/pescuma/bethyw/lib/importers/statswales"
	"github.com/pescuma/bethyw/lib/model"
)

type Importer interface {
	Import(r io.Reader, cols datasets.ColumnMapping, f *filters.Filters) error
}

type Options struct {
	// Atomic makes a failed import leave the registry untouched. Without it,
	// rows read before the failure stay in the registry.
	Atomic bool
}

// Populate imports one source into areas, choosing the importer by sourceType.
func Populate(console consoles.Console, areas *model.Areas, r io.Reader, sourceType datasets.SourceType,
	cols datasets.ColumnMapping, f *filters.Filters, opts *Options,
) error {
	if opts == nil {
		opts = &Options{}
	}

	data, err := common.ReadAll(r)
	if err != nil {
		return err
	}

	target := areas
	if opts.Atomic {
		target = model.NewAreas()
	}

	importer, err := NewImporter(console, target, sourceType)
	if err != nil {
		return err
	}

	err = importer.Import(bytes.NewReader(data), cols, f)
	if err != nil {
		return err
	}

	if opts.Atomic {
		areas.Merge(target)
	}

	return nil
}

func NewImporter(console consoles.Console, areas *model.Areas, sourceType datasets.SourceType) (Importer, error) {
	switch sourceType {
	case datasets.AuthorityCodeCSV:
		return authcode.NewImporter(console, areas), nil
	case datasets.AuthorityByYearCSV:
		return byyear.NewImporter(console, areas), nil
	case datasets.WelshStatsJSON:
		return statswales.NewImporter(console, areas), nil
	default:
		return nil, errors.Wrapf(model.ErrParseFailure, "unknown source type: %v", int(sourceType))
	}
}
