package datasets

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/bethyw/lib/model"
)

// Column is a logical field of a source file.
type Column int

const (
	AuthCode Column = iota
	AuthNameEng
	AuthNameCym
	MeasureCode
	MeasureName
	SingleMeasureCode
	SingleMeasureName
	Year
	Value
)

func (c Column) String() string {
	switch c {
	case AuthCode:
		return "auth code"
	case AuthNameEng:
		return "auth name (eng)"
	case AuthNameCym:
		return "auth name (cym)"
	case MeasureCode:
		return "measure code"
	case MeasureName:
		return "measure name"
	case SingleMeasureCode:
		return "single measure code"
	case SingleMeasureName:
		return "single measure name"
	case Year:
		return "year"
	case Value:
		return "value"
	default:
		panic(c)
	}
}

// ColumnMapping maps the logical fields to the column or key names of a source.
// For SingleMeasureCode and SingleMeasureName the mapped value is the measure
// itself, as the source holds only one measure.
type ColumnMapping map[Column]string

func (cm ColumnMapping) Has(col Column) bool {
	_, ok := cm[col]
	return ok
}

func (cm ColumnMapping) Get(col Column) (string, error) {
	result, ok := cm[col]
	if !ok {
		return "", errors.Wrapf(model.ErrMissingColumns, "column mapping has no entry for %v", col)
	}

	return result, nil
}

// Require fails with ErrMissingColumns naming every absent column.
func (cm ColumnMapping) Require(cols ...Column) error {
	missing := lo.Filter(cols, func(c Column, _ int) bool { return !cm.Has(c) })
	if len(missing) == 0 {
		return nil
	}

	names := lo.Map(missing, func(c Column, _ int) string { return c.String() })

	return errors.Wrapf(model.ErrMissingColumns, "column mapping has no entry for %v", strings.Join(names, ", "))
}
