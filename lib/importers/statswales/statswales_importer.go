package statswales

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/importers/common"
	"github.com/pescuma/bethyw/lib/model"
)

// Importer reads StatsWales OData JSON documents: a "value" array with one
// reading per row.
type Importer struct {
	console consoles.Console
	areas   *model.Areas
}

type document struct {
	Value    []map[string]json.RawMessage `json:"value"`
	NextLink string                       `json:"odata.nextLink"`
}

type rowKeys struct {
	code        string
	name        string
	measureCode string
	measureName string
	year        string
	value       string

	// Set when the whole document holds a single measure
	singleCode  string
	singleLabel string
}

func NewImporter(console consoles.Console, areas *model.Areas) *Importer {
	return &Importer{
		console: console,
		areas:   areas,
	}
}

func (i *Importer) Import(r io.Reader, cols datasets.ColumnMapping, f *filters.Filters) error {
	keys, err := prepareKeys(cols)
	if err != nil {
		return err
	}

	data, err := common.ReadAll(r)
	if err != nil {
		return err
	}

	var doc document
	err = json.Unmarshal(data, &doc)
	if err != nil {
		return errors.Wrapf(model.ErrParseFailure, "invalid JSON document: %v", err)
	}

	if doc.Value == nil {
		return errors.Wrap(model.ErrParseFailure, `JSON document has no "value" array`)
	}

	if doc.NextLink != "" {
		i.console.Printf("Document has more pages, which will not be loaded: %v\n", doc.NextLink)
	}

	imported := 0
	for n, row := range doc.Value {
		ok, err := i.importRow(row, keys, f)
		if err != nil {
			return errors.Wrapf(err, "row %v", n)
		}

		if ok {
			imported++
		}
	}

	i.console.Printf("Imported %v of %v rows\n", imported, len(doc.Value))

	return nil
}

func prepareKeys(cols datasets.ColumnMapping) (*rowKeys, error) {
	err := cols.Require(datasets.AuthCode, datasets.AuthNameEng, datasets.Year, datasets.Value)
	if err != nil {
		return nil, err
	}

	result := &rowKeys{
		code:  cols[datasets.AuthCode],
		name:  cols[datasets.AuthNameEng],
		year:  cols[datasets.Year],
		value: cols[datasets.Value],
	}

	if cols.Has(datasets.SingleMeasureCode) {
		err = cols.Require(datasets.SingleMeasureName)
		if err != nil {
			return nil, err
		}

		result.singleCode = cols[datasets.SingleMeasureCode]
		result.singleLabel = cols[datasets.SingleMeasureName]

	} else {
		err = cols.Require(datasets.MeasureCode, datasets.MeasureName)
		if err != nil {
			return nil, err
		}

		result.measureCode = cols[datasets.MeasureCode]
		result.measureName = cols[datasets.MeasureName]
	}

	return result, nil
}

func (i *Importer) importRow(row map[string]json.RawMessage, keys *rowKeys, f *filters.Filters) (bool, error) {
	code, err := getString(row, keys.code)
	if err != nil {
		return false, err
	}
	if code == "" {
		return false, errors.Wrap(model.ErrParseFailure, "empty authority code")
	}

	if !f.AllowsArea(code) {
		return false, nil
	}

	name, err := getString(row, keys.name)
	if err != nil {
		return false, err
	}

	codename, label := keys.singleCode, keys.singleLabel
	if codename == "" {
		codename, err = getString(row, keys.measureCode)
		if err != nil {
			return false, err
		}

		label, err = getString(row, keys.measureName)
		if err != nil {
			return false, err
		}
	}

	yearText, err := getString(row, keys.year)
	if err != nil {
		return false, err
	}

	year, err := strconv.Atoi(strings.TrimSpace(yearText))
	if err != nil {
		return false, errors.Wrapf(model.ErrParseFailure, "invalid year: %q", yearText)
	}

	if isNull(row, keys.value) {
		return false, nil
	}

	value, err := getNumber(row, keys.value)
	if err != nil {
		return false, err
	}

	measure := model.NewMeasure(codename, label)
	measure.SetValue(year, value)

	if !f.AllowsMeasure(measure.Codename()) {
		return false, nil
	}

	if !f.AllowsYear(year) {
		return false, nil
	}

	area := i.areas.GetOrCreate(code)
	_ = area.SetName(model.LangEnglish, name)
	area.SetMeasure(codename, measure)

	return true, nil
}

// isNull reports a value present as null, which means there is no reading.
func isNull(row map[string]json.RawMessage, key string) bool {
	raw, ok := row[key]
	return ok && string(raw) == "null"
}

func getString(row map[string]json.RawMessage, key string) (string, error) {
	raw, ok := row[key]
	if !ok || string(raw) == "null" {
		return "", errors.Wrapf(model.ErrParseFailure, "missing key %v", key)
	}

	var result string
	err := json.Unmarshal(raw, &result)
	if err != nil {
		return "", errors.Wrapf(model.ErrParseFailure, "key %v is not a string: %s", key, raw)
	}

	return result, nil
}

// getNumber accepts both JSON numbers and numbers encoded as strings.
func getNumber(row map[string]json.RawMessage, key string) (float64, error) {
	raw, ok := row[key]
	if !ok || string(raw) == "null" {
		return 0, errors.Wrapf(model.ErrParseFailure, "missing key %v", key)
	}

	var result float64
	err := json.Unmarshal(raw, &result)
	if err == nil {
		return result, nil
	}

	var text string
	err = json.Unmarshal(raw, &text)
	if err == nil {
		result, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err == nil {
			return result, nil
		}
	}

	return 0, errors.Wrapf(model.ErrParseFailure, "key %v is not a number: %s", key, raw)
}
