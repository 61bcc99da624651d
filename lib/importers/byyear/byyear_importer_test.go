package byyear

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/model"
)

const popCSV = `AuthorityCode,1991,1992,1993
W06000001,100,110,120
W06000002,200,,220
`

var popCols = datasets.ColumnMapping{
	datasets.AuthCode:          "AuthorityCode",
	datasets.SingleMeasureCode: "POP",
	datasets.SingleMeasureName: "Population",
}

func importCSV(areas *model.Areas, text string, f *filters.Filters) error {
	i := NewImporter(consoles.NewDiscardConsole(), areas)
	return i.Import(strings.NewReader(text), popCols, f)
}

func TestImport(t *testing.T) {
	t.Parallel()

	areas := model.NewAreas()

	err := importCSV(areas, popCSV, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"W06000001", "W06000002"}, areas.Codes())

	a, err := areas.GetArea("W06000001")
	require.NoError(t, err)

	m, err := a.GetMeasure("pop")
	require.NoError(t, err)
	assert.Equal(t, "Population", m.Label())
	assert.Equal(t, map[int]float64{1991: 100, 1992: 110, 1993: 120}, m.Values())

	a, err = areas.GetArea("W06000002")
	require.NoError(t, err)

	m, err = a.GetMeasure("pop")
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1991: 200, 1993: 220}, m.Values())
}

func TestImportKeepsNames(t *testing.T) {
	t.Parallel()

	areas := model.NewAreas()
	require.NoError(t, areas.GetOrCreate("W06000001").SetName("eng", "Isle of Anglesey"))

	err := importCSV(areas, popCSV, nil)
	require.NoError(t, err)

	a, err := areas.GetArea("W06000001")
	require.NoError(t, err)
	assert.True(t, a.HasName("eng"))
	assert.Equal(t, 1, a.Size())
}

func TestImportSkipsFilteredMeasure(t *testing.T) {
	t.Parallel()

	areas := model.NewAreas()
	f, err := filters.New(nil, []string{"area"}, "")
	require.NoError(t, err)

	// Not even parsed
	err = importCSV(areas, "AuthorityCode,abc\nW06000001,x\n", f)

	assert.NoError(t, err)
	assert.Equal(t, 0, areas.Size())
}

func TestImportAreaFilter(t *testing.T) {
	t.Parallel()

	areas := model.NewAreas()
	f, err := filters.New([]string{"W06000002"}, nil, "")
	require.NoError(t, err)

	err = importCSV(areas, popCSV, f)
	require.NoError(t, err)

	assert.Equal(t, []string{"W06000002"}, areas.Codes())
}

func TestImportYearRange(t *testing.T) {
	t.Parallel()

	areas := model.NewAreas()
	f, err := filters.New(nil, nil, "1991-1992")
	require.NoError(t, err)

	err = importCSV(areas, popCSV, f)
	require.NoError(t, err)

	a, err := areas.GetArea("W06000001")
	require.NoError(t, err)

	m, err := a.GetMeasure("pop")
	require.NoError(t, err)
	assert.Equal(t, []int{1991, 1992}, m.Years())
}

func TestImportIgnoresValuesOutsideYearRange(t *testing.T) {
	t.Parallel()

	areas := model.NewAreas()

	f, err := filters.New(nil, nil, "1991")
	require.NoError(t, err)

	err = importCSV(areas, "AuthorityCode,1991,1992\nW06000001,100,n/a\n", f)
	require.NoError(t, err)

	a, err := areas.GetArea("W06000001")
	require.NoError(t, err)

	m, err := a.GetMeasure("pop")
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1991: 100}, m.Values())
}

func TestImportInvalidValue(t *testing.T) {
	t.Parallel()

	err := importCSV(model.NewAreas(), "AuthorityCode,1991\nW06000001,abc\n", nil)

	assert.ErrorIs(t, err, model.ErrParseFailure)
}

func TestImportInvalidYear(t *testing.T) {
	t.Parallel()

	err := importCSV(model.NewAreas(), "AuthorityCode,Year 1\nW06000001,1\n", nil)

	assert.ErrorIs(t, err, model.ErrParseFailure)
}

func TestImportPartialCommitOnFailure(t *testing.T) {
	t.Parallel()

	areas := model.NewAreas()

	err := importCSV(areas, "AuthorityCode,1991\nW06000001,1\nW06000002,x\n", nil)

	assert.ErrorIs(t, err, model.ErrParseFailure)
	assert.Equal(t, []string{"W06000001"}, areas.Codes())
}

func TestImportMissingMeasureMapping(t *testing.T) {
	t.Parallel()

	i := NewImporter(consoles.NewDiscardConsole(), model.NewAreas())

	err := i.Import(strings.NewReader(popCSV), datasets.ColumnMapping{datasets.SingleMeasureCode: "pop"}, nil)
	assert.ErrorIs(t, err, model.ErrMissingColumns)

	err = i.Import(strings.NewReader(popCSV), datasets.ColumnMapping{datasets.SingleMeasureName: "Population"}, nil)
	assert.ErrorIs(t, err, model.ErrMissingColumns)
}
