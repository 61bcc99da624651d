package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/bethyw/lib/model"
)

func TestParseSourceType(t *testing.T) {
	t.Parallel()

	st, err := ParseSourceType("authority-code-csv")
	require.NoError(t, err)
	assert.Equal(t, AuthorityCodeCSV, st)

	st, err = ParseSourceType(" AuthorityByYearCSV ")
	require.NoError(t, err)
	assert.Equal(t, AuthorityByYearCSV, st)

	st, err = ParseSourceType("json")
	require.NoError(t, err)
	assert.Equal(t, WelshStatsJSON, st)

	_, err = ParseSourceType("xml")
	assert.ErrorIs(t, err, model.ErrParseFailure)
}

func TestSourceTypeStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, st := range []SourceType{AuthorityCodeCSV, AuthorityByYearCSV, WelshStatsJSON} {
		parsed, err := ParseSourceType(st.String())
		assert.NoError(t, err)
		assert.Equal(t, st, parsed)
	}
}

func TestColumnMappingGet(t *testing.T) {
	t.Parallel()

	cols := ColumnMapping{AuthCode: "code"}

	v, err := cols.Get(AuthCode)
	require.NoError(t, err)
	assert.Equal(t, "code", v)

	_, err = cols.Get(Year)
	assert.ErrorIs(t, err, model.ErrMissingColumns)
}

func TestColumnMappingRequire(t *testing.T) {
	t.Parallel()

	cols := ColumnMapping{SingleMeasureCode: "pop"}

	assert.NoError(t, cols.Require(SingleMeasureCode))

	err := cols.Require(SingleMeasureCode, SingleMeasureName, Year)
	assert.ErrorIs(t, err, model.ErrMissingColumns)
	assert.Contains(t, err.Error(), "single measure name, year")
}

func TestFind(t *testing.T) {
	t.Parallel()

	f, err := Find("complete-pop")
	require.NoError(t, err)
	assert.Equal(t, AuthorityByYearCSV, f.Type)
	assert.Equal(t, "pop", f.Cols[SingleMeasureCode])

	f, err = Find("areas")
	require.NoError(t, err)
	assert.Equal(t, AuthorityCodeCSV, f.Type)

	_, err = Find("nope")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCatalogueCodesAreUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, f := range List() {
		assert.False(t, seen[f.Code], f.Code)
		seen[f.Code] = true
	}

	assert.Len(t, Codes(), len(Datasets))
}
