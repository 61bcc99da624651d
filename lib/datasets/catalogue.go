package datasets

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/bethyw/lib/model"
)

// InputFile describes one known StatsWales dataset file.
type InputFile struct {
	Code string
	Name string
	File string
	Type SourceType
	Cols ColumnMapping
}

var Areas = InputFile{
	Code: "areas",
	Name: "Areas",
	File: "areas.csv",
	Type: AuthorityCodeCSV,
	Cols: ColumnMapping{
		AuthCode:    "Local authority code",
		AuthNameEng: "Name (eng)",
		AuthNameCym: "Name (cym)",
	},
}

var Datasets = []InputFile{
	{
		Code: "popden",
		Name: "Population density",
		File: "popu1009.json",
		Type: WelshStatsJSON,
		Cols: ColumnMapping{
			AuthCode:    "Localauthority_Code",
			AuthNameEng: "Localauthority_ItemName_ENG",
			MeasureCode: "Measure_Code",
			MeasureName: "Measure_ItemName_ENG",
			Year:        "Year_Code",
			Value:       "Data",
		},
	},
	{
		Code: "biz",
		Name: "Active Businesses",
		File: "econ0080.json",
		Type: WelshStatsJSON,
		Cols: ColumnMapping{
			AuthCode:    "Area_Code",
			AuthNameEng: "Area_ItemName_ENG",
			MeasureCode: "Variable_Code",
			MeasureName: "Variable_ItemName_ENG",
			Year:        "Year_Code",
			Value:       "Data",
		},
	},
	{
		Code: "aqi",
		Name: "Air Quality Indicators",
		File: "envi0201.json",
		Type: WelshStatsJSON,
		Cols: ColumnMapping{
			AuthCode:    "Area_Code",
			AuthNameEng: "Area_ItemName_ENG",
			MeasureCode: "Pollutant_ItemName_ENG",
			MeasureName: "Pollutant_ItemName_ENG",
			Year:        "Year_Code",
			Value:       "Data",
		},
	},
	{
		Code: "trains",
		Name: "Rail passenger journeys",
		File: "tran0152.json",
		Type: WelshStatsJSON,
		Cols: ColumnMapping{
			AuthCode:          "LocalAuthority_Code",
			AuthNameEng:       "LocalAuthority_ItemName_ENG",
			SingleMeasureCode: "rail",
			SingleMeasureName: "Rail passenger journeys",
			Year:              "Year_Code",
			Value:             "Data",
		},
	},
	{
		Code: "complete-popden",
		Name: "Population density",
		File: "complete-popu1009-popden.csv",
		Type: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "dens",
			SingleMeasureName: "Population density",
		},
	},
	{
		Code: "complete-pop",
		Name: "Population",
		File: "complete-popu1009-pop.csv",
		Type: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "pop",
			SingleMeasureName: "Population",
		},
	},
	{
		Code: "complete-area",
		Name: "Land area",
		File: "complete-popu1009-area.csv",
		Type: AuthorityByYearCSV,
		Cols: ColumnMapping{
			AuthCode:          "AuthorityCode",
			SingleMeasureCode: "area",
			SingleMeasureName: "Land area",
		},
	},
}

// Find returns the dataset with the given code. The areas file is included.
func Find(code string) (InputFile, error) {
	result, ok := lo.Find(List(), func(f InputFile) bool { return f.Code == code })
	if !ok {
		return InputFile{}, errors.Wrapf(model.ErrNotFound, "unknown dataset: %v", code)
	}

	return result, nil
}

// List returns the areas file followed by every dataset.
func List() []InputFile {
	return append([]InputFile{Areas}, Datasets...)
}

// Codes returns the codes of the datasets, not including the areas file.
func Codes() []string {
	return lo.Map(Datasets, func(f InputFile, _ int) string { return f.Code })
}
