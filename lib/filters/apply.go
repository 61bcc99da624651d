package filters

import (
	"github.com/pescuma/bethyw/lib/model"
)

// ParseAndFilterAreas parses the raw filters given by a user and applies them
// to areas.
func ParseAndFilterAreas(areas *model.Areas, areasList, measuresList, years string) (*model.Areas, error) {
	f, err := New(ParseList(areasList), ParseList(measuresList), years)
	if err != nil {
		return nil, err
	}

	return FilterAreas(areas, f), nil
}

// FilterAreas returns a copy of areas with only what f allows. Names are
// always kept.
func FilterAreas(areas *model.Areas, f *Filters) *model.Areas {
	result := model.NewAreas()

	for _, a := range areas.ListAreas() {
		if !f.AllowsArea(a.Code()) {
			continue
		}

		result.SetArea(a.Code(), FilterArea(a, f))
	}

	return result
}

func FilterArea(area *model.Area, f *Filters) *model.Area {
	result := model.NewArea(area.Code())

	for lang, name := range area.Names() {
		_ = result.SetName(lang, name)
	}

	for _, m := range area.Measures() {
		if !f.AllowsMeasure(m.Codename()) {
			continue
		}

		fm := model.NewMeasure(m.Codename(), m.Label())
		for year, value := range m.Values() {
			if f.AllowsYear(year) {
				fm.SetValue(year, value)
			}
		}

		result.SetMeasure(fm.Codename(), fm)
	}

	return result
}
