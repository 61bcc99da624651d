package filters

import (
	"strings"

	"github.com/samber/lo"
)

// Filters narrows what an import commits to the registry.
type Filters struct {
	Areas    *StringFilter
	Measures *StringFilter
	Years    YearRange
}

// None returns filters that allow everything.
func None() *Filters {
	return &Filters{}
}

// New builds filters from the raw lists given by the user.
func New(areas []string, measures []string, years string) (*Filters, error) {
	af, err := NewAreasFilter(areas...)
	if err != nil {
		return nil, err
	}

	mf, err := NewMeasuresFilter(measures...)
	if err != nil {
		return nil, err
	}

	yr, err := ParseYearRange(years)
	if err != nil {
		return nil, err
	}

	return &Filters{
		Areas:    af,
		Measures: mf,
		Years:    yr,
	}, nil
}

func (f *Filters) AllowsArea(code string) bool {
	return f == nil || f.Areas.Allows(code)
}

func (f *Filters) AllowsMeasure(codename string) bool {
	return f == nil || f.Measures.Allows(codename)
}

func (f *Filters) AllowsYear(year int) bool {
	return f == nil || f.Years.Contains(year)
}

// ParseList splits a comma separated list. "all" anywhere in the list means
// no restriction, which is returned as an empty list.
func ParseList(text string) []string {
	return Normalize(strings.Split(text, ","))
}

// Normalize trims the entries of a list, drops empty and repeated ones, and
// returns an empty list if any entry is "all".
func Normalize(entries []string) []string {
	entries = lo.Map(entries, func(e string, _ int) string { return strings.TrimSpace(e) })
	entries = lo.Filter(entries, func(e string, _ int) bool { return e != "" })

	if lo.ContainsBy(entries, func(e string) bool { return strings.EqualFold(e, "all") }) {
		return []string{}
	}

	return lo.Uniq(entries)
}
