package model

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	LangEnglish = "eng"
	LangWelsh   = "cym"
)

// Area is a local authority: its code, names per language and measures.
type Area struct {
	code     string
	names    map[string]string
	measures map[string]*Measure
}

func NewArea(code string) *Area {
	return &Area{
		code:     code,
		names:    map[string]string{},
		measures: map[string]*Measure{},
	}
}

func (a *Area) String() string {
	return fmt.Sprintf("Area[%v]", a.code)
}

func (a *Area) Code() string {
	return a.code
}

func (a *Area) SetName(lang string, name string) error {
	lang, err := normalizeLang(lang)
	if err != nil {
		return err
	}

	a.names[lang] = name

	return nil
}

func (a *Area) GetName(lang string) (string, error) {
	lang, err := normalizeLang(lang)
	if err != nil {
		return "", err
	}

	name, ok := a.names[lang]
	if !ok {
		return "", errors.Wrapf(ErrNotFound, "no name in language %v for area %v", lang, a.code)
	}

	return name, nil
}

// HasName is like GetName, but ignores invalid language codes.
func (a *Area) HasName(lang string) bool {
	_, err := a.GetName(lang)
	return err == nil
}

func (a *Area) Names() map[string]string {
	result := make(map[string]string, len(a.names))
	for k, v := range a.names {
		result[k] = v
	}
	return result
}

// Languages returns the codes of the languages with a name, sorted.
func (a *Area) Languages() []string {
	return sortedKeys(a.names)
}

// SetMeasure stores a copy of measure under codename. If a measure already
// exists with that codename the readings are merged into it, and its label
// is kept.
func (a *Area) SetMeasure(codename string, measure *Measure) {
	codename = normalizeCodename(codename)

	existing, ok := a.measures[codename]
	if ok {
		existing.Merge(measure)
		return
	}

	stored := measure.Clone()
	stored.codename = codename
	a.measures[codename] = stored
}

func (a *Area) GetMeasure(codename string) (*Measure, error) {
	codename = normalizeCodename(codename)

	m, ok := a.measures[codename]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "no measure found matching %v", codename)
	}

	return m, nil
}

// Measures returns the measures sorted by codename.
func (a *Area) Measures() []*Measure {
	result := make([]*Measure, 0, len(a.measures))
	for _, k := range sortedKeys(a.measures) {
		result = append(result, a.measures[k])
	}
	return result
}

func (a *Area) Size() int {
	return len(a.measures)
}

func (a *Area) NamesSize() int {
	return len(a.names)
}

// Merge applies every name and measure of other into a, using the same rules
// as SetName and SetMeasure.
func (a *Area) Merge(other *Area) {
	for _, m := range other.Measures() {
		a.SetMeasure(m.Codename(), m)
	}

	for lang, name := range other.names {
		a.names[lang] = name
	}
}

func (a *Area) Clone() *Area {
	result := NewArea(a.code)
	result.Merge(a)
	return result
}

func (a *Area) Equal(other *Area) bool {
	if a == nil || other == nil {
		return a == other
	}

	if a.code != other.code || len(a.names) != len(other.names) || len(a.measures) != len(other.measures) {
		return false
	}

	for lang, name := range a.names {
		on, ok := other.names[lang]
		if !ok || on != name {
			return false
		}
	}

	for codename, m := range a.measures {
		if !m.Equal(other.measures[codename]) {
			return false
		}
	}

	return true
}
