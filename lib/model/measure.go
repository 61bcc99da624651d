package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Measure is a named series of yearly readings, e.g. population or land area.
type Measure struct {
	codename string
	label    string
	values   map[int]float64
}

func NewMeasure(codename string, label string) *Measure {
	return &Measure{
		codename: normalizeCodename(codename),
		label:    label,
		values:   map[int]float64{},
	}
}

func (m *Measure) String() string {
	return fmt.Sprintf("%v (%v)", m.label, m.codename)
}

func (m *Measure) Codename() string {
	return m.codename
}

func (m *Measure) Label() string {
	return m.label
}

func (m *Measure) SetLabel(label string) {
	m.label = label
}

func (m *Measure) SetValue(year int, value float64) {
	m.values[year] = value
}

func (m *Measure) GetValue(year int) (float64, error) {
	v, ok := m.values[year]
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "no value for year %v in measure %v", year, m.codename)
	}

	return v, nil
}

// Years returns the years with data, in ascending order.
func (m *Measure) Years() []int {
	return sortedKeys(m.values)
}

func (m *Measure) Values() map[int]float64 {
	result := make(map[int]float64, len(m.values))
	for k, v := range m.values {
		result[k] = v
	}
	return result
}

func (m *Measure) Size() int {
	return len(m.values)
}

func (m *Measure) Average() float64 {
	if len(m.values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range m.values {
		sum += v
	}

	return sum / float64(len(m.values))
}

// Difference is the value of the latest year minus the value of the earliest year.
func (m *Measure) Difference() float64 {
	first, last, ok := m.firstAndLast()
	if !ok {
		return 0
	}

	return last - first
}

func (m *Measure) DifferenceAsPercentage() float64 {
	first, last, ok := m.firstAndLast()
	if !ok || first == 0 {
		return 0
	}

	return (last - first) / first * 100
}

func (m *Measure) firstAndLast() (float64, float64, bool) {
	if len(m.values) < 2 {
		return 0, 0, false
	}

	years := m.Years()

	return m.values[years[0]], m.values[years[len(years)-1]], true
}

// Merge copies every reading of other into m. Readings of other win on
// overlapping years; the label of m is kept.
func (m *Measure) Merge(other *Measure) {
	for year, value := range other.values {
		m.values[year] = value
	}
}

func (m *Measure) Clone() *Measure {
	return &Measure{
		codename: m.codename,
		label:    m.label,
		values:   m.Values(),
	}
}

func (m *Measure) Equal(other *Measure) bool {
	if m == nil || other == nil {
		return m == other
	}

	if m.codename != other.codename || m.label != other.label || len(m.values) != len(other.values) {
		return false
	}

	for year, v := range m.values {
		ov, ok := other.values[year]
		if !ok || ov != v {
			return false
		}
	}

	return true
}
