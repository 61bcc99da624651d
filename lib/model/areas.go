package model

import (
	"github.com/pkg/errors"
)

// Areas is the registry of every imported area, keyed by authority code.
type Areas struct {
	byCode map[string]*Area
}

func NewAreas() *Areas {
	return &Areas{
		byCode: map[string]*Area{},
	}
}

// SetArea inserts a copy of area under code, or merges it into the area
// already registered with that code.
func (as *Areas) SetArea(code string, area *Area) {
	existing, ok := as.byCode[code]
	if !ok {
		existing = NewArea(code)
		as.byCode[code] = existing
	}

	if existing == area {
		return
	}

	existing.Merge(area)
}

func (as *Areas) GetArea(code string) (*Area, error) {
	result, ok := as.byCode[code]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "no area found matching %v", code)
	}

	return result, nil
}

func (as *Areas) GetOrCreate(code string) *Area {
	if len(code) == 0 {
		panic("empty code not supported")
	}

	result, ok := as.byCode[code]

	if !ok {
		result = NewArea(code)
		as.byCode[code] = result
	}

	return result
}

// ListAreas returns the areas sorted by authority code.
func (as *Areas) ListAreas() []*Area {
	result := make([]*Area, 0, len(as.byCode))
	for _, code := range as.Codes() {
		result = append(result, as.byCode[code])
	}
	return result
}

func (as *Areas) Codes() []string {
	return sortedKeys(as.byCode)
}

func (as *Areas) Size() int {
	return len(as.byCode)
}

// Merge applies every area of other into as.
func (as *Areas) Merge(other *Areas) {
	for _, a := range other.ListAreas() {
		as.SetArea(a.Code(), a)
	}
}

func (as *Areas) Equal(other *Areas) bool {
	if len(as.byCode) != len(other.byCode) {
		return false
	}

	for code, a := range as.byCode {
		if !a.Equal(other.byCode[code]) {
			return false
		}
	}

	return true
}
