package render

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/model"
)

type AreaJSON struct {
	Names    map[string]string          `json:"names"`
	Measures map[string]map[int]float64 `json:"measures"`
}

// ToJSON renders the registry as
// {"<code>": {"names": {"<lang>": "<name>"}, "measures": {"<codename>": {"<year>": <value>}}}}.
func ToJSON(areas *model.Areas) (string, error) {
	result, err := json.Marshal(AreasToJSON(areas))
	if err != nil {
		return "", errors.Wrap(err, "error rendering JSON")
	}

	return string(result), nil
}

func AreasToJSON(areas *model.Areas) map[string]*AreaJSON {
	result := make(map[string]*AreaJSON, areas.Size())
	for _, a := range areas.ListAreas() {
		result[a.Code()] = AreaToJSON(a)
	}
	return result
}

func AreaToJSON(area *model.Area) *AreaJSON {
	result := &AreaJSON{
		Names:    area.Names(),
		Measures: make(map[string]map[int]float64, area.Size()),
	}

	for _, m := range area.Measures() {
		result.Measures[m.Codename()] = m.Values()
	}

	return result
}
