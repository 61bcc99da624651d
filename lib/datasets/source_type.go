package datasets

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/model"
)

type SourceType int

const (
	AuthorityCodeCSV SourceType = iota
	AuthorityByYearCSV
	WelshStatsJSON
)

func (t SourceType) String() string {
	switch t {
	case AuthorityCodeCSV:
		return "authority-code-csv"
	case AuthorityByYearCSV:
		return "authority-by-year-csv"
	case WelshStatsJSON:
		return "welsh-stats-json"
	default:
		return "unknown"
	}
}

func ParseSourceType(text string) (SourceType, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "authority-code-csv", "authoritycodecsv":
		return AuthorityCodeCSV, nil
	case "authority-by-year-csv", "authoritybyyearcsv":
		return AuthorityByYearCSV, nil
	case "welsh-stats-json", "welshstatsjson", "json":
		return WelshStatsJSON, nil
	default:
		return -1, errors.Wrapf(model.ErrParseFailure, "unknown source type: %v", text)
	}
}
