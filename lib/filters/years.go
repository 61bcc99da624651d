package filters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/model"
)

// YearRange is an inclusive range of years. The zero value allows every year.
type YearRange struct {
	Min int
	Max int
}

func (r YearRange) Unrestricted() bool {
	return r.Min == 0 && r.Max == 0
}

func (r YearRange) Contains(year int) bool {
	if r.Unrestricted() {
		return true
	}

	return year >= r.Min && year <= r.Max
}

func (r YearRange) String() string {
	if r.Unrestricted() {
		return "all"
	}

	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// ParseYearRange accepts "", "0" or "all" (no restriction), a single year
// like "2010", or an inclusive range like "1991-1993".
func ParseYearRange(text string) (YearRange, error) {
	text = strings.TrimSpace(text)

	if text == "" || text == "0" || strings.EqualFold(text, "all") {
		return YearRange{}, nil
	}

	parts := strings.Split(text, "-")
	switch len(parts) {
	case 1:
		y, err := parseYear(parts[0])
		if err != nil {
			return YearRange{}, err
		}

		return YearRange{Min: y, Max: y}, nil

	case 2:
		from, err := parseYear(parts[0])
		if err != nil {
			return YearRange{}, err
		}

		to, err := parseYear(parts[1])
		if err != nil {
			return YearRange{}, err
		}

		if from == 0 && to == 0 {
			return YearRange{}, nil
		}

		if from > to {
			return YearRange{}, errors.Wrapf(model.ErrParseFailure, "invalid year range (start after end): %v", text)
		}

		return YearRange{Min: from, Max: to}, nil

	default:
		return YearRange{}, errors.Wrapf(model.ErrParseFailure, "invalid year range: %v", text)
	}
}

func parseYear(text string) (int, error) {
	text = strings.TrimSpace(text)

	y, err := strconv.Atoi(text)
	if err != nil || y < 0 {
		return 0, errors.Wrapf(model.ErrParseFailure, "invalid year: %q", text)
	}

	if y != 0 && len(text) != 4 {
		return 0, errors.Wrapf(model.ErrParseFailure, "year must have 4 digits: %q", text)
	}

	return y, nil
}
