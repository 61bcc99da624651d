package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// normalizeLang returns the lowercase form of a ISO 639-3 language code.
// Every name insert and lookup goes through here.
func normalizeLang(lang string) (string, error) {
	if len(lang) != 3 {
		return "", errors.Wrapf(ErrInvalidFormat, "language code must be three alphabetical letters only: %q", lang)
	}

	for i := 0; i < len(lang); i++ {
		c := lang[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return "", errors.Wrapf(ErrInvalidFormat, "language code must be three alphabetical letters only: %q", lang)
		}
	}

	return strings.ToLower(lang), nil
}

// normalizeCodename is the single place measure codenames are lowercased.
func normalizeCodename(codename string) string {
	return strings.ToLower(codename)
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	result := lo.Keys(m)

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })

	return result
}
