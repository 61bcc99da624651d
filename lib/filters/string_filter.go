package filters

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/model"
)

// StringFilter is an allowlist. An empty (or nil) filter allows everything.
type StringFilter struct {
	exact *set.Set[string]
	globs []glob.Glob
	fold  bool
}

// NewAreasFilter creates a filter over authority codes. Codes are compared
// exactly, but entries with glob metacharacters match by pattern.
func NewAreasFilter(entries ...string) (*StringFilter, error) {
	return newStringFilter(entries, false)
}

// NewMeasuresFilter creates a filter over measure codenames, which are
// compared in lowercase.
func NewMeasuresFilter(entries ...string) (*StringFilter, error) {
	return newStringFilter(entries, true)
}

func newStringFilter(entries []string, fold bool) (*StringFilter, error) {
	result := &StringFilter{
		exact: set.New[string](len(entries)),
		fold:  fold,
	}

	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}

		if fold {
			e = strings.ToLower(e)
		}

		if strings.ContainsAny(e, "*?[") {
			g, err := glob.Compile(e)
			if err != nil {
				return nil, errors.Wrapf(model.ErrParseFailure, "invalid filter pattern %v: %v", e, err)
			}

			result.globs = append(result.globs, g)
			continue
		}

		result.exact.Insert(e)
	}

	return result, nil
}

func (f *StringFilter) Empty() bool {
	return f == nil || (f.exact.Size() == 0 && len(f.globs) == 0)
}

func (f *StringFilter) Allows(value string) bool {
	if f.Empty() {
		return true
	}

	if f.fold {
		value = strings.ToLower(value)
	}

	if f.exact.Contains(value) {
		return true
	}

	for _, g := range f.globs {
		if g.Match(value) {
			return true
		}
	}

	return false
}

func (f *StringFilter) Size() int {
	if f == nil {
		return 0
	}

	return f.exact.Size() + len(f.globs)
}
