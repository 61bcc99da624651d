package model

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat is returned for malformed keys, like a language code that is not 3 letters.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotFound is returned when a name, measure, area or year is missing.
	ErrNotFound = errors.New("not found")

	// ErrMissingColumns is returned when a column mapping lacks a field an importer needs.
	ErrMissingColumns = errors.New("missing columns")

	// ErrParseFailure is returned for malformed rows, records and unreadable streams.
	ErrParseFailure = errors.New("parse failure")
)
