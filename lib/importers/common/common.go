package common

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pescuma/bethyw/lib/model"
)

// ReadAll reads the whole stream as UTF-8 text. A byte order mark is removed,
// and content that is not valid UTF-8 is decoded as Windows-1252, which older
// StatsWales exports use. Empty streams fail with ErrParseFailure.
func ReadAll(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, errors.Wrap(model.ErrParseFailure, "no input stream")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(model.ErrParseFailure, "error reading input stream: %v", err)
	}

	if !utf8.Valid(raw) {
		raw, _, err = transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
		if err != nil {
			return nil, errors.Wrapf(model.ErrParseFailure, "error decoding input stream: %v", err)
		}
	}

	data, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, errors.Wrapf(model.ErrParseFailure, "error decoding input stream: %v", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Wrap(model.ErrParseFailure, "input stream is empty")
	}

	return data, nil
}

// ForEachCSVRecord calls process for every record of the CSV, with the line
// it started on. Every record must have the same number of fields as the first one.
func ForEachCSVRecord(data []byte, process func(line int, record []string) error) error {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(model.ErrParseFailure, "invalid CSV: %v", err)
		}

		line, _ := reader.FieldPos(0)

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		err = process(line, record)
		if err != nil {
			return err
		}
	}
}

// HeaderIndex maps the trimmed, lowercased names of a header row to their positions.
func HeaderIndex(header []string) map[string]int {
	result := make(map[string]int, len(header))
	for i, h := range header {
		result[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return result
}

// FindColumn returns the position of name in the header, or fallback if the
// header does not have it.
func FindColumn(index map[string]int, name string, fallback int) int {
	i, ok := index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fallback
	}
	return i
}
