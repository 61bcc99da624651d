package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/pescuma/bethyw/lib/model"
)

type Options struct {
	// Precision is the number of decimal places of every value
	Precision int
	// Humanize groups thousands, like 1,234.5
	Humanize bool
}

func DefaultOptions() *Options {
	return &Options{Precision: 6}
}

// AreaTitle returns "<eng> / <cym> (<code>)", or a single name when the
// area has only one, or "Unnamed (<code>)" when it has none.
func AreaTitle(area *model.Area) string {
	eng, errEng := area.GetName(model.LangEnglish)
	cym, errCym := area.GetName(model.LangWelsh)

	var name string
	switch {
	case errEng == nil && errCym == nil:
		name = eng + " / " + cym
	case errEng == nil:
		name = eng
	case errCym == nil:
		name = cym
	case area.NamesSize() > 0:
		name, _ = area.GetName(area.Languages()[0])
	default:
		name = "Unnamed"
	}

	return fmt.Sprintf("%v (%v)", name, area.Code())
}

func FormatArea(area *model.Area, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	sb := strings.Builder{}

	sb.WriteString(AreaTitle(area))
	sb.WriteString("\n")

	if area.Size() == 0 {
		sb.WriteString("<no measures>\n")
		return sb.String()
	}

	for _, m := range area.Measures() {
		writeMeasure(&sb, m, opts)
	}

	return sb.String()
}

func writeMeasure(sb *strings.Builder, m *model.Measure, opts *Options) {
	years := m.Years()

	headers := lo.Map(years, func(y int, _ int) string { return strconv.Itoa(y) })
	headers = append(headers, "Average", "Diff.", "% Diff.")

	values := lo.Map(years, func(y int, _ int) string {
		v, _ := m.GetValue(y)
		return FormatValue(v, opts)
	})
	values = append(values,
		FormatValue(m.Average(), opts),
		FormatValue(m.Difference(), opts),
		FormatValue(m.DifferenceAsPercentage(), opts))

	headerCells := make([]string, len(headers))
	valueCells := make([]string, len(values))
	for i := range headers {
		width := max(len(headers[i]), len(values[i]))
		headerCells[i] = fmt.Sprintf("%*s", width, headers[i])
		valueCells[i] = fmt.Sprintf("%*s", width, values[i])
	}

	sb.WriteString(fmt.Sprintf("%v (%v)\n", m.Label(), m.Codename()))
	sb.WriteString(strings.Join(headerCells, " "))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(valueCells, " "))
	sb.WriteString("\n\n")
}

func FormatValue(v float64, opts *Options) string {
	if !opts.Humanize {
		return strconv.FormatFloat(v, 'f', opts.Precision, 64)
	}

	format := "#,###." + strings.Repeat("#", max(opts.Precision, 0))

	return humanize.FormatFloat(format, v)
}

func WriteArea(w io.Writer, area *model.Area, opts *Options) error {
	_, err := io.WriteString(w, FormatArea(area, opts))
	return err
}

// WriteAreas writes every area, sorted by code, each followed by a blank line.
func WriteAreas(w io.Writer, areas *model.Areas, opts *Options) error {
	for _, a := range areas.ListAreas() {
		_, err := io.WriteString(w, FormatArea(a, opts)+"\n")
		if err != nil {
			return err
		}
	}

	return nil
}
