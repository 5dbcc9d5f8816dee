// Package zscore highlights the statistically deviant points of a series
// for line-chart rendering.
package zscore

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/calc"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/color"
)

// Format represents the report serialization format.
type Format string

const (
	// FormatJSON writes reports as JSON.
	FormatJSON Format = "json"
	// FormatYAML writes reports as YAML.
	FormatYAML Format = "yaml"
)

// Default palette, taken from the reference chart: a red line with a green
// band between the one-sigma bounds, white markers and red deviant markers.
const (
	DefaultPrimaryColor   = "red"
	DefaultHighlightColor = "#82ca9d"
	DefaultDeviantColor   = "red"
	DefaultNormalFill     = "white"
	DefaultActiveFill     = "blue"
	DefaultGradientPrefix = "zScoreLine"
)

// Options configures highlighting of a workbook field.
type Options struct {
	// Sheet is the sheet to read. Empty means the first sheet.
	Sheet string `mapstructure:"sheet"`
	// Field is the header of the numeric column to highlight.
	Field string `mapstructure:"field"`
	// LabelField is the header of the category column (optional).
	LabelField string `mapstructure:"label"`
	// PrimaryColor paints the line outside the one-sigma band.
	PrimaryColor string `mapstructure:"primary"`
	// HighlightColor paints the line inside the one-sigma band.
	HighlightColor string `mapstructure:"highlight"`
	// DeviantColor paints deviant markers.
	DeviantColor string `mapstructure:"deviant"`
	// NormalFill fills markers inside the band.
	NormalFill string `mapstructure:"normal_fill"`
	// NormalStroke strokes markers inside the band.
	// If empty, PrimaryColor is used.
	NormalStroke string `mapstructure:"normal_stroke"`
	// ActiveFill fills hovered markers inside the band.
	ActiveFill string `mapstructure:"active_fill"`
	// GradientID is the gradient identifier.
	// If empty, it is derived from Field (e.g. "zScoreLinePv").
	GradientID string `mapstructure:"gradient_id"`
	// Deviation selects population or sample standard deviation.
	Deviation calc.Deviation `mapstructure:"deviation"`
	// Format is the report serialization format.
	Format Format `mapstructure:"format"`
}

// DefaultOptions returns default highlighting options.
func DefaultOptions() Options {
	return Options{
		PrimaryColor:   DefaultPrimaryColor,
		HighlightColor: DefaultHighlightColor,
		DeviantColor:   DefaultDeviantColor,
		NormalFill:     DefaultNormalFill,
		NormalStroke:   DefaultHighlightColor,
		ActiveFill:     DefaultActiveFill,
		Deviation:      calc.Population,
		Format:         FormatJSON,
	}
}

// Validate reports every invalid option at once.
func (o Options) Validate() error {
	var result *multierror.Error

	colors := []struct {
		name  string
		value string
	}{
		{"primary", o.PrimaryColor},
		{"highlight", o.HighlightColor},
		{"deviant", o.DeviantColor},
		{"normal_fill", o.NormalFill},
		{"normal_stroke", o.NormalStroke},
		{"active_fill", o.ActiveFill},
	}
	for _, c := range colors {
		if c.value == "" && c.name == "normal_stroke" {
			continue
		}
		if err := color.Validate(c.value); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w %q", c.name, ErrInvalidColor, c.value))
		}
	}

	if !o.Deviation.Valid() {
		result = multierror.Append(result, fmt.Errorf("%w: %q (must be population or sample)", ErrInvalidDeviation, o.Deviation))
	}

	switch o.Format {
	case "", FormatJSON, FormatYAML:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q (must be json or yaml)", ErrInvalidFormat, o.Format))
	}

	return result.ErrorOrNil()
}

// ValidateSpreadsheet reports the chart colors that have no opaque RGB
// form. Spreadsheet chart export needs one for the line, band and marker
// fills; the JSON and YAML descriptors do not.
func (o Options) ValidateSpreadsheet() error {
	var result *multierror.Error

	colors := []struct {
		name  string
		value string
	}{
		{"primary", o.PrimaryColor},
		{"highlight", o.HighlightColor},
		{"deviant", o.DeviantColor},
		{"normal_fill", o.NormalFill},
	}
	for _, c := range colors {
		if _, err := color.ExcelHex(c.value); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w: %w", c.name, ErrInvalidColor, err))
		}
	}

	return result.ErrorOrNil()
}

// WithField returns a copy of o highlighting field.
func (o Options) WithField(field string) Options {
	o.Field = field
	return o
}

// GradientIDFor returns the gradient identifier for field.
func (o Options) GradientIDFor(field string) string {
	if o.GradientID != "" {
		return o.GradientID
	}
	var b strings.Builder
	b.WriteString(DefaultGradientPrefix)
	upper := true
	for _, r := range field {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalStroke returns the stroke for markers inside the band.
func (o Options) normalStroke() string {
	if o.NormalStroke != "" {
		return o.NormalStroke
	}
	return o.PrimaryColor
}
