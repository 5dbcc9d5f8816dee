// Package color parses the color strings used for gradient stops and
// markers.
//
// Parse accepts the forms an SVG renderer understands: CSS color keywords,
// "transparent", #rgb, #rgba, #rrggbb and #rrggbbaa hex, and the rgb(),
// rgba(), hsl() and hsla() functions in comma or space syntax. ExcelHex is
// stricter because spreadsheet colors have no alpha channel.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalid indicates a color string no renderer would accept.
var ErrInvalid = errors.New("invalid color")

// ErrTranslucent indicates a color whose alpha is below 1 where an opaque
// RGB value is required.
var ErrTranslucent = errors.New("translucent color")

// extraNames are CSS keywords newer than the SVG 1.1 table in colornames.
var extraNames = map[string]string{
	"rebeccapurple": "#663399",
}

// Color is a parsed color with its opacity.
type Color struct {
	colorful.Color
	// Alpha is the opacity in [0, 1].
	Alpha float64
}

// Opaque reports whether c has full opacity.
func (c Color) Opaque() bool {
	return c.Alpha >= 1
}

// Parse parses a CSS color string. Keywords and function names are case
// insensitive.
func Parse(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	if c, ok := parse(key); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalid, s)
}

func parse(key string) (Color, bool) {
	if key == "transparent" {
		return Color{}, true
	}
	if rgba, ok := colornames.Map[key]; ok {
		return Color{
			Color: colorful.Color{R: float64(rgba.R) / 255, G: float64(rgba.G) / 255, B: float64(rgba.B) / 255},
			Alpha: float64(rgba.A) / 255,
		}, true
	}
	if hex, ok := extraNames[key]; ok {
		key = hex
	}
	if strings.HasPrefix(key, "#") {
		return parseHex(key)
	}
	return parseFunc(key)
}

// parseHex parses #rgb, #rgba, #rrggbb and #rrggbbaa.
func parseHex(s string) (Color, bool) {
	digits := s[1:]
	if len(digits) == 0 || len(digits) > 8 {
		return Color{}, false
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return Color{}, false
	}

	rgb, alpha := s, ""
	switch len(digits) {
	case 3, 6:
	case 4:
		rgb, alpha = s[:4], strings.Repeat(digits[3:], 2)
	case 8:
		rgb, alpha = s[:7], digits[6:]
	default:
		return Color{}, false
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return Color{}, false
	}
	a := 1.0
	if alpha != "" {
		v, _ := strconv.ParseUint(alpha, 16, 8)
		a = float64(v) / 255
	}
	return Color{Color: c, Alpha: a}, true
}

// parseFunc parses rgb(), rgba(), hsl() and hsla() in both the legacy comma
// syntax and the space syntax with an optional "/ alpha".
func parseFunc(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, false
	}
	name, body := strings.TrimSpace(s[:open]), s[open+1:len(s)-1]

	var alphaArg string
	if i := strings.IndexByte(body, '/'); i >= 0 {
		body, alphaArg = body[:i], strings.TrimSpace(body[i+1:])
		if alphaArg == "" {
			return Color{}, false
		}
	}
	args := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(args) == 4 && alphaArg == "" {
		args, alphaArg = args[:3], args[3]
	}
	if len(args) != 3 {
		return Color{}, false
	}

	alpha := 1.0
	if alphaArg != "" {
		a, ok := parseFraction(alphaArg, 1)
		if !ok {
			return Color{}, false
		}
		alpha = a
	}

	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i, arg := range args {
			v, ok := parseFraction(arg, 255)
			if !ok {
				return Color{}, false
			}
			ch[i] = v
		}
		return Color{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, Alpha: alpha}, true
	case "hsl", "hsla":
		h, ok := parseHue(args[0])
		if !ok || !strings.HasSuffix(args[1], "%") || !strings.HasSuffix(args[2], "%") {
			return Color{}, false
		}
		sat, ok1 := parseFraction(args[1], 1)
		light, ok2 := parseFraction(args[2], 1)
		if !ok1 || !ok2 {
			return Color{}, false
		}
		return Color{Color: colorful.Hsl(h, sat, light), Alpha: alpha}, true
	}
	return Color{}, false
}

// parseFraction parses a percentage or a number on the scale [0, full] and
// returns it clamped to [0, 1].
func parseFraction(s string, full float64) (float64, bool) {
	scale := full
	if p, ok := strings.CutSuffix(s, "%"); ok {
		s, scale = p, 100
	}
	v, ok := parseNumber(s)
	if !ok {
		return 0, false
	}
	return math.Min(math.Max(v/scale, 0), 1), true
}

// parseHue parses an angle in degrees, with or without the "deg" unit, and
// wraps it into [0, 360).
func parseHue(s string) (float64, bool) {
	v, ok := parseNumber(strings.TrimSuffix(s, "deg"))
	if !ok {
		return 0, false
	}
	h := math.Mod(v, 360)
	if h < 0 {
		h += 360
	}
	return h, true
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Validate returns an error if s cannot be parsed.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

// ExcelHex converts s to the uppercase RRGGBB form used by spreadsheet
// fills and line colors. Translucent colors are rejected.
func ExcelHex(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	if !c.Opaque() {
		return "", fmt.Errorf("%w: %q", ErrTranslucent, s)
	}
	return strings.ToUpper(strings.TrimPrefix(c.Clamped().Hex(), "#")), nil
}
