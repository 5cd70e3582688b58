// seehuhn.de/go/arclink - callout link geometry for radial charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package arclink

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

// ColorSource selects where a [ColorSpec] takes its base color from.
type ColorSource uint8

const (
	// ColorLiteral uses ColorSpec.Value as the color.
	ColorLiteral ColorSource = iota

	// ColorFromDatum uses the color of the data item, optionally modified.
	ColorFromDatum

	// ColorFromTheme looks up ColorSpec.Value as a path in the theme.
	ColorFromTheme
)

// ModifierOp is a color modification applied to an inherited color.
type ModifierOp uint8

const (
	// OpDarker multiplies the RGB channels by 0.7^Amount.
	OpDarker ModifierOp = iota

	// OpBrighter divides the RGB channels by 0.7^Amount.
	OpBrighter

	// OpOpacity sets the alpha channel to Amount.
	OpOpacity
)

// ColorModifier describes one modification step.
type ColorModifier struct {
	Op     ModifierOp
	Amount float64
}

// Darker returns a modifier which darkens a color by k steps.
func Darker(k float64) ColorModifier { return ColorModifier{Op: OpDarker, Amount: k} }

// Brighter returns a modifier which brightens a color by k steps.
func Brighter(k float64) ColorModifier { return ColorModifier{Op: OpBrighter, Amount: k} }

// Opacity returns a modifier which sets the opacity to a (0 to 1).
func Opacity(a float64) ColorModifier { return ColorModifier{Op: OpOpacity, Amount: a} }

// ColorSpec describes how the color of a link or label text is obtained.
// Modifiers are only applied to colors inherited from the data item.
type ColorSpec struct {
	Source    ColorSource
	Value     string
	Modifiers []ColorModifier
}

// Literal returns a spec for a fixed color.
func Literal(color string) ColorSpec {
	return ColorSpec{Source: ColorLiteral, Value: color}
}

// FromDatum returns a spec which inherits the color of the data item.
func FromDatum(mods ...ColorModifier) ColorSpec {
	return ColorSpec{Source: ColorFromDatum, Modifiers: mods}
}

// FromTheme returns a spec which takes the color from the theme.
func FromTheme(path string) ColorSpec {
	return ColorSpec{Source: ColorFromTheme, Value: path}
}

// ErrUnknownThemePath is returned when a theme does not define a color
// for the requested path.
var ErrUnknownThemePath = errors.New("unknown theme path")

// Theme supplies the colors referenced by [FromTheme] specs.
type Theme interface {
	// Lookup returns the color stored under a dotted path like
	// "labels.text.fill".
	Lookup(path string) (string, bool)
}

// MapTheme is a [Theme] backed by a map from dotted paths to colors.
type MapTheme map[string]string

// Lookup implements the [Theme] interface.
func (t MapTheme) Lookup(path string) (string, bool) {
	c, ok := t[path]
	return c, ok
}

// DefaultTheme returns the colors used when a chart has no theme.
func DefaultTheme() MapTheme {
	return MapTheme{
		"background":             "transparent",
		"labels.text.fill":       "#333333",
		"axis.ticks.line.stroke": "#777777",
	}
}

// Resolve computes the color described by the spec.
// The theme is only consulted for [ColorFromTheme] specs.
func (s ColorSpec) Resolve(theme Theme, datumColor string) (string, error) {
	switch s.Source {
	case ColorLiteral:
		return s.Value, nil
	case ColorFromTheme:
		if theme == nil {
			return "", fmt.Errorf("%w %q (no theme)", ErrUnknownThemePath, s.Value)
		}
		c, ok := theme.Lookup(s.Value)
		if !ok {
			return "", fmt.Errorf("%w %q", ErrUnknownThemePath, s.Value)
		}
		return c, nil
	case ColorFromDatum:
		if len(s.Modifiers) == 0 {
			return datumColor, nil
		}
		c, alpha, err := ParseColor(datumColor)
		if err != nil {
			return "", err
		}
		for _, m := range s.Modifiers {
			c, alpha = m.apply(c, alpha)
		}
		return FormatColor(c, alpha), nil
	default:
		return "", fmt.Errorf("invalid color source %d", s.Source)
	}
}

func (m ColorModifier) apply(c colorful.Color, alpha float64) (colorful.Color, float64) {
	switch m.Op {
	case OpDarker:
		f := math.Pow(0.7, m.Amount)
		c = colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
	case OpBrighter:
		f := 1 / math.Pow(0.7, m.Amount)
		c = colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
	case OpOpacity:
		alpha = m.Amount
	}
	return c.Clamped(), min(max(alpha, 0), 1)
}

// ParseColor parses a CSS color string.  The accepted forms are
// "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)",
// "rgba(r, g, b, a)", "hsl(h, s%, l%)", "hsla(h, s%, l%, a)",
// the SVG color keywords and "transparent".  Channels in the rgb forms are
// integers from 0 to 255 or percentages.  Alpha values are numbers from 0
// to 1 or percentages.  The returned alpha is 1 unless the string
// specifies otherwise.
func ParseColor(s string) (colorful.Color, float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(s, "#") {
		c, alpha, err := parseHex(s)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("color %q: %w", s, err)
		}
		return c, alpha, nil
	}
	if s == "transparent" {
		return colorful.Color{}, 0, nil
	}
	if name, args, ok := splitColorFunc(s); ok {
		var c colorful.Color
		var alpha float64
		var err error
		switch name {
		case "rgb", "rgba":
			c, alpha, err = parseRGB(args)
		case "hsl", "hsla":
			c, alpha, err = parseHSL(args)
		default:
			err = errors.New("unknown color function")
		}
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("color %q: %w", s, err)
		}
		return c, alpha, nil
	}
	if rgba, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, 1, nil
	}
	return colorful.Color{}, 0, fmt.Errorf("color %q: unsupported format", s)
}

// parseHex handles the four hexadecimal notations.  The color digits are
// decoded by colorful.Hex, any trailing alpha digits are split off first.
func parseHex(s string) (colorful.Color, float64, error) {
	var rgb, a string
	switch len(s) {
	case 4, 7:
		rgb = s
	case 5:
		rgb, a = s[:4], s[4:]+s[4:]
	case 9:
		rgb, a = s[:7], s[7:]
	default:
		return colorful.Color{}, 0, errors.New("wrong number of hex digits")
	}
	c, err := colorful.Hex(rgb)
	if err != nil {
		return colorful.Color{}, 0, err
	}
	alpha := 1.0
	if a != "" {
		x, err := strconv.ParseUint(a, 16, 8)
		if err != nil {
			return colorful.Color{}, 0, err
		}
		alpha = float64(x) / 255
	}
	return c, alpha, nil
}

// splitColorFunc splits "name(a, b, c)" into the name and its arguments.
// Arguments may be separated by commas, white space or a slash.
func splitColorFunc(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name := strings.TrimSpace(s[:open])
	args := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == '/' || unicode.IsSpace(r)
	})
	return name, args, true
}

func parseRGB(args []string) (colorful.Color, float64, error) {
	if len(args) != 3 && len(args) != 4 {
		return colorful.Color{}, 0, fmt.Errorf("expected 3 or 4 arguments, got %d", len(args))
	}
	var ch [3]float64
	for i := range ch {
		if pct, ok := strings.CutSuffix(args[i], "%"); ok {
			x, err := parseRange(pct, 100)
			if err != nil {
				return colorful.Color{}, 0, err
			}
			ch[i] = x
			continue
		}
		x, err := strconv.ParseUint(args[i], 10, 8)
		if err != nil {
			return colorful.Color{}, 0, err
		}
		ch[i] = float64(x) / 255
	}
	alpha, err := parseAlpha(args[3:])
	if err != nil {
		return colorful.Color{}, 0, err
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha, nil
}

func parseHSL(args []string) (colorful.Color, float64, error) {
	if len(args) != 3 && len(args) != 4 {
		return colorful.Color{}, 0, fmt.Errorf("expected 3 or 4 arguments, got %d", len(args))
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil || math.IsInf(h, 0) || math.IsNaN(h) {
		return colorful.Color{}, 0, fmt.Errorf("invalid hue %q", args[0])
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	sat, err := parseRange(strings.TrimSuffix(args[1], "%"), 100)
	if err != nil {
		return colorful.Color{}, 0, err
	}
	light, err := parseRange(strings.TrimSuffix(args[2], "%"), 100)
	if err != nil {
		return colorful.Color{}, 0, err
	}
	alpha, err := parseAlpha(args[3:])
	if err != nil {
		return colorful.Color{}, 0, err
	}
	return colorful.Hsl(h, sat, light), alpha, nil
}

// parseAlpha parses an optional alpha argument.
func parseAlpha(args []string) (float64, error) {
	if len(args) == 0 {
		return 1, nil
	}
	if pct, ok := strings.CutSuffix(args[0], "%"); ok {
		return parseRange(pct, 100)
	}
	return parseRange(args[0], 1)
}

// parseRange parses a number in the range 0 to scale and returns it
// divided by scale.
func parseRange(s string, scale float64) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !(x >= 0 && x <= scale) {
		return 0, fmt.Errorf("value %s out of range [0, %g]", s, scale)
	}
	return x / scale, nil
}

// FormatColor formats a color as "#rrggbb" if it is opaque, and in
// "rgba(r, g, b, a)" notation otherwise.
func FormatColor(c colorful.Color, alpha float64) string {
	if alpha >= 1 {
		return c.Clamped().Hex()
	}
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}

// ColoredDatum is implemented by data items which carry their own color.
type ColoredDatum interface {
	Datum
	DatumColor() string
}

// ColorResolver computes a color for a data item.
type ColorResolver[T any] interface {
	ResolveColor(d T) (string, error)
}

// ColorFunc adapts an ordinary function to the [ColorResolver] interface.
type ColorFunc[T any] func(d T) (string, error)

// ResolveColor implements the [ColorResolver] interface.
func (f ColorFunc[T]) ResolveColor(d T) (string, error) {
	return f(d)
}

// InheritColor returns a resolver which applies spec to the color of each
// data item, using theme for theme references.
func InheritColor[T ColoredDatum](spec ColorSpec, theme Theme) ColorResolver[T] {
	return ColorFunc[T](func(d T) (string, error) {
		return spec.Resolve(theme, d.DatumColor())
	})
}
