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
	"math"
	"testing"
)

func TestColorSpecResolve(t *testing.T) {
	theme := DefaultTheme()
	cases := []struct {
		name  string
		spec  ColorSpec
		datum string
		want  string
	}{
		{"literal", Literal("steelblue"), "#ff0000", "steelblue"},
		{"theme", FromTheme("axis.ticks.line.stroke"), "#ff0000", "#777777"},
		{"datum", FromDatum(), "hsl(10, 50%, 50%)", "hsl(10, 50%, 50%)"},
		{"darker", FromDatum(Darker(1)), "#e8c1a0", "#a28770"},
		{"darker_twice", FromDatum(Darker(1), Darker(1)), "#646464", "#313131"},
		{"brighter", FromDatum(Brighter(1)), "#464646", "#646464"},
		{"brighter_clamped", FromDatum(Brighter(3)), "#ffffff", "#ffffff"},
		{"opacity", FromDatum(Opacity(0.5)), "#ff0000", "rgba(255, 0, 0, 0.5)"},
		{"short_hex", FromDatum(Darker(0)), "#fff", "#ffffff"},
		{"rgb", FromDatum(Darker(0)), "rgb(10, 20, 30)", "#0a141e"},
		{"rgba", FromDatum(Darker(0)), "rgba(10, 20, 30, 0.25)", "rgba(10, 20, 30, 0.25)"},
		{"rgb_percent", FromDatum(Darker(0)), "rgb(20%, 40%, 60%)", "#336699"},
		{"rgb_space", FromDatum(Darker(0)), "rgb(51 102 153 / 50%)", "rgba(51, 102, 153, 0.5)"},
		{"hsl", FromDatum(Darker(0)), "hsl(10, 50%, 50%)", "#bf5540"},
		{"hsl_darker", FromDatum(Darker(1)), "hsl(0, 100%, 50%)", "#b30000"},
		{"hsla", FromDatum(Darker(0)), "hsla(360deg, 100%, 50%, 0.25)", "rgba(255, 0, 0, 0.25)"},
		{"named", FromDatum(Darker(0)), "SteelBlue", "#4682b4"},
		{"named_darker", FromDatum(Darker(1)), "steelblue", "#315b7e"},
		{"hex_alpha", FromDatum(Darker(1)), "#ff000000", "rgba(179, 0, 0, 0)"},
		{"short_hex_alpha", FromDatum(Darker(0)), "#f000", "rgba(255, 0, 0, 0)"},
		{"hex_alpha_opacity", FromDatum(Opacity(0.5)), "#ff000080", "rgba(255, 0, 0, 0.5)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.spec.Resolve(theme, c.datum)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestColorSpecResolveErrors(t *testing.T) {
	_, err := FromTheme("labels.nothing").Resolve(DefaultTheme(), "")
	if !errors.Is(err, ErrUnknownThemePath) {
		t.Errorf("unknown path: err = %v", err)
	}
	_, err = FromTheme("labels.text.fill").Resolve(nil, "")
	if !errors.Is(err, ErrUnknownThemePath) {
		t.Errorf("nil theme: err = %v", err)
	}
	for _, bad := range []string{"#12", "#gggggg", "rgb(1,2)", "rgb(300, 0, 0)", "rgb(1.5, 0, 0)",
		"rgb(120%, 0%, 0%)", "hsl(10, 50%)", "hsl(x, 50%, 50%)", "hsla(0, 0%, 0%, 2)",
		"#1234567", "#ff00008g", "notacolor", "cmyk(0, 0, 0, 0)"} {
		if _, err := FromDatum(Darker(1)).Resolve(nil, bad); err == nil {
			t.Errorf("%q: no error", bad)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, a, err := ParseColor(" #336699 ")
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := c.RGB255()
	if r != 0x33 || g != 0x66 || b != 0x99 || a != 1 {
		t.Errorf("got %d %d %d %g", r, g, b, a)
	}

	_, a, err = ParseColor("transparent")
	if err != nil || a != 0 {
		t.Errorf("transparent: alpha %g, err %v", a, err)
	}
}

func TestParseColorAlpha(t *testing.T) {
	cases := []struct {
		in    string
		alpha float64
	}{
		{"#ff0000", 1},
		{"#ff000080", 128.0 / 255},
		{"#FF0000CC", 204.0 / 255},
		{"#f008", 136.0 / 255},
		{"rgba(1, 2, 3, 0.4)", 0.4},
		{"rgba(1, 2, 3, 40%)", 0.4},
		{"hsla(120, 50%, 50%, 0.75)", 0.75},
		{"hsl(120, 50%, 50%)", 1},
		{"steelblue", 1},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			_, a, err := ParseColor(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(a-c.alpha) > 1e-12 {
				t.Errorf("alpha = %g, want %g", a, c.alpha)
			}
		})
	}
}

func TestInheritColor(t *testing.T) {
	res := InheritColor[testSlice](FromDatum(Opacity(0.3)), nil)
	got, err := res.ResolveColor(testSlice{Color: "#000000"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "rgba(0, 0, 0, 0.3)" {
		t.Errorf("got %q", got)
	}
}

func TestModifierClamp(t *testing.T) {
	c, _, _ := ParseColor("#808080")
	_, alpha := Opacity(7).apply(c, 1)
	if alpha != 1 {
		t.Errorf("alpha = %g", alpha)
	}
	_, alpha = Opacity(-1).apply(c, 1)
	if alpha != 0 {
		t.Errorf("alpha = %g", alpha)
	}
	d, _ := Darker(math.Inf(1)).apply(c, 1)
	if d.R != 0 || d.G != 0 || d.B != 0 {
		t.Errorf("darker(∞) = %v", d)
	}
}
