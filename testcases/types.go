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

package testcases

import (
	"math"

	"seehuhn.de/go/arclink"
)

// TestCase defines a single chart scenario.
type TestCase struct {
	Name   string             // lowercase a-z and _ only
	Slices []Slice            // chart data, with arcs already laid out
	Width  int                // canvas width in pixels
	Height int                // canvas height in pixels
	Params arclink.Params     // link geometry
	Style  arclink.LabelStyle // label offset, thickness and colors
}

// Slice is one data item of a radial chart.
type Slice struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Value float64     `json:"value"`
	Color string      `json:"color"`
	Arc   arclink.Arc `json:"arc"`
}

// ArcGeometry implements the [arclink.Datum] interface.
func (s Slice) ArcGeometry() arclink.Arc { return s.Arc }

// DatumColor implements the [arclink.ColoredDatum] interface.
func (s Slice) DatumColor() string { return s.Color }

// palette is used to color slices in order.
var palette = []string{
	"#e8c1a0", "#f47560", "#f1e15b", "#e8a838", "#61cdbb", "#97e3d5",
}

// pie lays out slices for the given values, clockwise from the top,
// starting at startAngle.  padAngle is left empty between neighbouring
// slices.
func pie(values []float64, startAngle, padAngle, inner, outer float64) []Slice {
	total := 0.0
	for _, v := range values {
		total += v
	}
	avail := 2*math.Pi - padAngle*float64(len(values))

	res := make([]Slice, len(values))
	angle := startAngle
	for i, v := range values {
		span := 0.0
		if total > 0 {
			span = avail * v / total
		}
		res[i] = Slice{
			ID:    sliceID(i),
			Label: sliceID(i),
			Value: v,
			Color: palette[i%len(palette)],
			Arc: arclink.Arc{
				StartAngle:  angle,
				EndAngle:    angle + span,
				InnerRadius: inner,
				OuterRadius: outer,
			},
		}
		angle += span + padAngle
	}
	return res
}

// spans lays out consecutive slices with the given angular spans in
// degrees, starting at the top.
func spans(inner, outer float64, degrees ...float64) []Slice {
	res := make([]Slice, len(degrees))
	angle := 0.0
	for i, d := range degrees {
		span := d * math.Pi / 180
		res[i] = Slice{
			ID:    sliceID(i),
			Label: sliceID(i),
			Value: d,
			Color: palette[i%len(palette)],
			Arc: arclink.Arc{
				StartAngle:  angle,
				EndAngle:    angle + span,
				InnerRadius: inner,
				OuterRadius: outer,
			},
		}
		angle += span
	}
	return res
}

func sliceID(i int) string {
	names := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	if i < len(names) {
		return names[i]
	}
	return names[i%len(names)] + "_" + string(rune('a'+i/len(names)))
}

// style returns the default label style with a different text offset.
func style(textOffset float64) arclink.LabelStyle {
	s := arclink.DefaultLabelStyle()
	s.TextOffset = textOffset
	return s
}
