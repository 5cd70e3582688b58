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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Arc describes one slice of a radial chart.
//
// StartAngle must not be larger than EndAngle; this is not checked.
type Arc struct {
	StartAngle  float64 `json:"startAngle"` // radians
	EndAngle    float64 `json:"endAngle"`   // radians
	InnerRadius float64 `json:"innerRadius"`
	OuterRadius float64 `json:"outerRadius"` // >= 0
}

// SpanDegrees returns the absolute angular span of the arc in degrees.
func (a Arc) SpanDegrees() float64 {
	return math.Abs(radToDeg(a.EndAngle - a.StartAngle))
}

// bisector returns the direction of the arc bisector, rotated by -π/2 so
// that it can be used with [PolarToCartesian], and normalized to [0, 2π).
func (a Arc) bisector() float64 {
	return NormalizeAngle(a.StartAngle + (a.EndAngle-a.StartAngle)/2 - math.Pi/2)
}

// Side indicates on which horizontal side of the chart a link ends.
type Side uint8

const (
	// Before means that the link turns left, towards smaller x values.
	Before Side = iota

	// After means that the link turns right, towards larger x values.
	After
)

func (s Side) String() string {
	switch s {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "Side(invalid)"
	}
}

// Link is the three-point polyline connecting an arc to its label.
//
// Points[0] lies on the bisector at distance OuterRadius+offset from the
// center, Points[1] continues outward along the bisector by the diagonal
// length, and Points[2] is Points[1] shifted horizontally by the straight
// length.  The points may coincide if some of the lengths are zero.
type Link struct {
	Side   Side
	Points [3]vec.Vec2
}

// ComputeLink computes the callout link for a single arc.
//
// The link is on the After side if the bisector points into the right
// half-plane, and on the Before side otherwise.  A bisector which points
// exactly up or down counts as Before.
func ComputeLink(arc Arc, offset, diagonalLength, straightLength float64) Link {
	angle := arc.bisector()

	p0 := PolarToCartesian(angle, arc.OuterRadius+offset)
	p1 := PolarToCartesian(angle, arc.OuterRadius+offset+diagonalLength)

	var link Link
	link.Points[0] = p0
	link.Points[1] = p1
	if angle < math.Pi/2 || angle > 1.5*math.Pi {
		link.Side = After
		link.Points[2] = vec.Vec2{X: p1.X + straightLength, Y: p1.Y}
	} else {
		link.Side = Before
		link.Points[2] = vec.Vec2{X: p1.X - straightLength, Y: p1.Y}
	}
	return link
}

// End returns the terminal point of the link, where the label is attached.
func (l Link) End() vec.Vec2 {
	return l.Points[2]
}

// Path returns the link as an open path with one MoveTo and two LineTo
// commands.
func (l Link) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{l.Points[0]}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{l.Points[1]}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{l.Points[2]})
	}
}

// BBox returns the smallest rectangle containing all link points.
func (l Link) BBox() rect.Rect {
	return l.Path().BBox()
}
