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

// Package arclink computes the geometry of callout links for radial charts.
//
// A callout link is a short polyline which connects a slice of a pie or
// donut chart to an external label.  The link starts just outside the
// slice, runs radially outward along the slice bisector, and then turns
// horizontally towards the label.  The package computes the link points,
// filters out slices which are too thin to be labelled, and derives the
// final label position, text anchor and colors.
//
// All coordinates are relative to the center of the chart.  Angles are in
// radians, with angle 0 pointing up and angles increasing clockwise
// (in a y-down device coordinate system).
package arclink

//go:generate go run ./testcases/export
