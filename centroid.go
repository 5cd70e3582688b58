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

	"seehuhn.de/go/geom/vec"
)

// ComputeCentroid returns the anchor point for a label placed inside an
// arc.  The point lies on the arc bisector; radiusOffset selects the
// distance from the center, with 0 at the inner radius and 1 at the outer
// radius.
func ComputeCentroid(arc Arc, radiusOffset float64) vec.Vec2 {
	angle := arc.StartAngle + (arc.EndAngle-arc.StartAngle)/2 - math.Pi/2
	radius := arc.InnerRadius + (arc.OuterRadius-arc.InnerRadius)*radiusOffset
	return PolarToCartesian(angle, radius)
}

// CentroidWithDatum pairs an inner label anchor with its data item.
type CentroidWithDatum[T Datum] struct {
	Position vec.Vec2
	Data     T
}

// ComputeCentroids computes inner label anchors for all data items whose
// arc spans at least skipAngle degrees, in data order.  The output of
// extra, if non-nil, is attached to each anchor.
func ComputeCentroids[T Datum, E any](data []T, skipAngle, radiusOffset float64, extra func(CentroidWithDatum[T]) (E, error)) ([]CentroidEntry[T, E], error) {
	var res []CentroidEntry[T, E]
	for _, d := range data {
		arc := d.ArcGeometry()
		if !(arc.SpanDegrees() >= skipAngle) {
			continue
		}
		c := CentroidWithDatum[T]{
			Position: ComputeCentroid(arc, radiusOffset),
			Data:     d,
		}
		entry := CentroidEntry[T, E]{CentroidWithDatum: c}
		if extra != nil {
			e, err := extra(c)
			if err != nil {
				return nil, err
			}
			entry.Extra = e
		}
		res = append(res, entry)
	}
	return res, nil
}

// CentroidEntry is an inner label anchor together with its extra
// properties.
type CentroidEntry[T Datum, E any] struct {
	CentroidWithDatum[T]
	Extra E
}
