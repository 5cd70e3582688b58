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

	"seehuhn.de/go/geom/vec"
)

func TestComputeCentroid(t *testing.T) {
	arc := Arc{StartAngle: 0, EndAngle: math.Pi / 2, InnerRadius: 40, OuterRadius: 80}

	c := ComputeCentroid(arc, 0.5)
	want := PolarToCartesian(-math.Pi/4, 60)
	if !near(c, want) {
		t.Errorf("centroid = %v, want %v", c, want)
	}

	if c := ComputeCentroid(arc, 0); !near(c, PolarToCartesian(-math.Pi/4, 40)) {
		t.Errorf("offset 0: %v", c)
	}
	if c := ComputeCentroid(arc, 1); !near(c, PolarToCartesian(-math.Pi/4, 80)) {
		t.Errorf("offset 1: %v", c)
	}
}

func TestComputeCentroids(t *testing.T) {
	data := slicesWithSpans(5, 15, 30)
	res, err := ComputeCentroids(data, 10, 0.5, func(c CentroidWithDatum[testSlice]) (string, error) {
		return c.Data.ID, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || res[0].Extra != "b" || res[1].Extra != "c" {
		t.Fatalf("got %v", res)
	}
	for _, r := range res {
		if !near(r.Position, ComputeCentroid(r.Data.Arc, 0.5)) {
			t.Errorf("%s: position %v", r.Data.ID, r.Position)
		}
	}

	errBoom := errors.New("boom")
	_, err = ComputeCentroids(data, 0, 0.5, func(CentroidWithDatum[testSlice]) (vec.Vec2, error) {
		return vec.Vec2{}, errBoom
	})
	if err != errBoom {
		t.Errorf("err = %v", err)
	}
}
