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

// NormalizeAngle reduces an angle in radians to the range [0, 2π).
// Negative angles wrap forward.
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle >= 2*math.Pi {
		// -ε + 2π can round up to exactly 2π
		angle = 0
	}
	return angle
}

// PolarToCartesian converts polar coordinates to a point relative to the
// chart center.
func PolarToCartesian(angle, radius float64) vec.Vec2 {
	return vec.Vec2{
		X: radius * math.Cos(angle),
		Y: radius * math.Sin(angle),
	}
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
