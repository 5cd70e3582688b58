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

package raster

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const (
	// flatness is the maximal distance, in pixels, between a round cap or
	// join and the polygon which approximates it.
	flatness = 0.25

	// curveSteps is the number of straight pieces used for each cubic
	// Bézier segment.
	curveSteps = 16

	zeroLengthThreshold   = 1e-10
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on themselves.
	cuspCosineThreshold = -0.9999
)

// strokeSegment is one straight piece of a flattened subpath.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints in chart coordinates
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// subpath describes a range of r.segs.
type subpath struct {
	start, end int
	dot        vec.Vec2 // position of a zero-length subpath
}

// StrokePath draws the outline of p with round caps and round joins,
// using Thickness as the line width.  All subpaths are filled as one
// compound shape, so overlapping parts are painted only once.
func (r *Renderer) StrokePath(p path.Path, c color.Color) {
	if !(r.Thickness > 0) {
		return
	}
	subpaths := r.flattenPath(p)
	if len(subpaths) == 0 {
		return
	}

	r.reset()
	d := r.Thickness / 2
	for _, sp := range subpaths {
		r.outline = r.outline[:0]
		if sp.start == sp.end {
			r.addArc(sp.dot, d, vec.Vec2{X: 1}, 2*math.Pi, true)
		} else {
			r.strokeSubpath(r.segs[sp.start:sp.end], d)
		}
		if len(r.outline) < 3 {
			continue
		}
		r.moveTo(r.outline[0])
		for _, pt := range r.outline[1:] {
			r.lineTo(pt)
		}
		r.v.ClosePath()
	}
	r.paint(c)
}

// flattenPath splits p into subpaths of straight segments.  The segments
// are stored in r.segs.  Closed subpaths are stroked like open ones: the
// two round caps at the closing point cover the same area as a round join
// would.
func (r *Renderer) flattenPath(p path.Path) []subpath {
	r.segs = r.segs[:0]
	var res []subpath

	var current, start vec.Vec2
	startIdx := 0
	inSubpath := false
	sawDrawing := false
	finish := func() {
		if inSubpath && (len(r.segs) > startIdx || sawDrawing) {
			res = append(res, subpath{start: startIdx, end: len(r.segs), dot: start})
		}
		startIdx = len(r.segs)
		inSubpath = false
		sawDrawing = false
	}

	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			current = pts[0]
			start = current
			inSubpath = true
		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			r.addStrokeSegment(current, pts[0])
			current = pts[0]
		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			prev := current
			for i := 1; i <= curveSteps; i++ {
				pt := cubicAt(current, pts[0], pts[1], pts[2], float64(i)/curveSteps)
				r.addStrokeSegment(prev, pt)
				prev = pt
			}
			current = pts[2]
		case path.CmdClose:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			if current != start {
				r.addStrokeSegment(current, start)
			}
			current = start
			finish()
		}
	}
	finish()
	return res
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return p0.Mul(s * s * s).
		Add(p1.Mul(3 * s * s * t)).
		Add(p2.Mul(3 * s * t * t)).
		Add(p3.Mul(t * t * t))
}

func (r *Renderer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: t.Rot90()})
}

// strokeSubpath builds the outline of an open subpath in r.outline.
// The outline is one closed polygon: the start cap, the +N side forwards,
// the end cap, then the -N side backwards.  Round joins are added on the
// outer side of each corner, the inner side uses the intersection of the
// two offset lines.
func (r *Renderer) strokeSubpath(segs []strokeSegment, d float64) {
	first := &segs[0]
	last := &segs[len(segs)-1]

	r.addCap(first.A, first.T.Neg(), d)

	skipNextA := false
	for i := range segs {
		seg := &segs[i]
		if !skipNextA {
			r.outline = append(r.outline, seg.A.Add(seg.N.Mul(d)))
		}
		skipNextA = false
		if i == len(segs)-1 {
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := cross(seg.T, next.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
		case sinTheta > 0: // +N is the inner side
			skipNextA = r.addInnerCorner(seg.B, seg.T, next.T, d, true)
		default:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	r.addCap(last.B, last.T, d)

	skipNextB := false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skipNextB {
			r.outline = append(r.outline, seg.B.Sub(seg.N.Mul(d)))
		}
		skipNextB = false
		if i == 0 {
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := cross(prev.T, seg.T)
		switch {
		case math.Abs(sinTheta) < collinearityThreshold:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
		case sinTheta > 0: // -N is the outer side
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skipNextB = r.addInnerCorner(seg.A, prev.T, seg.T, d, false)
		}
	}
}

// addCap adds a round cap at P.  T points away from the line.
func (r *Renderer) addCap(P, T vec.Vec2, d float64) {
	r.addArc(P, d, T.Rot90(), -math.Pi, true)
}

// addJoin adds a round join at P, where the tangent changes from T1 to T2.
// The arc starts at the offset point which is already in the outline.
func (r *Renderer) addJoin(P, T1, T2 vec.Vec2, d float64, positiveSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := cross(T1, T2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}
	if cosTheta < cuspCosineThreshold {
		r.addCap(P, T1, d)
		r.addCap(P, T2.Neg(), d)
		return
	}

	angle := math.Copysign(math.Acos(max(-1, min(1, cosTheta))), sinTheta)
	if positiveSide {
		r.addArc(P, d, T1.Rot90(), angle, false)
	} else {
		r.addArc(P, d, T2.Rot90().Neg(), -angle, false)
	}
}

// addInnerCorner adds the inner side of a corner.  If the two offset lines
// intersect, only the intersection point is added and the result is true.
func (r *Renderer) addInnerCorner(P, T1, T2 vec.Vec2, d float64, positiveSide bool) bool {
	if pt, ok := innerIntersection(P, T1, T2, d, positiveSide); ok {
		r.outline = append(r.outline, pt)
		return true
	}
	N1, N2 := T1.Rot90(), T2.Rot90()
	if !positiveSide {
		N1, N2 = N1.Neg(), N2.Neg()
	}
	r.outline = append(r.outline, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	return false
}

// innerIntersection returns the point where the two inner offset lines of
// a corner meet.
func innerIntersection(P, T1, T2 vec.Vec2, d float64, positiveSide bool) (vec.Vec2, bool) {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := T1.Rot90().Add(T2.Rot90())
	if !positiveSide {
		dir = dir.Neg()
	}
	length := dir.Length()
	if length < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (length * cosHalf))), true
}

// addArc appends points on a circular arc around center to the outline.
// The arc starts in direction startDir (a unit vector) and sweeps by the
// given angle, counter-clockwise for positive values.
func (r *Renderer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(r.linear(vec.Vec2{X: radius}).Length(), r.linear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius > flatness {
		step := 2 * math.Acos(1-flatness/devRadius)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// linear applies the linear part of the CTM to v.
func (r *Renderer) linear(v vec.Vec2) vec.Vec2 {
	x1, y1 := r.CTM.Apply(v.X, v.Y)
	x0, y0 := r.CTM.Apply(0, 0)
	return vec.Vec2{X: x1 - x0, Y: y1 - y0}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
