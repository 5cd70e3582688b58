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

// Package raster draws computed callout labels into RGBA images.
//
// The package renders the slices of a chart, the link polylines and a
// small marker at each label position.  It does not render text.  It is
// meant for previews and tests of the link geometry.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/arclink"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Options control the appearance of a rendered chart.
type Options struct {
	// Background fills the image before drawing.  Nil leaves the image
	// unchanged.
	Background color.Color

	// Thickness is the stroke width of the links, in chart units.
	Thickness float64

	// MarkerSize is the side length of the square drawn at each label
	// position, in chart units.  Zero disables markers.
	MarkerSize float64

	// ArcStep is the maximum angle, in radians, covered by one straight
	// segment when slices are approximated by polygons.
	ArcStep float64
}

// DefaultOptions returns the options used by the preview commands.
func DefaultOptions() Options {
	return Options{
		Background: color.White,
		Thickness:  1,
		MarkerSize: 4,
		ArcStep:    math.Pi / 90,
	}
}

// Renderer draws charts into an RGBA image.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// CTM maps chart coordinates to device (pixel) coordinates.
	CTM matrix.Matrix

	Options

	dst *image.RGBA
	v   *vector.Rasterizer

	// stroke buffers, reused between calls
	segs    []strokeSegment
	outline []vec.Vec2
}

// NewRenderer returns a renderer which draws into dst, with the chart
// center placed at the center of the image.
func NewRenderer(dst *image.RGBA, opts Options) *Renderer {
	b := dst.Bounds()
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	return &Renderer{
		CTM:     matrix.Identity.Translate(cx, cy),
		Options: opts,
		dst:     dst,
		v:       vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Draw renders the slices of all labels, followed by their links and
// label markers.  Slices use the datum color, links and markers use the
// resolved link and text colors.  Unparsable colors cause an error.
func Draw[T arclink.ColoredDatum](r *Renderer, labels []arclink.Label[T]) error {
	if r.Background != nil {
		draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
	}

	for _, l := range labels {
		c, err := parseColor(l.Data.DatumColor())
		if err != nil {
			return err
		}
		r.FillArc(l.Data.ArcGeometry(), c)
	}
	for _, l := range labels {
		c, err := parseColor(l.Extra.LinkColor)
		if err != nil {
			return err
		}
		r.StrokeLink(l.Link, c)
	}
	if r.MarkerSize > 0 {
		for _, l := range labels {
			c, err := parseColor(l.Extra.TextColor)
			if err != nil {
				return err
			}
			r.FillMarker(l.Extra.Position, c)
		}
	}
	return nil
}

// FillArc fills the area of an arc.
func (r *Renderer) FillArc(arc arclink.Arc, c color.Color) {
	step := r.ArcStep
	if !(step > 0) {
		step = math.Pi / 90
	}
	span := arc.EndAngle - arc.StartAngle
	n := max(int(math.Ceil(math.Abs(span)/step)), 1)

	// chart angles start at the top, polar angles at the positive x-axis
	a0 := arc.StartAngle - math.Pi/2

	r.reset()
	r.moveTo(arclink.PolarToCartesian(a0, arc.OuterRadius))
	for i := 1; i <= n; i++ {
		r.lineTo(arclink.PolarToCartesian(a0+span*float64(i)/float64(n), arc.OuterRadius))
	}
	if arc.InnerRadius > 0 {
		for i := n; i >= 0; i-- {
			r.lineTo(arclink.PolarToCartesian(a0+span*float64(i)/float64(n), arc.InnerRadius))
		}
	} else {
		r.lineTo(vec.Vec2{})
	}
	r.v.ClosePath()
	r.paint(c)
}

// StrokeLink draws the link polyline with the configured thickness,
// using round caps and a round join at the elbow.
func (r *Renderer) StrokeLink(link arclink.Link, c color.Color) {
	r.StrokePath(link.Path(), c)
}

// FillMarker draws the label marker centered at pos.
func (r *Renderer) FillMarker(pos vec.Vec2, c color.Color) {
	r.square(pos, r.MarkerSize, c)
}

func (r *Renderer) square(center vec.Vec2, size float64, c color.Color) {
	h := size / 2
	if !(h > 0) {
		return
	}
	r.reset()
	r.moveTo(vec.Vec2{X: center.X - h, Y: center.Y - h})
	r.lineTo(vec.Vec2{X: center.X + h, Y: center.Y - h})
	r.lineTo(vec.Vec2{X: center.X + h, Y: center.Y + h})
	r.lineTo(vec.Vec2{X: center.X - h, Y: center.Y + h})
	r.v.ClosePath()
	r.paint(c)
}

func (r *Renderer) reset() {
	b := r.dst.Bounds()
	r.v.Reset(b.Dx(), b.Dy())
	r.v.DrawOp = draw.Over
}

// device applies the CTM to a point in chart coordinates and returns
// coordinates relative to the image origin.
func (r *Renderer) device(p vec.Vec2) (float32, float32) {
	x, y := r.CTM.Apply(p.X, p.Y)
	b := r.dst.Bounds()
	return float32(x - float64(b.Min.X)), float32(y - float64(b.Min.Y))
}

func (r *Renderer) moveTo(p vec.Vec2) {
	r.v.MoveTo(r.device(p))
}

func (r *Renderer) lineTo(p vec.Vec2) {
	r.v.LineTo(r.device(p))
}

func (r *Renderer) paint(c color.Color) {
	b := r.dst.Bounds()
	r.v.Draw(r.dst, b, image.NewUniform(c), image.Point{})
}

// parseColor converts a resolved color string to an image color.
func parseColor(s string) (color.Color, error) {
	c, alpha, err := arclink.ParseColor(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}, nil
}
