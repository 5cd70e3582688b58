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

// Command genpdf writes a PDF preview for every chart scenario.
// Each page shows the slices, the callout links and a marker at each
// label position.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/arclink"
	"seehuhn.de/go/arclink/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

const outDir = "testdata/preview"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	arclink.SetLogger(logger)

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("wrote preview", "file", pdfPath)
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	d := arclink.NewLabelDecorator[testcases.Slice](nil, tc.Style, arclink.DefaultTheme())
	labels, err := arclink.ComputeLabels(tc.Slices, tc.Params, d)
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left and y points up; chart coordinates are
	// relative to the chart center with y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, float64(tc.Width) / 2, float64(tc.Height) / 2})

	for _, l := range labels {
		c, err := deviceColor(l.Data.Color)
		if err != nil {
			return err
		}
		page.SetFillColor(c)
		arcPolygon(page, l.Data.Arc)
		page.Fill()
	}

	thickness := tc.Style.Thickness
	if thickness <= 0 {
		thickness = 1
	}
	page.SetLineWidth(thickness)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, l := range labels {
		c, err := deviceColor(l.Extra.LinkColor)
		if err != nil {
			return err
		}
		page.SetStrokeColor(c)
		for cmd, pts := range l.Path() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			}
		}
		page.Stroke()
	}

	const marker = 4.0
	for _, l := range labels {
		c, err := deviceColor(l.Extra.TextColor)
		if err != nil {
			return err
		}
		page.SetFillColor(c)
		p := l.Extra.Position
		page.Rectangle(p.X-marker/2, p.Y-marker/2, marker, marker)
		page.Fill()
	}

	return page.Close()
}

// pathBuilder is the subset of the page methods used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// arcPolygon appends a closed polygon approximating the arc to the
// current path.
func arcPolygon(page pathBuilder, arc arclink.Arc) {
	const step = math.Pi / 90
	span := arc.EndAngle - arc.StartAngle
	n := max(int(math.Ceil(math.Abs(span)/step)), 1)
	a0 := arc.StartAngle - math.Pi/2

	p := arclink.PolarToCartesian(a0, arc.OuterRadius)
	page.MoveTo(p.X, p.Y)
	for i := 1; i <= n; i++ {
		p = arclink.PolarToCartesian(a0+span*float64(i)/float64(n), arc.OuterRadius)
		page.LineTo(p.X, p.Y)
	}
	if arc.InnerRadius > 0 {
		for i := n; i >= 0; i-- {
			p = arclink.PolarToCartesian(a0+span*float64(i)/float64(n), arc.InnerRadius)
			page.LineTo(p.X, p.Y)
		}
	} else {
		page.LineTo(0, 0)
	}
	page.ClosePath()
}

// deviceColor converts a resolved color string to a PDF DeviceRGB color.
// Transparency is ignored.
func deviceColor(s string) (color.Color, error) {
	c, _, err := arclink.ParseColor(s)
	if err != nil {
		return nil, err
	}
	c = c.Clamped()
	return color.DeviceRGB{c.R, c.G, c.B}, nil
}
