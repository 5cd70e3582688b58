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

// Command genpng writes a PNG preview for every chart scenario.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/arclink"
	"seehuhn.de/go/arclink/raster"
	"seehuhn.de/go/arclink/testcases"
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
			pngPath := filepath.Join(outDir, name+".png")
			if err := generatePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("wrote preview", "file", pngPath)
		}
	}
}

func generatePNG(tc testcases.TestCase, pngPath string) (err error) {
	d := arclink.NewLabelDecorator[testcases.Slice](nil, tc.Style, arclink.DefaultTheme())
	labels, err := arclink.ComputeLabels(tc.Slices, tc.Params, d)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	opts := raster.DefaultOptions()
	if tc.Style.Thickness > 0 {
		opts.Thickness = tc.Style.Thickness
	}
	if err := raster.Draw(raster.NewRenderer(img, opts), labels); err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
