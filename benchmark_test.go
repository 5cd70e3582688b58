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

package arclink_test

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/arclink"
	"seehuhn.de/go/arclink/testcases"
)

// BenchmarkComputeLabels measures the full computation for all scenarios.
func BenchmarkComputeLabels(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}
	d := arclink.NewLabelDecorator[testcases.Slice](nil, arclink.DefaultLabelStyle(), arclink.DefaultTheme())

	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range cases {
			if _, err := arclink.ComputeLabels(tc.Slices, tc.Params, d); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkPipelineRecolor measures a theme change on a cached pipeline,
// which only re-runs the decoration stage.
func BenchmarkPipelineRecolor(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			data := make([]testcases.Slice, n)
			span := 2 * math.Pi / float64(n)
			for i := range data {
				data[i] = testcases.Slice{
					ID:    fmt.Sprintf("s%d", i),
					Color: "#61cdbb",
					Arc: arclink.Arc{
						StartAngle:  float64(i) * span,
						EndAngle:    float64(i+1) * span,
						OuterRadius: 100,
					},
				}
			}
			style := arclink.DefaultLabelStyle()
			style.LinkColor = arclink.FromDatum(arclink.Darker(1))
			d := arclink.NewLabelDecorator[testcases.Slice](nil, style, arclink.DefaultTheme())
			p := arclink.NewLabelPipeline(data, arclink.DefaultParams(), d)

			b.ReportAllocs()
			for b.Loop() {
				p.SetExtra(d.Decorate)
				if _, err := p.Entries(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
