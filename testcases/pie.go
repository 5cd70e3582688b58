package testcases

import (
	"math"

	"seehuhn.de/go/arclink"
)

var pieCases = []TestCase{
	{
		Name:   "even_four",
		Slices: pie([]float64{1, 1, 1, 1}, 0, 0, 0, 120),
		Width:  400,
		Height: 320,
		Params: arclink.DefaultParams(),
		Style:  arclink.DefaultLabelStyle(),
	},
	{
		Name:   "uneven_six",
		Slices: pie([]float64{30, 12, 25, 8, 15, 10}, 0, 0, 0, 110),
		Width:  400,
		Height: 320,
		Params: arclink.DefaultParams(),
		Style:  arclink.DefaultLabelStyle(),
	},
	{
		Name:   "rotated",
		Slices: pie([]float64{5, 3, 2}, math.Pi/5, 0, 0, 110),
		Width:  400,
		Height: 320,
		Params: arclink.DefaultParams(),
		Style:  arclink.DefaultLabelStyle(),
	},
	{
		Name:   "offset_links",
		Slices: pie([]float64{4, 3, 2, 1}, 0, 0, 0, 100),
		Width:  400,
		Height: 320,
		Params: arclink.Params{
			Offset:         8,
			DiagonalLength: 24,
			StraightLength: 16,
		},
		Style: style(10),
	},
	{
		Name:   "datum_colors",
		Slices: pie([]float64{3, 2, 2, 1}, 0, 0, 0, 110),
		Width:  400,
		Height: 320,
		Params: arclink.DefaultParams(),
		Style: arclink.LabelStyle{
			TextOffset: 6,
			Thickness:  2,
			LinkColor:  arclink.FromDatum(),
			TextColor:  arclink.FromDatum(arclink.Darker(1)),
		},
	},
}

var donutCases = []TestCase{
	{
		Name:   "padded",
		Slices: pie([]float64{6, 4, 3, 2, 1}, 0, 0.02, 70, 120),
		Width:  400,
		Height: 320,
		Params: arclink.DefaultParams(),
		Style:  arclink.DefaultLabelStyle(),
	},
	{
		Name:   "thin_ring",
		Slices: pie([]float64{2, 2, 1, 1, 1, 1}, 0, 0.01, 100, 110),
		Width:  400,
		Height: 320,
		Params: arclink.Params{
			Offset:         4,
			DiagonalLength: 12,
			StraightLength: 20,
		},
		Style: style(4),
	},
}
