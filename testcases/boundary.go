package testcases

import (
	"math"

	"seehuhn.de/go/arclink"
)

// boundaryCases have slice bisectors pointing exactly up or down, where
// the link side changes.
var boundaryCases = []TestCase{
	{
		Name: "vertical_bisectors",
		Slices: []Slice{
			{
				ID: "top", Label: "top", Value: 1, Color: palette[0],
				Arc: arclink.Arc{StartAngle: -math.Pi / 6, EndAngle: math.Pi / 6, OuterRadius: 100},
			},
			{
				ID: "bottom", Label: "bottom", Value: 1, Color: palette[1],
				Arc: arclink.Arc{StartAngle: 5 * math.Pi / 6, EndAngle: 7 * math.Pi / 6, OuterRadius: 100},
			},
		},
		Width:  360,
		Height: 340,
		Params: arclink.DefaultParams(),
		Style:  arclink.DefaultLabelStyle(),
	},
	{
		Name: "near_vertical",
		Slices: []Slice{
			{
				ID: "right_of_top", Label: "right of top", Value: 1, Color: palette[2],
				Arc: arclink.Arc{StartAngle: -0.2, EndAngle: 0.21, OuterRadius: 100},
			},
			{
				ID: "left_of_top", Label: "left of top", Value: 1, Color: palette[3],
				Arc: arclink.Arc{StartAngle: -0.41, EndAngle: -0.2, OuterRadius: 100},
			},
		},
		Width:  360,
		Height: 340,
		Params: arclink.DefaultParams(),
		Style:  arclink.DefaultLabelStyle(),
	},
}

// degenerateCases use zero lengths and radii.
var degenerateCases = []TestCase{
	{
		Name:   "zero_lengths",
		Slices: pie([]float64{1, 2, 3}, 0, 0, 0, 100),
		Width:  300,
		Height: 300,
		Params: arclink.Params{},
		Style:  style(0),
	},
	{
		Name:   "zero_radius",
		Slices: pie([]float64{1, 1}, 0, 0, 0, 0),
		Width:  200,
		Height: 200,
		Params: arclink.DefaultParams(),
		Style:  arclink.DefaultLabelStyle(),
	},
}
