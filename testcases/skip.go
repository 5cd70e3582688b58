package testcases

import "seehuhn.de/go/arclink"

// skipCases contain slices narrower than the skip angle, which must not
// get a link.
var skipCases = []TestCase{
	{
		Name:   "five_fifteen_thirty",
		Slices: spans(0, 100, 5, 15, 30, 310),
		Width:  360,
		Height: 300,
		Params: arclink.Params{
			SkipAngle:      10,
			DiagonalLength: 16,
			StraightLength: 24,
		},
		Style: arclink.DefaultLabelStyle(),
	},
	{
		Name:   "many_small",
		Slices: spans(40, 100, 2, 3, 4, 6, 8, 12, 25, 300),
		Width:  360,
		Height: 300,
		Params: arclink.Params{
			SkipAngle:      7,
			DiagonalLength: 16,
			StraightLength: 24,
		},
		Style: arclink.DefaultLabelStyle(),
	},
	{
		Name:   "all_skipped",
		Slices: spans(0, 100, 90, 90, 90, 90),
		Width:  360,
		Height: 300,
		Params: arclink.Params{
			SkipAngle:      120,
			DiagonalLength: 16,
			StraightLength: 24,
		},
		Style: arclink.DefaultLabelStyle(),
	},
}
