// Command export writes the computed labels of all chart scenarios to JSON,
// for comparison with other implementations.
// Run from the go-arclink module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/arclink"
	"seehuhn.de/go/arclink/testcases"
)

const outFile = "testdata/labels.json"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	arclink.SetLogger(logger)

	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	n, err := export(f, logger)
	if err != nil {
		panic(err)
	}
	logger.Info("wrote labels", "file", outFile, "testcases", n)
}

type exportFile struct {
	TestCases []jsonTestCase `json:"testcases"`
}

// export writes the labels of all scenarios to w and returns the number
// of test cases written.
func export(w io.Writer, logger *slog.Logger) (int, error) {
	var out exportFile
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", jtc.Name, err)
			}
			out.TestCases = append(out.TestCases, jtc)
			logger.Info("computed labels", "testcase", jtc.Name, "labels", len(jtc.Labels))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return 0, err
	}
	return len(out.TestCases), nil
}

type jsonTestCase struct {
	Name           string            `json:"name"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	SkipAngle      float64           `json:"skip_angle"`
	Offset         float64           `json:"offset"`
	DiagonalLength float64           `json:"diagonal_length"`
	StraightLength float64           `json:"straight_length"`
	TextOffset     float64           `json:"text_offset"`
	Slices         []testcases.Slice `json:"slices"`
	Labels         []jsonLabel       `json:"labels"`
}

type jsonLabel struct {
	ID         string       `json:"id"`
	Side       string       `json:"side"`
	Points     [][2]float64 `json:"points"`
	X          float64      `json:"x"`
	Y          float64      `json:"y"`
	Label      string       `json:"label"`
	LinkColor  string       `json:"link_color"`
	TextColor  string       `json:"text_color"`
	TextAnchor string       `json:"text_anchor"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:           category + "_" + tc.Name,
		Width:          tc.Width,
		Height:         tc.Height,
		SkipAngle:      tc.Params.SkipAngle,
		Offset:         tc.Params.Offset,
		DiagonalLength: tc.Params.DiagonalLength,
		StraightLength: tc.Params.StraightLength,
		TextOffset:     tc.Style.TextOffset,
		Slices:         tc.Slices,
	}

	text, err := arclink.NewFieldAccessor[testcases.Slice]("label")
	if err != nil {
		return jtc, err
	}
	d := arclink.NewLabelDecorator[testcases.Slice](text, tc.Style, arclink.DefaultTheme())
	labels, err := arclink.ComputeLabels(tc.Slices, tc.Params, d)
	if err != nil {
		return jtc, err
	}

	jtc.Labels = make([]jsonLabel, 0, len(labels))
	for _, l := range labels {
		jl := jsonLabel{
			ID:         l.Data.ID,
			Side:       l.Side.String(),
			X:          l.Extra.Position.X,
			Y:          l.Extra.Position.Y,
			Label:      l.Extra.Text,
			LinkColor:  l.Extra.LinkColor,
			TextColor:  l.Extra.TextColor,
			TextAnchor: l.Extra.TextAnchor.String(),
		}
		for _, p := range l.Points {
			jl.Points = append(jl.Points, [2]float64{p.X, p.Y})
		}
		jtc.Labels = append(jtc.Labels, jl)
	}
	return jtc, nil
}
