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
	"errors"
	"math"
	"testing"
)

func TestDecorateAnchor(t *testing.T) {
	const textOffset = 6
	d := &LabelDecorator[testSlice]{TextOffset: textOffset}

	cases := []struct {
		name   string
		arc    Arc
		side   Side
		anchor TextAnchor
		dx     float64
	}{
		{"after", Arc{StartAngle: 0, EndAngle: math.Pi / 2, OuterRadius: 100}, After, AnchorStart, textOffset},
		{"before", Arc{StartAngle: math.Pi, EndAngle: 1.5 * math.Pi, OuterRadius: 100}, Before, AnchorEnd, -textOffset},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := LinkWithDatum[testSlice]{
				Link: ComputeLink(c.arc, 0, 16, 24),
				Data: testSlice{Arc: c.arc},
			}
			if l.Side != c.side {
				t.Fatalf("side = %s, want %s", l.Side, c.side)
			}
			extra, err := d.Decorate(l)
			if err != nil {
				t.Fatal(err)
			}
			if extra.TextAnchor != c.anchor {
				t.Errorf("anchor = %s, want %s", extra.TextAnchor, c.anchor)
			}
			end := l.Points[2]
			if extra.Position.X != end.X+c.dx || extra.Position.Y != end.Y {
				t.Errorf("position = %v, want (%g, %g)", extra.Position, end.X+c.dx, end.Y)
			}
		})
	}
}

func TestComputeLabelsEndToEnd(t *testing.T) {
	data := []testSlice{{
		ID:    "quarter",
		Color: "#e8c1a0",
		Arc:   Arc{StartAngle: 0, EndAngle: math.Pi / 2, InnerRadius: 0, OuterRadius: 100},
	}}
	params := Params{Offset: 0.5, DiagonalLength: 10, StraightLength: 20}

	text, err := NewFieldAccessor[testSlice]("ID")
	if err != nil {
		t.Fatal(err)
	}
	style := LabelStyle{
		TextOffset: 0,
		LinkColor:  FromDatum(Darker(1)),
		TextColor:  FromTheme("labels.text.fill"),
	}
	labels, err := ComputeLabels(data, params, NewLabelDecorator[testSlice](text, style, DefaultTheme()))
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 1 {
		t.Fatalf("got %d labels", len(labels))
	}

	l := labels[0]
	if l.Side != After || l.Extra.TextAnchor != AnchorStart {
		t.Errorf("side %s, anchor %s", l.Side, l.Extra.TextAnchor)
	}
	if l.Extra.Position != l.Points[2] {
		t.Errorf("position = %v, want %v", l.Extra.Position, l.Points[2])
	}
	if l.Extra.Text != "quarter" {
		t.Errorf("text = %q", l.Extra.Text)
	}
	if l.Extra.LinkColor != "#a28770" {
		t.Errorf("link color = %q, want #a28770", l.Extra.LinkColor)
	}
	if l.Extra.TextColor != "#333333" {
		t.Errorf("text color = %q, want #333333", l.Extra.TextColor)
	}
}

func TestDecorateColorError(t *testing.T) {
	style := DefaultLabelStyle()
	style.TextColor = FromTheme("no.such.path")
	d := NewLabelDecorator[testSlice](nil, style, DefaultTheme())

	_, err := ComputeLabels(slicesWithSpans(40), DefaultParams(), d)
	if !errors.Is(err, ErrUnknownThemePath) {
		t.Errorf("err = %v, want ErrUnknownThemePath", err)
	}
}

func TestDecorateIndependentColors(t *testing.T) {
	linkCalls, textCalls := 0, 0
	d := &LabelDecorator[testSlice]{
		Text: AccessorFunc[testSlice](func(s testSlice) string { return "label " + s.ID }),
		LinkColor: ColorFunc[testSlice](func(s testSlice) (string, error) {
			linkCalls++
			return "red", nil
		}),
		TextColor: ColorFunc[testSlice](func(s testSlice) (string, error) {
			textCalls++
			return "blue", nil
		}),
	}
	labels, err := ComputeLabels(slicesWithSpans(30, 30, 30), DefaultParams(), d)
	if err != nil {
		t.Fatal(err)
	}
	if linkCalls != 3 || textCalls != 3 {
		t.Errorf("resolver calls: link %d, text %d", linkCalls, textCalls)
	}
	for _, l := range labels {
		if l.Extra.LinkColor != "red" || l.Extra.TextColor != "blue" {
			t.Errorf("colors %q/%q", l.Extra.LinkColor, l.Extra.TextColor)
		}
		if l.Extra.Text != "label "+l.Data.ID {
			t.Errorf("text = %q", l.Extra.Text)
		}
	}
}

func TestLabelPipelineThemeSwitch(t *testing.T) {
	data := slicesWithSpans(45, 90, 135, 90)
	style := DefaultLabelStyle()
	p := NewLabelPipeline(data, DefaultParams(), NewLabelDecorator[testSlice](nil, style, DefaultTheme()))

	before, err := p.Entries()
	if err != nil {
		t.Fatal(err)
	}

	dark := MapTheme{
		"labels.text.fill":       "#eeeeee",
		"axis.ticks.line.stroke": "#aaaaaa",
	}
	p.SetExtra(NewLabelDecorator[testSlice](nil, style, dark).Decorate)
	after, err := p.Entries()
	if err != nil {
		t.Fatal(err)
	}

	if s := p.Stats(); s.GeometryPasses != 1 || s.DecorationPasses != 2 {
		t.Errorf("stats = %+v", s)
	}
	for i := range after {
		if after[i].Link != before[i].Link {
			t.Errorf("label %d: geometry changed", i)
		}
		if after[i].Extra.TextColor != "#eeeeee" || before[i].Extra.TextColor != "#333333" {
			t.Errorf("label %d: text colors %q -> %q", i, before[i].Extra.TextColor, after[i].Extra.TextColor)
		}
	}
}
