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

import "seehuhn.de/go/geom/vec"

// TextAnchor gives the horizontal alignment of a label relative to its
// position.
type TextAnchor uint8

const (
	// AnchorStart means that the text starts at the label position.
	AnchorStart TextAnchor = iota

	// AnchorEnd means that the text ends at the label position.
	AnchorEnd
)

func (a TextAnchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "TextAnchor(invalid)"
	}
}

// LabelExtra holds the label properties derived from a link.
type LabelExtra struct {
	Position   vec.Vec2 // relative to the chart center
	Text       string
	LinkColor  string
	TextColor  string
	TextAnchor TextAnchor
}

// Label is a link together with its label.
type Label[T ColoredDatum] = Entry[T, LabelExtra]

// LabelStyle collects the configurable label properties.
type LabelStyle struct {
	// TextOffset is the horizontal gap between the end of the link and
	// the label text.
	TextOffset float64

	// Thickness is the stroke width used by renderers to draw links.
	Thickness float64

	LinkColor ColorSpec
	TextColor ColorSpec
}

// DefaultLabelStyle returns the label style used when a chart does not
// configure its labels.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{
		TextOffset: 6,
		Thickness:  1,
		LinkColor:  FromTheme("axis.ticks.line.stroke"),
		TextColor:  FromTheme("labels.text.fill"),
	}
}

// LabelDecorator computes the label properties for a link.
// Nil fields leave the corresponding label property empty.
type LabelDecorator[T ColoredDatum] struct {
	TextOffset float64
	Text       Accessor[T]
	LinkColor  ColorResolver[T]
	TextColor  ColorResolver[T]
}

// NewLabelDecorator returns a decorator which takes the label text from
// text and resolves the colors of style against theme.
func NewLabelDecorator[T ColoredDatum](text Accessor[T], style LabelStyle, theme Theme) *LabelDecorator[T] {
	return &LabelDecorator[T]{
		TextOffset: style.TextOffset,
		Text:       text,
		LinkColor:  InheritColor[T](style.LinkColor, theme),
		TextColor:  InheritColor[T](style.TextColor, theme),
	}
}

// Decorate computes the label for a link.  The label is placed TextOffset
// units beyond the end of the link, and anchored so that the text extends
// away from the chart.  Errors from the color resolvers are returned
// unchanged.
func (d *LabelDecorator[T]) Decorate(l LinkWithDatum[T]) (LabelExtra, error) {
	var extra LabelExtra

	pos := l.End()
	if l.Side == Before {
		pos.X -= d.TextOffset
		extra.TextAnchor = AnchorEnd
	} else {
		pos.X += d.TextOffset
		extra.TextAnchor = AnchorStart
	}
	extra.Position = pos

	if d.Text != nil {
		extra.Text = d.Text.Value(l.Data)
	}

	var err error
	if d.LinkColor != nil {
		extra.LinkColor, err = d.LinkColor.ResolveColor(l.Data)
		if err != nil {
			return LabelExtra{}, err
		}
	}
	if d.TextColor != nil {
		extra.TextColor, err = d.TextColor.ResolveColor(l.Data)
		if err != nil {
			return LabelExtra{}, err
		}
	}
	return extra, nil
}

// NewLabelPipeline returns a caching pipeline which computes labels using
// the decorator d.  To switch theme or colors, install a new decorator
// using [Pipeline.SetExtra]; this keeps the cached link geometry.
func NewLabelPipeline[T ColoredDatum](data []T, params Params, d *LabelDecorator[T]) *Pipeline[T, LabelExtra] {
	return NewPipeline[T, LabelExtra](data, params, d.Decorate)
}

// ComputeLabels computes the labels for all data items which pass the
// skip angle filter.
func ComputeLabels[T ColoredDatum](data []T, params Params, d *LabelDecorator[T]) ([]Label[T], error) {
	return ComputeLinks[T, LabelExtra](data, params, d.Decorate)
}
