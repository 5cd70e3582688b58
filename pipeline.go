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

// Datum is implemented by chart data items which carry an arc.
type Datum interface {
	ArcGeometry() Arc
}

// LinkWithDatum pairs a link with the data item it was computed for.
type LinkWithDatum[T Datum] struct {
	Link
	Data T
}

// Params holds the geometry parameters shared by all links of a chart.
type Params struct {
	// SkipAngle is the minimum angular span, in degrees, an arc needs to
	// get a link.  Arcs with a smaller span are omitted from the output.
	SkipAngle float64

	// Offset is the gap between the outer radius and the start of the link.
	Offset float64

	// DiagonalLength is the length of the radial link segment.
	DiagonalLength float64

	// StraightLength is the length of the horizontal link segment.
	StraightLength float64
}

// DefaultParams returns the parameters used when a chart does not
// configure its links.
func DefaultParams() Params {
	return Params{
		SkipAngle:      0,
		Offset:         0,
		DiagonalLength: 16,
		StraightLength: 24,
	}
}

// ExtraFunc computes additional per-link properties.
// An error aborts the computation and is returned unchanged to the caller.
type ExtraFunc[T Datum, E any] func(LinkWithDatum[T]) (E, error)

// Entry is a link together with the extra properties computed for it.
//
// The link fields are promoted from the embedded LinkWithDatum, so they
// always take precedence over identically named fields of Extra, which
// are only reachable through the Extra field.
type Entry[T Datum, E any] struct {
	LinkWithDatum[T]
	Extra E
}

// computeGeometry applies the skip angle filter and computes the links for
// the remaining data items.  The order of the data is preserved.
func computeGeometry[T Datum](data []T, params Params) []LinkWithDatum[T] {
	links := make([]LinkWithDatum[T], 0, len(data))
	for _, d := range data {
		arc := d.ArcGeometry()
		if !(arc.SpanDegrees() >= params.SkipAngle) {
			continue
		}
		link := ComputeLink(arc, params.Offset, params.DiagonalLength, params.StraightLength)
		links = append(links, LinkWithDatum[T]{Link: link, Data: d})
	}
	Logger().Debug("arclink: geometry pass", "items", len(data), "kept", len(links))
	return links
}

// computeExtras runs the extra function on every link.
func computeExtras[T Datum, E any](links []LinkWithDatum[T], extra ExtraFunc[T, E]) ([]Entry[T, E], error) {
	Logger().Debug("arclink: decoration pass", "links", len(links))
	entries := make([]Entry[T, E], len(links))
	for i, l := range links {
		entries[i].LinkWithDatum = l
		if extra == nil {
			continue
		}
		e, err := extra(l)
		if err != nil {
			return nil, err
		}
		entries[i].Extra = e
	}
	return entries, nil
}

// ComputeLinks filters the data by angular span, computes a link for
// every remaining item and attaches the output of extra to each link.
// If extra is nil, the Extra fields are left at their zero value.
//
// ComputeLinks does not cache anything; use a [Pipeline] to avoid
// recomputation when only some of the inputs change.
func ComputeLinks[T Datum, E any](data []T, params Params, extra ExtraFunc[T, E]) ([]Entry[T, E], error) {
	return computeExtras(computeGeometry(data, params), extra)
}

// Stats counts the passes a [Pipeline] has executed.
type Stats struct {
	GeometryPasses   int
	DecorationPasses int
}

// Pipeline computes links and their extra properties, and caches the
// results of both stages separately.
//
// The geometry stage depends on the data and the [Params]; the decoration
// stage depends on the geometry and the extra function.  Changing only
// the extra function re-runs only the decoration stage.  Changing the data
// or the parameters re-runs the geometry stage, and then the decoration
// stage on the new links.
//
// The data slice is compared by identity (same backing array and length),
// not by content.  Callers which modify the data in place must call
// [Pipeline.Invalidate].  Slices returned by the pipeline are shared with
// the cache and must not be modified.
//
// A Pipeline is not safe for concurrent use.
type Pipeline[T Datum, E any] struct {
	data   []T
	params Params
	extra  ExtraFunc[T, E]

	links      []LinkWithDatum[T]
	linksValid bool

	entries      []Entry[T, E]
	entriesErr   error
	entriesValid bool

	stats Stats
}

// NewPipeline returns a pipeline for the given inputs.
// No computation is done until the results are requested.
func NewPipeline[T Datum, E any](data []T, params Params, extra ExtraFunc[T, E]) *Pipeline[T, E] {
	return &Pipeline[T, E]{
		data:   data,
		params: params,
		extra:  extra,
	}
}

// SetData replaces the data items.
// Passing the same slice again keeps the cached results.
func (p *Pipeline[T, E]) SetData(data []T) {
	if sameSlice(p.data, data) {
		return
	}
	p.data = data
	p.invalidateGeometry()
}

// SetParams replaces the geometry parameters.
// Passing equal parameters keeps the cached results.
func (p *Pipeline[T, E]) SetParams(params Params) {
	if params == p.params {
		return
	}
	p.params = params
	p.invalidateGeometry()
}

// SetExtra replaces the extra function.  Since functions cannot be
// compared, this always discards the cached decoration results, but keeps
// the cached geometry.
func (p *Pipeline[T, E]) SetExtra(extra ExtraFunc[T, E]) {
	p.extra = extra
	p.invalidateDecoration()
}

// Invalidate discards all cached results.
func (p *Pipeline[T, E]) Invalidate() {
	p.invalidateGeometry()
}

func (p *Pipeline[T, E]) invalidateGeometry() {
	p.links = nil
	p.linksValid = false
	p.invalidateDecoration()
}

func (p *Pipeline[T, E]) invalidateDecoration() {
	p.entries = nil
	p.entriesErr = nil
	p.entriesValid = false
}

// Links returns the links for all data items which pass the skip angle
// filter, in data order.
func (p *Pipeline[T, E]) Links() []LinkWithDatum[T] {
	if !p.linksValid {
		p.links = computeGeometry(p.data, p.params)
		p.linksValid = true
		p.stats.GeometryPasses++
	}
	return p.links
}

// Entries returns the links together with their extra properties.
// If the extra function fails, the error is returned unchanged.
func (p *Pipeline[T, E]) Entries() ([]Entry[T, E], error) {
	links := p.Links()
	if !p.entriesValid {
		p.entries, p.entriesErr = computeExtras(links, p.extra)
		p.entriesValid = true
		p.stats.DecorationPasses++
	}
	return p.entries, p.entriesErr
}

// Stats reports how often each stage has been computed.
func (p *Pipeline[T, E]) Stats() Stats {
	return p.stats
}

func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
