/*
Package vlist implements the vertical assembler: it accumulates lines and
other vertical material until the document is finished, at which point
the shared breaker turns the list into pages.

Lines are kept at a constant baseline-to-baseline distance by inserting
glue before each line box; stretches of the list may switch to a
multi-column layout, which the page builder groups into Columns elements.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package vlist

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/engine/element"
	"github.com/npillmayer/typeset/engine/linebreak"
)

// tracer traces with key 'typeset.vlist'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.vlist")
}

// VerticalList accumulates the vertical material of a document.
type VerticalList struct {
	elements []element.Element
	// previousDepth is the depth of the last line box added.
	previousDepth dimen.Dimen
	// sawHBox tells whether a line box has been added yet.
	sawHBox bool
	// firstHBoxHeight is the height of the first line box, for callers
	// that baseline-align a whole assembled box.
	firstHBoxHeight dimen.Dimen
	// baselineSkip is the desired distance between consecutive
	// baselines.
	baselineSkip dimen.Dimen
	// columnChanges maps an element index to the column layout effective
	// from that element on.
	columnChanges *treemap.Map
}

var _ linebreak.Axis = &VerticalList{}

// New creates an empty vertical list with a single-column layout and a
// baseline skip suited for an 11pt font.
func New() *VerticalList {
	vl := &VerticalList{
		baselineSkip:  dimen.UnitPT.ToSP(11 * 1.2),
		columnChanges: treemap.NewWithIntComparator(),
	}
	vl.ChangeColumnLayout(element.SingleColumn())
	return vl
}

// AddElement appends an element. Before each line box except the first,
// glue is inserted to keep the baselines the right distance apart.
func (vl *VerticalList) AddElement(e element.Element) {
	if !element.InVerticalList(e) {
		tracer().Errorf("element %v not allowed in a vertical list", e)
		return
	}
	if hbox, ok := e.(*element.HBox); ok {
		if vl.sawHBox {
			skip := dimen.Max(0, vl.baselineSkip-vl.previousDepth-hbox.Height())
			vl.elements = append(vl.elements, element.NewGlue(skip, 0, 0, false))
		} else {
			vl.firstHBoxHeight = hbox.Height()
		}
		vl.previousDepth = hbox.Depth()
		vl.sawHBox = true
	}
	vl.elements = append(vl.elements, e)
}

// Elements returns the accumulated elements.
func (vl *VerticalList) Elements() []element.Element {
	return vl.elements
}

// BaselineSkip returns the distance between baselines.
func (vl *VerticalList) BaselineSkip() dimen.Dimen {
	return vl.baselineSkip
}

// SetBaselineSkip sets the distance between baselines, normally scaled
// by the font size, e.g. 120% of it. Set this between paragraphs when
// the font size changes. Returns the previous value.
func (vl *VerticalList) SetBaselineSkip(baselineSkip dimen.Dimen) dimen.Dimen {
	old := vl.baselineSkip
	vl.baselineSkip = baselineSkip
	return old
}

// FirstHBoxHeight returns the height of the first line box.
func (vl *VerticalList) FirstHBoxHeight() dimen.Dimen {
	return vl.firstHBoxHeight
}

// LastHBoxDepth returns the depth of the most recent line box.
func (vl *VerticalList) LastHBoxDepth() dimen.Dimen {
	return vl.previousDepth
}

// ChangeColumnLayout switches to a new column layout after the
// last-inserted element.
func (vl *VerticalList) ChangeColumnLayout(layout element.ColumnLayout) {
	vl.columnChanges.Put(len(vl.elements), layout)
}

// columnLayoutFor returns the layout effective at an element index.
func (vl *VerticalList) columnLayoutFor(index int) element.ColumnLayout {
	_, v := vl.columnChanges.Floor(index)
	if v == nil {
		// The constructor pins a layout at index 0.
		tracer().Errorf("no column layout for element %d", index)
		return element.SingleColumn()
	}
	return v.(element.ColumnLayout)
}

// NewPage ejects the current page, if the document is not empty.
func (vl *VerticalList) NewPage() {
	if len(vl.elements) > 0 {
		vl.EjectPage()
	}
}

// OddPage ejects the current page and ensures the next content starts on
// an odd page.
//
// Two infinite glues are separated by a neutral penalty; the second
// penalty is forced but only exists at the end of even pages. The
// breaker either takes the neutral break (leaving an even blank page) or
// runs through, whichever scores better — so the next content always
// lands on an odd page. This double-glue trick relies on there being no
// other infinite vertical glue on the page.
func (vl *VerticalList) OddPage() {
	if len(vl.elements) == 0 {
		return
	}
	vl.AddElement(element.NewInfiniteGlue(false))
	vl.AddElement(element.NewPenalty(0))
	vl.AddElement(element.NewInfiniteGlue(false))
	vl.AddElement(&element.Penalty{Cost: -element.InfinitePenalty, EvenPageOnly: true})
}

// EjectPage adds infinite vertical glue and forces a page break.
func (vl *VerticalList) EjectPage() {
	vl.AddElement(element.NewInfiniteGlue(false))
	vl.AddElement(element.NewPenalty(-element.InfinitePenalty))
}

// BreakIntoPages runs the shared breaker over the document and returns
// the pages.
func (vl *VerticalList) BreakIntoPages(pageHeight dimen.Dimen, firstPageNumber int) ([]*element.Page, error) {
	boxes, err := linebreak.NewBreaker().BreakList(vl, pageHeight, firstPageNumber)
	if err != nil {
		return nil, err
	}
	pages := make([]*element.Page, len(boxes))
	for i, b := range boxes {
		pages[i] = b.(*element.Page)
	}
	return pages, nil
}

// --- Axis ------------------------------------------------------------------

// Measure is the vertical extent of an element.
func (vl *VerticalList) Measure(e element.Element) dimen.Dimen {
	return element.VerticalSize(e)
}

// MakeOutputBox wraps a page's elements into a Page.
func (vl *VerticalList) MakeOutputBox(elements []element.Element, counter int, shift dimen.Dimen) element.Element {
	return element.NewPage(elements, counter, shift)
}

// ExtraIncrement advances the page counter for whole-page images riding
// in the chunk.
func (vl *VerticalList) ExtraIncrement(chunk *linebreak.Chunk) int {
	return len(chunk.Images())
}

// ElementSublist returns the elements of one page, from the begin
// breakpoint (inclusive) to the end breakpoint (exclusive). Consecutive
// elements sharing a multi-column layout are grouped into a single
// Columns element.
func (vl *VerticalList) ElementSublist(begin, end *linebreak.Breakpoint) []element.Element {
	beginIndex := begin.StartIndex()
	endIndex := end.Index()

	capacity := endIndex - beginIndex
	if capacity < 0 {
		// The begin break skipped discardables past the end break: an
		// empty page.
		capacity = 0
	}
	elements := make([]element.Element, 0, capacity)
	for i := beginIndex; i < endIndex && i < len(vl.elements); i++ {
		layout := vl.columnLayoutFor(i)
		if layout.Count > 1 {
			// Find all subsequent elements with this same layout and
			// group them.
			first := i
			last := first
			for last < endIndex-1 && layout == vl.columnLayoutFor(last+1) {
				last++
			}
			i = last
			elements = append(elements, element.NewColumns(vl.elements[first:last+1], layout))
		} else {
			elements = append(elements, vl.elements[i])
		}
	}
	return elements
}
