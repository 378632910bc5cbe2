/*
Package hlist implements the horizontal assembler: it accumulates text in
a horizontal list until a paragraph is finished, at which point the
shared breaker turns the list into lines.

Text passes through several stages on its way into the list: splitting
into words and elastic spaces, hyphenation, ligature folding around the
discretionary breaks, kerning, and reordering of right-to-left runs.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package hlist

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/engine/element"
	"github.com/npillmayer/typeset/engine/linebreak"
)

// tracer traces with key 'typeset.hlist'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.hlist")
}

// raggedStretch is the extra stretchability padding ragged lines: it
// makes leaving space at the ragged edge acceptable to the breaker.
var raggedStretch = 10 * dimen.PT

// HorizontalList accumulates elements for one paragraph.
type HorizontalList struct {
	elements        []element.Element
	raggedLeft      bool
	raggedRight     bool
	allowLineBreaks bool
	pipeline        *pipeline
}

var _ linebreak.Axis = &HorizontalList{}

// New creates a horizontal list for a justified paragraph.
func New() *HorizontalList {
	return &HorizontalList{allowLineBreaks: true}
}

// RaggedRight creates a horizontal list with a ragged right edge (no
// justification).
func RaggedRight() *HorizontalList {
	return &HorizontalList{raggedRight: true, allowLineBreaks: true}
}

// Centered creates a horizontal list with both edges ragged.
func Centered() *HorizontalList {
	return &HorizontalList{raggedLeft: true, raggedRight: true, allowLineBreaks: true}
}

// NoLineBreaks creates a horizontal list that does not permit line
// breaks at spaces. It is implicitly ragged right.
func NoLineBreaks() *HorizontalList {
	return &HorizontalList{raggedRight: true}
}

// AddElement appends an element to the list.
func (hl *HorizontalList) AddElement(e element.Element) {
	if !element.InHorizontalList(e) {
		tracer().Errorf("element %v not allowed in a horizontal list", e)
		return
	}
	hl.elements = append(hl.elements, e)
}

// Elements returns the accumulated elements.
func (hl *HorizontalList) Elements() []element.Element {
	return hl.elements
}

// FootnoteCount returns the number of footnotes in this list.
func (hl *HorizontalList) FootnoteCount() int {
	count := 0
	for _, e := range hl.elements {
		if _, ok := e.(*element.Footnote); ok {
			count++
		}
	}
	return count
}

// AddEndOfParagraph adds the glue and penalties that end a paragraph: a
// break before the final glue is forbidden, the last line is filled with
// infinite glue, and a break is forced.
func (hl *HorizontalList) AddEndOfParagraph() {
	hl.AddElement(element.NewPenalty(element.InfinitePenalty))
	hl.AddElement(element.NewInfiniteGlue(true))
	hl.AddElement(element.NewPenalty(-element.InfinitePenalty))
}

// BreakIntoLines runs the shared breaker over the paragraph and returns
// the lines as HBoxes.
func (hl *HorizontalList) BreakIntoLines(lineWidth dimen.Dimen) ([]*element.HBox, error) {
	boxes, err := linebreak.NewBreaker().BreakList(hl, lineWidth, 1)
	if err != nil {
		return nil, err
	}
	lines := make([]*element.HBox, len(boxes))
	for i, b := range boxes {
		lines[i] = b.(*element.HBox)
	}
	return lines, nil
}

// --- Axis ------------------------------------------------------------------

// Measure is the horizontal extent of an element.
func (hl *HorizontalList) Measure(e element.Element) dimen.Dimen {
	return e.Width()
}

// MakeOutputBox wraps a line's elements into an HBox.
func (hl *HorizontalList) MakeOutputBox(elements []element.Element, counter int, shift dimen.Dimen) element.Element {
	return element.NewHBox(elements, shift)
}

// ExtraIncrement: lines never consume extra counter steps.
func (hl *HorizontalList) ExtraIncrement(chunk *linebreak.Chunk) int {
	return 0
}

// ElementSublist returns the elements of one line, from the begin
// breakpoint (inclusive) to the end breakpoint (inclusive only for
// discretionaries). Discretionaries are replaced by the part matching
// their position on the line; ragged modes pad the line with stretch.
func (hl *HorizontalList) ElementSublist(begin, end *linebreak.Breakpoint) []element.Element {
	beginIndex := begin.StartIndex()
	endIndex := end.Index()

	elements := make([]element.Element, 0, endIndex-beginIndex+2)

	if hl.raggedLeft {
		elements = append(elements, element.NewGlue(0, raggedStretch, 0, true))
	}

	for i := beginIndex; i <= endIndex && i < len(hl.elements); i++ {
		e := hl.elements[i]
		if disc, ok := e.(*element.Discretionary); ok {
			var hbox *element.HBox
			switch i {
			case beginIndex:
				// The break at the beginning of the line: the "post" part.
				hbox = disc.PostBreak
			case endIndex:
				// The break at the end of the line: the "pre" part.
				hbox = disc.PreBreak
			default:
				hbox = disc.NoBreak
			}
			elements = append(elements, hbox)
		} else if i < endIndex {
			// The end index is normally exclusive.
			elements = append(elements, e)
		}
	}

	if hl.raggedRight {
		elements = append(elements, element.NewGlue(0, raggedStretch, 0, true))
	}

	return elements
}
