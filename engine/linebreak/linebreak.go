/*
Package linebreak implements the optimal-fit breaker shared by line
breaking and page breaking.

The breaker is a dynamic program in the tradition of Knuth & Plass: legal
breakpoints are scored by how badly the material between two breaks fits
the target measure, penalties at the break are added, and the sequence of
breaks minimizing total demerits is selected. Both the horizontal list
(lines from a paragraph) and the vertical list (pages from a document)
drive the same breaker through the Axis interface.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package linebreak

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typeset/core"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/engine/element"
)

// tracer traces with key 'typeset.linebreak'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.linebreak")
}

// Axis adapts the breaker to one direction of typesetting. The
// horizontal list and the vertical list each provide an implementation.
type Axis interface {
	// Elements returns the element list to be broken.
	Elements() []element.Element
	// Measure returns the extent of an element along the axis.
	Measure(e element.Element) dimen.Dimen
	// ElementSublist returns the elements of one output box, between two
	// breakpoints. Implementations convert discretionaries depending on
	// their position and may group or pad elements.
	ElementSublist(begin, end *Breakpoint) []element.Element
	// MakeOutputBox materializes an output box (a line or a page) from
	// the selected elements. counter numbers the box, 1-based.
	MakeOutputBox(elements []element.Element, counter int, shift dimen.Dimen) element.Element
	// ExtraIncrement returns how many extra counter steps a chunk
	// consumes, e.g. for whole-page images riding along.
	ExtraIncrement(chunk *Chunk) int
}

// Breakpoint is a legal position to end an output box: the index of the
// break element in the element list, plus the index where the following
// box starts (skipping discardable elements after the break).
type Breakpoint struct {
	index      int
	startIndex int
}

// Index returns the position of the break element. The element at
// Index is not part of the box ending here, except for discretionaries.
func (bp *Breakpoint) Index() int {
	return bp.index
}

// StartIndex returns the position where the box following this break
// starts.
func (bp *Breakpoint) StartIndex() int {
	return bp.startIndex
}

// Chunk is the material between two breakpoints, measured along the
// axis: the natural size plus the accumulated stretchability and
// shrinkability, with infinite elasticity tracked separately.
type Chunk struct {
	elements   []element.Element
	size       dimen.Dimen
	stretch    dimen.Dimen
	stretchInf dimen.Dimen
	shrink     dimen.Dimen
	shrinkInf  dimen.Dimen
	images     []*element.Image
}

// Images returns the whole-page images contained in the chunk.
func (c *Chunk) Images() []*element.Image {
	return c.images
}

// Size returns the natural size of the chunk along the axis.
func (c *Chunk) Size() dimen.Dimen {
	return c.size
}

// newChunk measures an element sublist along an axis.
func newChunk(elements []element.Element, axis Axis) *Chunk {
	c := &Chunk{elements: elements}
	for _, e := range elements {
		switch x := e.(type) {
		case *element.Glue:
			c.size += x.Size
			if x.StretchIsInf {
				c.stretchInf += x.Stretch
			} else {
				c.stretch += x.Stretch
			}
			if x.ShrinkIsInf {
				c.shrinkInf += x.Shrink
			} else {
				c.shrink += x.Shrink
			}
		case *element.Penalty:
			// No size.
		case *element.Image:
			c.images = append(c.images, x)
		default:
			c.size += axis.Measure(e)
		}
	}
	return c
}

// ratio returns the adjustment ratio for fitting the chunk into the
// target size, and whether the infinite accumulator absorbs the slack.
//
// A positive ratio stretches, a negative one shrinks. Positive infinity
// signals an underfull box without any stretchability.
func (c *Chunk) ratio(target dimen.Dimen) (r float64, infinite bool) {
	slack := target - c.size
	switch {
	case slack == 0:
		return 0, false
	case slack > 0:
		if c.stretchInf > 0 {
			return float64(slack) / float64(c.stretchInf), true
		}
		if c.stretch > 0 {
			return float64(slack) / float64(c.stretch), false
		}
		return math.Inf(1), false
	default:
		if c.shrinkInf > 0 {
			return float64(slack) / float64(c.shrinkInf), true
		}
		if c.shrink > 0 {
			return float64(slack) / float64(c.shrink), false
		}
		return math.Inf(-1), false
	}
}

// The badness ceiling, and the badness assigned to chunks that cannot
// fit at all. An infeasible chunk is only ever used when nothing better
// reaches a forced break.
const (
	maxBadness        = 10000
	infeasibleBadness = 100000
)

// badness rates a fit ratio: 100·|r|³, clamped to maxBadness. Chunks
// that would have to shrink beyond their shrinkability are infeasible.
// Slack absorbed by infinite glue is perfect.
func badness(r float64, infinite bool) int {
	if infinite {
		return 0
	}
	if r < -1 {
		return infeasibleBadness
	}
	b := 100 * math.Abs(r) * math.Abs(r) * math.Abs(r)
	if b > maxBadness {
		return maxBadness
	}
	return int(b)
}

// fixGlue returns the chunk's elements with every glue replaced by a
// rigid copy of its adjusted size, distributing the slack according to
// the fit ratio. When infinite elasticity is present, only the infinite
// glues flex.
func (c *Chunk) fixGlue(target dimen.Dimen) []element.Element {
	r, infinite := c.ratio(target)
	if math.IsInf(r, 0) {
		r = 0
	}
	if r < -1 {
		r = -1 // never shrink below the shrinkability
	}
	// Distribute the slack with running-sum rounding, so the rounded
	// per-glue adjustments add up to the slack exactly.
	var cumElastic float64
	var applied dimen.Dimen
	fixed := make([]element.Element, 0, len(c.elements))
	for _, e := range c.elements {
		g, ok := e.(*element.Glue)
		if !ok {
			fixed = append(fixed, e)
			continue
		}
		var elastic dimen.Dimen
		switch {
		case r > 0 && infinite == g.StretchIsInf:
			elastic = g.Stretch
		case r < 0 && infinite == g.ShrinkIsInf:
			elastic = g.Shrink
		}
		size := g.Size
		if elastic != 0 {
			cumElastic += float64(elastic)
			adjust := dimen.Dimen(math.Round(r*cumElastic)) - applied
			applied += adjust
			size += adjust
		}
		fixed = append(fixed, g.FixedGlue(size))
	}
	return fixed
}

// ---------------------------------------------------------------------------

// Breaker runs the optimal-fit dynamic program over an element list.
// The demerit weights are configuration; the zero value is not usable,
// use NewBreaker.
type Breaker struct {
	// LinePenalty is added to every box's badness before squaring,
	// discouraging solutions with more boxes than necessary.
	LinePenalty int
	// DoubleHyphenDemerits is added when two consecutive boxes end in
	// discretionary breaks.
	DoubleHyphenDemerits int64
}

// NewBreaker creates a breaker with the customary TeX weights.
func NewBreaker() *Breaker {
	return &Breaker{
		LinePenalty:          10,
		DoubleHyphenDemerits: 10000,
	}
}

// node is the dynamic-programming state per breakpoint.
type node struct {
	bp       *Breakpoint
	demerits int64
	prev     int  // index of the best predecessor node, -1 for the start
	counter  int  // number of the box ending at this break, plus its chunk's extra increment
	flagged  bool // box ending here ends in a discretionary
	reached  bool
}

const unreachable = math.MaxInt64

// BreakList breaks an axis' element list into output boxes of the given
// target measure. Boxes are numbered starting at firstCounter.
//
// An empty element list yields no boxes.
func (br *Breaker) BreakList(axis Axis, target dimen.Dimen, firstCounter int) ([]element.Element, error) {
	elements := axis.Elements()
	if len(elements) == 0 {
		return nil, nil
	}
	path, err := br.solve(axis, target, firstCounter)
	if err != nil {
		return nil, err
	}

	boxes := make([]element.Element, 0, len(path))
	begin := &Breakpoint{index: -1, startIndex: 0}
	counter := firstCounter
	for _, bp := range path {
		chunk := newChunk(axis.ElementSublist(begin, bp), axis)
		box := axis.MakeOutputBox(chunk.fixGlue(target), counter, 0)
		boxes = append(boxes, box)
		counter += 1 + axis.ExtraIncrement(chunk)
		begin = bp
	}
	tracer().Infof("broke %d elements into %d boxes", len(elements), len(boxes))
	return boxes, nil
}

// solve runs the dynamic program and returns the selected breakpoints in
// order.
func (br *Breaker) solve(axis Axis, target dimen.Dimen, firstCounter int) ([]*Breakpoint, error) {
	elements := axis.Elements()
	breakpoints := findBreakpoints(elements)
	tracer().Debugf("breaking %d elements with %d breakpoints into measure %s",
		len(elements), len(breakpoints), target)

	start := &Breakpoint{index: -1, startIndex: 0}
	nodes := make([]node, len(breakpoints))
	for j := range nodes {
		nodes[j] = node{bp: breakpoints[j], demerits: unreachable, prev: -1}
	}

	for j, bpj := range breakpoints {
		for i := -1; i < j; i++ {
			prevBP, prevCounter, prevDemerits, prevFlagged := start, firstCounter-1, int64(0), false
			if i >= 0 {
				if !nodes[i].reached {
					continue
				}
				prevBP = nodes[i].bp
				prevCounter = nodes[i].counter
				prevDemerits = nodes[i].demerits
				prevFlagged = nodes[i].flagged
			}
			counter := prevCounter + 1

			// An even-page-only penalty is invisible on odd pages.
			pen, isPenalty := penaltyAt(elements, bpj.index)
			if isPenalty && pen.EvenPageOnly && counter%2 != 0 {
				continue
			}
			// A chunk may not span an effective forced break.
			if spansForcedBreak(elements, breakpoints, i, j, counter) {
				continue
			}

			chunk := newChunk(axis.ElementSublist(prevBP, bpj), axis)
			r, infinite := chunk.ratio(target)
			b := badness(r, infinite)
			counter += axis.ExtraIncrement(chunk)

			d := br.demerits(b, breakCost(elements, bpj.index))
			if prevFlagged && isDiscretionary(elements, bpj.index) {
				d += br.DoubleHyphenDemerits
			}
			total := prevDemerits + d
			if !nodes[j].reached || total < nodes[j].demerits {
				nodes[j] = node{
					bp:       bpj,
					demerits: total,
					prev:     i,
					counter:  counter,
					flagged:  isDiscretionary(elements, bpj.index),
					reached:  true,
				}
			}
		}
	}

	last := len(nodes) - 1
	if !nodes[last].reached {
		return nil, core.Error(core.EINTERNAL, "element list cannot be broken")
	}

	// Trace the best path back.
	var reversed []*Breakpoint
	for j := last; j >= 0; j = nodes[j].prev {
		reversed = append(reversed, nodes[j].bp)
	}
	path := make([]*Breakpoint, 0, len(reversed))
	for k := len(reversed) - 1; k >= 0; k-- {
		path = append(path, reversed[k])
	}
	return path, nil
}

// demerits computes the cost of ending a box with badness b at a break
// with penalty cost pi.
func (br *Breaker) demerits(b int, pi int) int64 {
	base := int64(br.LinePenalty + b)
	d := base * base
	switch {
	case pi <= -element.InfinitePenalty:
		// Forced break: the penalty does not contribute.
	case pi >= 0:
		d += int64(pi) * int64(pi)
	default:
		d -= int64(pi) * int64(pi)
	}
	return d
}

// findBreakpoints collects the legal breakpoints of an element list:
// penalties below +infinity, glue preceded by a non-discardable element,
// and discretionaries. The end of the list is always a forced break.
func findBreakpoints(elements []element.Element) []*Breakpoint {
	var breakpoints []*Breakpoint
	for i, e := range elements {
		legal := false
		switch x := e.(type) {
		case *element.Penalty:
			legal = x.Cost < element.InfinitePenalty
		case *element.Glue:
			if i > 0 {
				prev := elements[i-1]
				_, disc := prev.(*element.Discretionary)
				legal = !element.Discardable(prev) && !disc
			}
		case *element.Discretionary:
			legal = true
		}
		if legal {
			breakpoints = append(breakpoints, &Breakpoint{
				index:      i,
				startIndex: startIndexFor(elements, i),
			})
		}
	}
	// The end of the list is always a forced break — unless the list
	// already ends with one, which would leave an empty trailing box.
	if n := len(elements); n > 0 {
		if pen, ok := elements[n-1].(*element.Penalty); ok &&
			pen.IsForcedBreak() && !pen.EvenPageOnly {
			return breakpoints
		}
	}
	end := &Breakpoint{index: len(elements), startIndex: len(elements)}
	return append(breakpoints, end)
}

// startIndexFor skips the discardable elements after a break. A
// discretionary break starts the following box itself, contributing its
// post-break part.
func startIndexFor(elements []element.Element, breakIndex int) int {
	if _, ok := elements[breakIndex].(*element.Discretionary); ok {
		return breakIndex
	}
	start := breakIndex + 1
	for start < len(elements) && element.Discardable(elements[start]) {
		start++
	}
	return start
}

// spansForcedBreak tells whether any breakpoint strictly between nodes i
// and j forces a break for the box numbered counter, which would make
// the chunk (i,j) illegal.
func spansForcedBreak(elements []element.Element, breakpoints []*Breakpoint, i, j, counter int) bool {
	for k := i + 1; k < j; k++ {
		if pen, ok := penaltyAt(elements, breakpoints[k].index); ok {
			if pen.IsForcedBreak() && (!pen.EvenPageOnly || counter%2 == 0) {
				return true
			}
		}
	}
	return false
}

func penaltyAt(elements []element.Element, index int) (*element.Penalty, bool) {
	if index >= len(elements) {
		return nil, false
	}
	pen, ok := elements[index].(*element.Penalty)
	return pen, ok
}

// breakCost returns the penalty cost of breaking at an element: the
// penalty's cost, a discretionary's penalty, or 0.
func breakCost(elements []element.Element, index int) int {
	if index >= len(elements) {
		return -element.InfinitePenalty // the end of the list is forced
	}
	switch x := elements[index].(type) {
	case *element.Penalty:
		return x.Cost
	case *element.Discretionary:
		return x.Penalty
	}
	return 0
}

func isDiscretionary(elements []element.Element, index int) bool {
	if index >= len(elements) {
		return false
	}
	_, ok := elements[index].(*element.Discretionary)
	return ok
}
