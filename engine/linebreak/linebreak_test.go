package linebreak

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/engine/element"
	"github.com/stretchr/testify/assert"
)

// testAxis is a minimal horizontal axis over raw elements.
type testAxis struct {
	elements []element.Element
}

func (a *testAxis) Elements() []element.Element { return a.elements }

func (a *testAxis) Measure(e element.Element) dimen.Dimen { return e.Width() }

func (a *testAxis) ElementSublist(begin, end *Breakpoint) []element.Element {
	var sub []element.Element
	for i := begin.StartIndex(); i < end.Index() && i < len(a.elements); i++ {
		sub = append(sub, a.elements[i])
	}
	return sub
}

func (a *testAxis) MakeOutputBox(elements []element.Element, counter int, shift dimen.Dimen) element.Element {
	return element.NewHBox(elements, shift)
}

func (a *testAxis) ExtraIncrement(chunk *Chunk) int { return 0 }

// words builds the E7-style input: n boxes of boxWidth, separated by
// glue, terminated like a paragraph.
func words(n int, boxWidth, spaceSize, stretch, shrink dimen.Dimen) []element.Element {
	var elements []element.Element
	for i := 0; i < n; i++ {
		if i > 0 {
			elements = append(elements, element.NewGlue(spaceSize, stretch, shrink, true))
		}
		elements = append(elements, element.NewRule(boxWidth, dimen.PT, 0))
	}
	elements = append(elements, element.NewPenalty(element.InfinitePenalty))
	elements = append(elements, element.NewInfiniteGlue(true))
	elements = append(elements, element.NewPenalty(-element.InfinitePenalty))
	return elements
}

func TestBreakSimple(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	axis := &testAxis{elements: words(20, 10*dimen.PT, 2*dimen.PT, dimen.PT, 0)}
	boxes, err := NewBreaker().BreakList(axis, 100*dimen.PT, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(boxes) < 2 {
		t.Fatalf("20 words of 10pt cannot fit one 100pt line, got %d lines", len(boxes))
	}
	// Glue has been fixed: every line must hit the target exactly.
	for i, b := range boxes {
		hbox := b.(*element.HBox)
		if hbox.Width() != 100*dimen.PT {
			t.Errorf("line %d has width %s, want %s", i+1, hbox.Width(), 100*dimen.PT)
		}
	}
}

func TestBreakUnderfull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// A single small box with no stretch at all: underfull but breakable
	// at the forced end.
	axis := &testAxis{elements: []element.Element{element.NewRule(10*dimen.PT, dimen.PT, 0)}}
	boxes, err := NewBreaker().BreakList(axis, 100*dimen.PT, 1)
	assert.NoError(t, err)
	assert.Len(t, boxes, 1)
}

func TestForcedBreak(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	elements := []element.Element{
		element.NewRule(10*dimen.PT, dimen.PT, 0),
		element.NewInfiniteGlue(true),
		element.NewPenalty(-element.InfinitePenalty),
		element.NewRule(10*dimen.PT, dimen.PT, 0),
		element.NewInfiniteGlue(true),
		element.NewPenalty(-element.InfinitePenalty),
	}
	axis := &testAxis{elements: elements}
	boxes, err := NewBreaker().BreakList(axis, 100*dimen.PT, 1)
	assert.NoError(t, err)
	assert.Len(t, boxes, 2, "forced penalties must end their boxes")
}

func TestDiscardablesAfterBreak(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	elements := []element.Element{
		element.NewRule(90*dimen.PT, dimen.PT, 0),
		element.NewGlue(5*dimen.PT, 2*dimen.PT, dimen.PT, true),
		element.NewPenalty(0),
		element.NewGlue(5*dimen.PT, 2*dimen.PT, dimen.PT, true),
		element.NewRule(90*dimen.PT, dimen.PT, 0),
		element.NewInfiniteGlue(true),
		element.NewPenalty(-element.InfinitePenalty),
	}
	axis := &testAxis{elements: elements}
	boxes, err := NewBreaker().BreakList(axis, 100*dimen.PT, 1)
	assert.NoError(t, err)
	if assert.Len(t, boxes, 2) {
		second := boxes[1].(*element.HBox)
		if _, ok := second.Elements()[0].(*element.Glue); ok {
			t.Error("glue after the break should have been discarded")
		}
	}
}

func TestEvenPageOnlyPenalty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	elements := []element.Element{
		element.NewRule(50*dimen.PT, dimen.PT, 0),
		element.NewInfiniteGlue(true),
		element.NewPenalty(0),
		element.NewInfiniteGlue(true),
		&element.Penalty{Cost: -element.InfinitePenalty, EvenPageOnly: true},
		element.NewRule(50*dimen.PT, dimen.PT, 0),
		element.NewInfiniteGlue(true),
		element.NewPenalty(-element.InfinitePenalty),
	}

	// Starting on an even page, the even-only forced penalty must break.
	axis := &testAxis{elements: elements}
	boxes, err := NewBreaker().BreakList(axis, 100*dimen.PT, 2)
	assert.NoError(t, err)
	assert.Len(t, boxes, 2, "even page: the even-only forced penalty breaks")

	// Starting on an odd page, the penalty is invisible and the neutral
	// penalty is not worth taking.
	boxes, err = NewBreaker().BreakList(axis, 100*dimen.PT, 1)
	assert.NoError(t, err)
	assert.Len(t, boxes, 1, "odd page: content continues on the same page")
}

// pathDemerits evaluates the total demerits of a given break sequence,
// the way the dynamic program scores it.
func pathDemerits(t *testing.T, br *Breaker, axis Axis, target dimen.Dimen, path []*Breakpoint) int64 {
	t.Helper()
	elements := axis.Elements()
	begin := &Breakpoint{index: -1, startIndex: 0}
	var total int64
	flagged := false
	for _, bp := range path {
		chunk := newChunk(axis.ElementSublist(begin, bp), axis)
		r, infinite := chunk.ratio(target)
		d := br.demerits(badness(r, infinite), breakCost(elements, bp.Index()))
		if flagged && isDiscretionary(elements, bp.Index()) {
			d += br.DoubleHyphenDemerits
		}
		flagged = isDiscretionary(elements, bp.Index())
		total += d
		begin = bp
	}
	return total
}

// greedyPath packs boxes first-fit: break at the last breakpoint that
// still fits, counting its shrinkability.
func greedyPath(axis Axis, target dimen.Dimen) []*Breakpoint {
	elements := axis.Elements()
	breakpoints := findBreakpoints(elements)
	var path []*Breakpoint
	begin := &Breakpoint{index: -1, startIndex: 0}
	for i := 0; i < len(breakpoints); {
		// Find the furthest breakpoint still fitting.
		best := -1
		for j := i; j < len(breakpoints); j++ {
			chunk := newChunk(axis.ElementSublist(begin, breakpoints[j]), axis)
			if chunk.size-chunk.shrink <= target || best < 0 {
				best = j
			} else {
				break
			}
		}
		path = append(path, breakpoints[best])
		begin = breakpoints[best]
		i = best + 1
	}
	return path
}

func TestOptimalBeatsGreedy(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	axis := &testAxis{elements: words(20, 10*dimen.PT, 2*dimen.PT, dimen.PT, 0)}
	target := 100 * dimen.PT
	br := NewBreaker()

	optimal, err := br.solve(axis, target, 1)
	if err != nil {
		t.Fatal(err)
	}
	greedy := greedyPath(axis, target)

	do := pathDemerits(t, br, axis, target, optimal)
	dg := pathDemerits(t, br, axis, target, greedy)
	t.Logf("optimal demerits = %d, greedy demerits = %d", do, dg)
	if do > dg {
		t.Errorf("optimal-fit demerits %d exceed greedy packing's %d", do, dg)
	}
}

func TestChunkRatio(t *testing.T) {
	axis := &testAxis{}
	chunk := newChunk([]element.Element{
		element.NewRule(90*dimen.PT, dimen.PT, 0),
		element.NewGlue(5*dimen.PT, 2*dimen.PT, dimen.PT, true),
	}, axis)
	r, infinite := chunk.ratio(97 * dimen.PT)
	assert.False(t, infinite)
	assert.InDelta(t, 1.0, r, 1e-9, "2pt slack over 2pt stretch")
	r, _ = chunk.ratio(94 * dimen.PT)
	assert.InDelta(t, -1.0, r, 1e-9, "1pt overrun over 1pt shrink")
	r, _ = chunk.ratio(90 * dimen.PT)
	assert.Less(t, r, -1.0, "beyond shrinkability")
}

func TestBadness(t *testing.T) {
	assert.Equal(t, 0, badness(0, false))
	assert.Equal(t, 100, badness(1, false))
	assert.Equal(t, 100, badness(-1, false))
	assert.Equal(t, maxBadness, badness(100, false))
	assert.Equal(t, infeasibleBadness, badness(-2, false))
	assert.Equal(t, 0, badness(5, true), "infinite glue absorbs slack perfectly")
}
