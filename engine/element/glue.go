package element

import (
	"fmt"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core/dimen"
)

// Glue is elastic spacing with a natural size, stretchability and
// shrinkability. Infinite stretch or shrink dominates all finite amounts
// in the same list.
type Glue struct {
	Size         dimen.Dimen
	Stretch      dimen.Dimen
	StretchIsInf bool
	Shrink       dimen.Dimen
	ShrinkIsInf  bool
	IsHorizontal bool
}

var _ Element = &Glue{}

// NewGlue creates a finite glue.
func NewGlue(size, stretch, shrink dimen.Dimen, horizontal bool) *Glue {
	return &Glue{Size: size, Stretch: stretch, Shrink: shrink, IsHorizontal: horizontal}
}

// NewInfiniteGlue creates a glue with infinite stretchability, used to
// fill out the last line of a paragraph or the bottom of a page.
func NewInfiniteGlue(horizontal bool) *Glue {
	return &Glue{Size: 0, Stretch: dimen.PT, StretchIsInf: true, IsHorizontal: horizontal}
}

func (g *Glue) Width() dimen.Dimen {
	if g.IsHorizontal {
		return g.Size
	}
	return 0
}

func (g *Glue) Height() dimen.Dimen { return 0 }
func (g *Glue) Depth() dimen.Dimen  { return 0 }

func (g *Glue) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return g.Size, nil
}

func (g *Glue) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return g.Size, nil
}

func (g *Glue) String() string {
	stretch := g.Stretch.String()
	if g.StretchIsInf {
		stretch = "inf"
	}
	shrink := g.Shrink.String()
	if g.ShrinkIsInf {
		shrink = "inf"
	}
	return fmt.Sprintf("Glue %s plus %s minus %s", g.Size, stretch, shrink)
}

// FixedGlue returns a copy of the glue set to a fixed size, with no
// elasticity left. The breaker materializes selected glue settings this
// way when producing output boxes.
func (g *Glue) FixedGlue(size dimen.Dimen) *Glue {
	return &Glue{Size: size, IsHorizontal: g.IsHorizontal}
}

// ---------------------------------------------------------------------------

// Kern is a rigid offset between elements. Kerns are never breakpoints;
// an implicit kern is discarded after a break, an explicit one is kept.
type Kern struct {
	Amount   dimen.Dimen
	Explicit bool
}

var _ Element = &Kern{}

// NewKern creates a kern element.
func NewKern(amount dimen.Dimen, explicit bool) *Kern {
	return &Kern{Amount: amount, Explicit: explicit}
}

func (k *Kern) Width() dimen.Dimen  { return k.Amount }
func (k *Kern) Height() dimen.Dimen { return 0 }
func (k *Kern) Depth() dimen.Dimen  { return 0 }

func (k *Kern) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return k.Amount, nil
}

func (k *Kern) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return k.Amount, nil
}

func (k *Kern) String() string {
	return fmt.Sprintf("Kern %s", k.Amount)
}

// ---------------------------------------------------------------------------

// InfinitePenalty forbids a break; its negation forces one.
const InfinitePenalty = 10000

// HyphenPenalty is the default cost of breaking at a discretionary
// hyphen.
const HyphenPenalty = 50

// Penalty is a breakpoint with a cost. Costs at or beyond ±InfinitePenalty
// act as "never break" and "always break".
type Penalty struct {
	Cost int
	// EvenPageOnly restricts the penalty to even pages; used to force
	// content onto odd pages.
	EvenPageOnly bool
}

var _ Element = &Penalty{}

// NewPenalty creates a penalty element.
func NewPenalty(cost int) *Penalty {
	return &Penalty{Cost: cost}
}

func (p *Penalty) Width() dimen.Dimen  { return 0 }
func (p *Penalty) Height() dimen.Dimen { return 0 }
func (p *Penalty) Depth() dimen.Dimen  { return 0 }

// IsForcedBreak tells whether the penalty forces a break.
func (p *Penalty) IsForcedBreak() bool {
	return p.Cost <= -InfinitePenalty
}

func (p *Penalty) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, nil
}

func (p *Penalty) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, nil
}

func (p *Penalty) String() string {
	even := ""
	if p.EvenPageOnly {
		even = " (even pages)"
	}
	return fmt.Sprintf("Penalty %d%s", p.Cost, even)
}
