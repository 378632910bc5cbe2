package element

import (
	"fmt"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/core/font"
)

// Discretionary is an alternative typesetting at a potential break: the
// pre-break box is shown if the line is cut here, the post-break box at
// the start of the following line, and the no-break box if no cut
// happens. The canonical case is the hyphen, where pre-break is "-" and
// the other two boxes are empty; ligatures around a hyphenation point
// make all three differ.
//
// All three boxes are set in the same font. The no-break width need not
// equal the pre-break width.
type Discretionary struct {
	PreBreak  *HBox
	PostBreak *HBox
	NoBreak   *HBox
	Penalty   int
}

var _ Element = &Discretionary{}

// NewDiscretionary creates a discretionary break.
func NewDiscretionary(preBreak, postBreak, noBreak *HBox, penalty int) *Discretionary {
	return &Discretionary{
		PreBreak:  preBreak,
		PostBreak: postBreak,
		NoBreak:   noBreak,
		Penalty:   penalty,
	}
}

// NewHyphen creates the discretionary for a plain hyphenation point:
// preBreak is a hyphen (or empty, if the fragment before already ends
// with one), the other boxes are empty.
func NewHyphen(f *font.SizedFont, explicitHyphen bool) *Discretionary {
	pre := "-"
	if explicitHyphen {
		pre = ""
	}
	return NewDiscretionary(
		HBoxFromText(pre, f),
		HBoxFromText("", f),
		HBoxFromText("", f),
		HyphenPenalty)
}

// A discretionary measures as its no-break box unless it sits at a cut.
func (d *Discretionary) Width() dimen.Dimen  { return d.NoBreak.Width() }
func (d *Discretionary) Height() dimen.Dimen { return d.NoBreak.Height() }
func (d *Discretionary) Depth() dimen.Dimen  { return d.NoBreak.Depth() }

// Discretionaries never survive into output boxes; the breaker replaces
// them by one of their three boxes.
func (d *Discretionary) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	tracer().Errorf("discretionary %v survived into an output box", d)
	return 0, core.Error(core.EINTERNAL, "discretionary should have been replaced before layout")
}

func (d *Discretionary) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, core.Error(core.EINTERNAL, "discretionary cannot be laid out vertically")
}

func (d *Discretionary) String() string {
	return fmt.Sprintf("Discretionary(%q,%q,%q)",
		d.PreBreak.OnlyString(), d.PostBreak.OnlyString(), d.NoBreak.OnlyString())
}
