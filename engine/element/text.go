package element

import (
	"fmt"

	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/core/font"
)

// Text is a box holding a run of characters in a single sized font.
type Text struct {
	box
	font *font.SizedFont
	text string
}

var _ Element = &Text{}

// NewText creates a text box, with dimensions cached from the font's
// string metrics.
func NewText(text string, f *font.SizedFont) *Text {
	m := f.StringMetrics(text)
	return &Text{
		box:  box{width: m.Width, height: m.Height, depth: m.Depth},
		font: f,
		text: text,
	}
}

// NewTextRune creates a text box for a single code point.
func NewTextRune(r rune, f *font.SizedFont) *Text {
	m := f.GlyphMetrics(r)
	return &Text{
		box:  box{width: m.Width, height: m.Height, depth: m.Depth},
		font: f,
		text: string(r),
	}
}

// Text returns the characters this element was constructed with.
func (t *Text) Text() string {
	return t.text
}

// Font returns the sized font the text is set in.
func (t *Text) Font() *font.SizedFont {
	return t.font
}

// IsCompatibleWith tells whether this text can be appended to the other
// text: same font, same size.
func (t *Text) IsCompatibleWith(other *Text) bool {
	return t.font.Font() == other.font.Font() && t.font.Size() == other.font.Size()
}

// AppendedWith returns a new Text whose content is the concatenation of
// this text and the other text.
func (t *Text) AppendedWith(other *Text) (*Text, error) {
	if !t.IsCompatibleWith(other) {
		return nil, core.Error(core.EINTERNAL, "incompatible text, cannot append")
	}
	return NewText(t.text+other.text, t.font), nil
}

// BreakUpInto appends one single-rune Text per code point to list and
// returns the extended list.
func (t *Text) BreakUpInto(list []Element) []Element {
	for _, r := range t.text {
		list = append(list, NewTextRune(r, t.font))
	}
	return list
}

// Direction is the writing direction of a code point, per the Unicode
// bidi classes.
type Direction int8

// The directions the reordering pass distinguishes.
const (
	LeftToRight Direction = iota
	Neutral
	RightToLeft
)

// DirectionOf returns the writing direction of a single code point.
// Strong RTL classes (R, AL) and the RTL embedding/override controls
// count as right-to-left; strong LTR and its controls as left-to-right;
// everything else is neutral.
func DirectionOf(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L, bidi.LRE, bidi.LRO:
		return LeftToRight
	case bidi.R, bidi.AL, bidi.RLE, bidi.RLO:
		return RightToLeft
	}
	return Neutral
}

// ContainsRightToLeft tells whether any code point of the text is
// right-to-left.
func (t *Text) ContainsRightToLeft() bool {
	for _, r := range t.text {
		if DirectionOf(r) == RightToLeft {
			return true
		}
	}
	return false
}

// Direction returns the direction of the text, which must be uniform:
// mixed-direction texts are an error with code EINTERNAL.
func (t *Text) Direction() (Direction, error) {
	dir := Neutral
	first := true
	for _, r := range t.text {
		d := DirectionOf(r)
		if first {
			dir = d
			first = false
		} else if d != dir {
			return Neutral, core.Error(core.EINTERNAL, "inconsistent direction in text %q", t.text)
		}
	}
	return dir, nil
}

func (t *Text) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	if err := t.font.Draw(t.text, x, y, sink); err != nil {
		return 0, err
	}
	return t.Width(), nil
}

func (t *Text) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	// Text must always be wrapped in an HBox.
	return 0, core.Error(core.EINTERNAL, "text cannot be laid out vertically")
}

func (t *Text) String() string {
	return fmt.Sprintf("Text %s: “%s” in %v", t.dimenString(), t.text, t.font)
}
