package element

import (
	"fmt"
	"strings"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/core/font"
)

// HBox arranges child elements horizontally along a common baseline. A
// line of a paragraph is an HBox; discretionary parts are HBoxes too.
type HBox struct {
	box
	elements []Element
	// Shift moves the box's baseline down when placed in a vertical list.
	Shift dimen.Dimen
}

var _ Element = &HBox{}

// NewHBox wraps elements in a horizontal box with the given baseline
// shift. The box's width is the sum of the children's natural widths;
// height and depth are the maxima, adjusted by the shift.
func NewHBox(elements []Element, shift dimen.Dimen) *HBox {
	h := &HBox{elements: elements, Shift: shift}
	for _, e := range elements {
		h.width += e.Width()
		h.height = dimen.Max(h.height, e.Height()-shift)
		h.depth = dimen.Max(h.depth, e.Depth()+shift)
	}
	return h
}

// HBoxFromText wraps a single string in a horizontal box. An empty
// string produces an empty box.
func HBoxFromText(text string, f *font.SizedFont) *HBox {
	if text == "" {
		return NewHBox(nil, 0)
	}
	return NewHBox([]Element{NewText(text, f)}, 0)
}

// Elements returns the children of the box.
func (h *HBox) Elements() []Element {
	return h.elements
}

// OnlyString returns the concatenated text content of the box. Used by
// the ligature pass, which stores plain strings in discretionary parts.
func (h *HBox) OnlyString() string {
	var sb strings.Builder
	for _, e := range h.elements {
		if t, ok := e.(*Text); ok {
			sb.WriteString(t.Text())
		}
	}
	return sb.String()
}

func (h *HBox) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	baseline := y + h.Shift
	advance := dimen.Zero
	for _, e := range h.elements {
		w, err := e.LayOutHorizontally(x+advance, baseline, sink)
		if err != nil {
			return advance, err
		}
		advance += w
	}
	return h.Width(), nil
}

func (h *HBox) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	baseline := y + h.Height() + h.Shift
	advance := dimen.Zero
	for _, e := range h.elements {
		w, err := e.LayOutHorizontally(x+advance, baseline, sink)
		if err != nil {
			return 0, err
		}
		advance += w
	}
	return VerticalSize(h), nil
}

func (h *HBox) String() string {
	return fmt.Sprintf("HBox %s (%d elements)", h.dimenString(), len(h.elements))
}

// ---------------------------------------------------------------------------

// VBox stacks child elements vertically.
type VBox struct {
	box
	elements []Element
}

var _ Element = &VBox{}

// NewVBox wraps elements in a vertical box. The box's vertical size is
// the sum of the children's vertical sizes; its width is the maximum
// width. The whole vertical extent counts as height, with zero depth.
func NewVBox(elements []Element) *VBox {
	v := &VBox{elements: elements}
	for _, e := range elements {
		v.height += VerticalSize(e)
		v.width = dimen.Max(v.width, e.Width())
	}
	return v
}

// Elements returns the children of the box.
func (v *VBox) Elements() []Element {
	return v.elements
}

func (v *VBox) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	// The box's reference point sits on the baseline; children stack from
	// the top edge.
	top := y - v.Height()
	advance := dimen.Zero
	for _, e := range v.elements {
		h, err := e.LayOutVertically(x, top+advance, sink)
		if err != nil {
			return 0, err
		}
		advance += h
	}
	return v.Width(), nil
}

func (v *VBox) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	advance := dimen.Zero
	for _, e := range v.elements {
		h, err := e.LayOutVertically(x, y+advance, sink)
		if err != nil {
			return 0, err
		}
		advance += h
	}
	return VerticalSize(v), nil
}

func (v *VBox) String() string {
	return fmt.Sprintf("VBox %s (%d elements)", v.dimenString(), len(v.elements))
}

// ---------------------------------------------------------------------------

// Rule is a solid rectangle, like TeX's \hrule and \vrule. A rule of
// zero width acts as a strut.
type Rule struct {
	box
}

var _ Element = &Rule{}

// NewRule creates a rule with the given dimensions.
func NewRule(width, height, depth dimen.Dimen) *Rule {
	return &Rule{box: box{width: width, height: height, depth: depth}}
}

func (r *Rule) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	sink.Rule(x, y+r.Depth(), r.Width(), r.Height()+r.Depth())
	return r.Width(), nil
}

func (r *Rule) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	sink.Rule(x, y+r.Height()+r.Depth(), r.Width(), r.Height()+r.Depth())
	return VerticalSize(r), nil
}

func (r *Rule) String() string {
	return fmt.Sprintf("Rule %s", r.dimenString())
}

// ---------------------------------------------------------------------------

// Image is a whole-page figure. Images ride along in the vertical list
// and occupy one page each; the page breaker advances the page counter
// for them without flowing text around them.
type Image struct {
	box
	Path string
}

var _ Element = &Image{}

// NewImage creates a whole-page image element.
func NewImage(path string, width, height dimen.Dimen) *Image {
	return &Image{box: box{width: width, height: height}, Path: path}
}

func (img *Image) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	// Images are placeholders for the back-end; the engine draws a frame.
	sink.Rule(x, y, img.Width(), img.Height())
	return img.Width(), nil
}

func (img *Image) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	sink.Rule(x, y+img.Height(), img.Width(), img.Height())
	return VerticalSize(img), nil
}

func (img *Image) String() string {
	return fmt.Sprintf("Image %s %s", img.Path, img.dimenString())
}

// ---------------------------------------------------------------------------

// Footnote carries a typeset footnote block along in the horizontal
// list. It has no size of its own and lays out nothing. The vertical list
// and the page breaker do not move footnotes to the bottom of the page;
// the block only rides along, where Page.Visit reaches its content.
type Footnote struct {
	Content         *VBox
	FirstLineHeight dimen.Dimen
}

var _ Element = &Footnote{}

// NewFootnote wraps a typeset footnote body.
func NewFootnote(content *VBox, firstLineHeight dimen.Dimen) *Footnote {
	return &Footnote{Content: content, FirstLineHeight: firstLineHeight}
}

func (f *Footnote) Width() dimen.Dimen  { return 0 }
func (f *Footnote) Height() dimen.Dimen { return 0 }
func (f *Footnote) Depth() dimen.Dimen  { return 0 }

func (f *Footnote) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, nil
}

func (f *Footnote) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, nil
}

func (f *Footnote) String() string {
	return fmt.Sprintf("Footnote %v", f.Content)
}

// ---------------------------------------------------------------------------

// Page is the root output box: the elements of one physical page.
type Page struct {
	vbox *VBox
	// PhysicalPageNumber counts output pages, 1-based.
	PhysicalPageNumber int
	// Shift moves the page content down, e.g. for pages whose first
	// element is not a line.
	Shift dimen.Dimen
}

// NewPage creates a page from the elements the breaker selected for it.
func NewPage(elements []Element, physicalPageNumber int, shift dimen.Dimen) *Page {
	return &Page{
		vbox:               NewVBox(elements),
		PhysicalPageNumber: physicalPageNumber,
		Shift:              shift,
	}
}

// Elements returns the page's children.
func (p *Page) Elements() []Element {
	return p.vbox.Elements()
}

func (p *Page) Width() dimen.Dimen  { return p.vbox.Width() }
func (p *Page) Height() dimen.Dimen { return p.vbox.Height() }
func (p *Page) Depth() dimen.Dimen  { return p.vbox.Depth() }

// Visit calls the visitor for every element on the page, recursing into
// boxes. Bookmark collection after pagination walks pages this way.
func (p *Page) Visit(visit func(Element)) {
	visitAll(p.Elements(), visit)
}

func visitAll(elements []Element, visit func(Element)) {
	for _, e := range elements {
		visit(e)
		switch x := e.(type) {
		case *HBox:
			visitAll(x.Elements(), visit)
		case *VBox:
			visitAll(x.Elements(), visit)
		case *Columns:
			visitAll(x.Elements(), visit)
		case *Footnote:
			visitAll(x.Content.Elements(), visit)
		}
	}
}

// LayOut emits the whole page to a backend sink, with the text area's
// top left corner at (x,y).
func (p *Page) LayOut(x, y dimen.Dimen, sink backend.Sink) error {
	_, err := p.vbox.LayOutVertically(x, y+p.Shift, sink)
	return err
}

func (p *Page) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, nil // pages are roots; they are never nested
}

func (p *Page) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, nil
}

func (p *Page) String() string {
	return fmt.Sprintf("Page %d (%d elements)", p.PhysicalPageNumber, len(p.Elements()))
}
