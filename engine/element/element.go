/*
Package element implements the element model shared by horizontal and
vertical lists.

Everything that can appear in a list is an Element: boxes of text, glue,
kerns, penalties, discretionary breaks, rules, and zero-size bookmarks.
Horizontal lists arrange elements along a baseline and are broken into
lines; vertical lists stack lines and are broken into pages. Which
variants a list accepts is checked at runtime via InHorizontalList and
InVerticalList.

Elements are append-only during assembly. The breaker reads them and
materializes new boxes without mutating the originals.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package element

import (
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core/dimen"
)

// tracer traces with key 'typeset.element'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.element")
}

// Element is anything that can appear in a horizontal or vertical list.
//
// Widths and heights are non-negative; depth is zero or positive. Glue
// reports its natural size as width (horizontal glue) or via
// VerticalSize (vertical glue).
type Element interface {
	Width() dimen.Dimen
	Height() dimen.Dimen
	Depth() dimen.Dimen
	// LayOutHorizontally emits the element at baseline position (x,y) and
	// returns the width consumed.
	LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error)
	// LayOutVertically emits the element with its top edge at y and
	// returns the vertical size consumed.
	LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error)
}

// VerticalSize returns the size an element occupies in a vertical list.
func VerticalSize(e Element) dimen.Dimen {
	if g, ok := e.(*Glue); ok {
		return g.Size
	}
	if k, ok := e.(*Kern); ok {
		return k.Amount
	}
	return e.Height() + e.Depth()
}

// Discardable tells whether an element vanishes at a breakpoint: glue,
// penalties and implicit kerns after a break do not carry over to the
// next line or page.
func Discardable(e Element) bool {
	switch x := e.(type) {
	case *Glue, *Penalty:
		return true
	case *Kern:
		return !x.Explicit
	}
	return false
}

// InHorizontalList tells whether an element may be appended to a
// horizontal list.
func InHorizontalList(e Element) bool {
	switch e.(type) {
	case *VBox, *Columns, *Page:
		return false
	}
	return true
}

// InVerticalList tells whether an element may be appended to a vertical
// list.
func InVerticalList(e Element) bool {
	switch e.(type) {
	case *Text, *Discretionary, *Page:
		return false
	}
	return true
}

// box carries the intrinsic dimensions shared by all box-like elements.
type box struct {
	width  dimen.Dimen
	height dimen.Dimen
	depth  dimen.Dimen
}

func (b box) Width() dimen.Dimen  { return b.width }
func (b box) Height() dimen.Dimen { return b.height }
func (b box) Depth() dimen.Dimen  { return b.depth }

func (b box) dimenString() string {
	return fmt.Sprintf("(%s+%s)x%s", b.height, b.depth, b.width)
}

// Print writes a debugging representation of an element list.
func Print(w io.Writer, elements []Element, indent string) {
	for _, e := range elements {
		switch x := e.(type) {
		case *HBox:
			fmt.Fprintf(w, "%sHBox %s\n", indent, x.dimenString())
			Print(w, x.Elements(), indent+"  ")
		case *VBox:
			fmt.Fprintf(w, "%sVBox %s\n", indent, x.dimenString())
			Print(w, x.Elements(), indent+"  ")
		case *Columns:
			fmt.Fprintf(w, "%sColumns ×%d %s\n", indent, x.Layout.Count, x.dimenString())
			Print(w, x.Elements(), indent+"  ")
		case *Page:
			fmt.Fprintf(w, "%sPage %d\n", indent, x.PhysicalPageNumber)
			Print(w, x.Elements(), indent+"  ")
		case *Discretionary:
			fmt.Fprintf(w, "%s%v\n", indent, x)
			Print(w, x.NoBreak.Elements(), indent+"  ")
		default:
			fmt.Fprintf(w, "%s%v\n", indent, e)
		}
	}
}
