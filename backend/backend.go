/*
Package backend defines the contract between the typesetting engine and
a rasterizing back-end.

The engine produces pages of positioned elements; laying a page out means
walking its elements and emitting primitive drawing operations to a Sink.
A PDF writer is one such sink and lives outside this module.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package backend

import (
	"fmt"
	"strings"

	"github.com/npillmayer/typeset/core/dimen"
)

// Sink receives primitive drawing operations for one page.
//
// Coordinates are in scaled points with the origin at the top left corner
// of the page; y grows downwards. Glyph positions denote the baseline
// start point.
type Sink interface {
	// SetFont announces the font for subsequent Glyphs calls.
	SetFont(name string, size float64)
	// Glyphs draws a string of glyphs with the current font, starting at
	// baseline position (x,y).
	Glyphs(s string, x, y dimen.Dimen)
	// Rule fills a solid rectangle of width w and height h whose bottom
	// edge sits at baseline position (x,y).
	Rule(x, y, w, h dimen.Dimen)
}

// Recorder is a Sink that records operations for tests and debugging
// output.
type Recorder struct {
	Ops []string
}

var _ Sink = &Recorder{}

func (rec *Recorder) SetFont(name string, size float64) {
	rec.Ops = append(rec.Ops, fmt.Sprintf("font %s@%.2f", name, size))
}

func (rec *Recorder) Glyphs(s string, x, y dimen.Dimen) {
	rec.Ops = append(rec.Ops, fmt.Sprintf("glyphs %q (%s,%s)", s, x, y))
}

func (rec *Recorder) Rule(x, y, w, h dimen.Dimen) {
	rec.Ops = append(rec.Ops, fmt.Sprintf("rule (%s,%s) %sx%s", x, y, w, h))
}

func (rec *Recorder) String() string {
	return strings.Join(rec.Ops, "\n")
}
