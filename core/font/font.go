/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".

* A "font" is a variant of a typeface with a certain weight, slant, etc.
An example is "Helvetica regular".

* A "sized font" is a font scaled to a certain point size. An example is
"Helvetica regular 11pt".

The engine measures and positions glyphs only; glyph outlines stay inside
the back-end. A Font therefore exposes metrics, pairwise kerning and
ligature substitution, plus a draw operation that forwards to a backend
sink.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core/dimen"
)

// tracer traces with key 'typeset.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.fonts")
}

// Metrics of a glyph or a string of glyphs: width along the baseline,
// height above and depth below it. Height and width are non-negative;
// depth is zero or positive.
type Metrics struct {
	Width  dimen.Dimen
	Height dimen.Dimen
	Depth  dimen.Dimen
}

// Font is a typeface variant, able to measure and draw glyphs at any
// point size. Implementations must be immutable after construction and
// safe for concurrent use.
type Font interface {
	// Name returns the font's name, as announced to back-ends.
	Name() string
	// HasGlyph tells whether the font can render a code point.
	HasGlyph(r rune) bool
	// SpaceWidth returns the width of the space character at a size.
	SpaceWidth(size float64) dimen.Dimen
	// GlyphMetrics returns the metrics of a single code point at a size.
	GlyphMetrics(r rune, size float64) Metrics
	// Kerning returns the pair kern between two code points, or 0 if the
	// font has none for this pair.
	Kerning(prev, curr rune, size float64) dimen.Dimen
	// Ligatures applies the font's ligature table to a string. It is a
	// pure function of its input.
	Ligatures(s string) string
	// Draw emits the string to a backend sink at baseline position (x,y).
	Draw(s string, size float64, x, y dimen.Dimen, sink backend.Sink) error
}

// --- Sized font ------------------------------------------------------------

// SizedFont is a font at a fixed point size. All typesetting operates on
// sized fonts.
type SizedFont struct {
	font Font
	size float64
}

// NewSizedFont wraps a font at a point size.
func NewSizedFont(f Font, size float64) *SizedFont {
	return &SizedFont{font: f, size: size}
}

// Font returns the underlying (unsized) font.
func (sf *SizedFont) Font() Font {
	return sf.font
}

// Size returns the point size.
func (sf *SizedFont) Size() float64 {
	return sf.size
}

// HasGlyph tells whether the font can render a code point.
func (sf *SizedFont) HasGlyph(r rune) bool {
	return sf.font.HasGlyph(r)
}

// SpaceWidth returns the width of the space character.
func (sf *SizedFont) SpaceWidth() dimen.Dimen {
	return sf.font.SpaceWidth(sf.size)
}

// GlyphMetrics returns the metrics of a single code point.
func (sf *SizedFont) GlyphMetrics(r rune) Metrics {
	return sf.font.GlyphMetrics(r, sf.size)
}

// StringMetrics returns the metrics of a string: the sum of the glyph
// widths and the maximum height and depth. Kerning is not included; kerns
// are inserted as explicit elements by the horizontal assembler.
func (sf *SizedFont) StringMetrics(s string) Metrics {
	var m Metrics
	for _, r := range s {
		g := sf.GlyphMetrics(r)
		m.Width += g.Width
		m.Height = dimen.Max(m.Height, g.Height)
		m.Depth = dimen.Max(m.Depth, g.Depth)
	}
	return m
}

// Kerning returns the pair kern between two code points. If either code
// point is 0, the kern is 0.
func (sf *SizedFont) Kerning(prev, curr rune) dimen.Dimen {
	if prev == 0 || curr == 0 {
		return 0
	}
	return sf.font.Kerning(prev, curr, sf.size)
}

// Ligatures applies the font's ligature table to a string.
func (sf *SizedFont) Ligatures(s string) string {
	return sf.font.Ligatures(s)
}

// Draw emits the string to a backend sink at baseline position (x,y).
func (sf *SizedFont) Draw(s string, x, y dimen.Dimen, sink backend.Sink) error {
	return sf.font.Draw(s, sf.size, x, y, sink)
}

func (sf *SizedFont) String() string {
	return sf.font.Name()
}
