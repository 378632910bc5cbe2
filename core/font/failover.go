package font

import (
	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core"
	"github.com/npillmayer/typeset/core/dimen"
)

// failoverFont composes a primary font with a fallback font. All
// operations forward to the primary font, except for code points the
// primary font cannot render, which are forwarded to the fallback. This
// is useful for scripts like Hebrew that the preferred book font may not
// cover.
type failoverFont struct {
	primary  Font
	fallback Font
}

// Failover composes a primary and a fallback font. The space width and
// ligature table always come from the primary font.
func Failover(primary, fallback Font) Font {
	return &failoverFont{primary: primary, fallback: fallback}
}

var _ Font = &failoverFont{}

func (f *failoverFont) Name() string {
	return f.primary.Name()
}

func (f *failoverFont) HasGlyph(r rune) bool {
	return f.primary.HasGlyph(r) || f.fallback.HasGlyph(r)
}

func (f *failoverFont) SpaceWidth(size float64) dimen.Dimen {
	return f.primary.SpaceWidth(size)
}

func (f *failoverFont) GlyphMetrics(r rune, size float64) Metrics {
	if f.primary.HasGlyph(r) {
		return f.primary.GlyphMetrics(r, size)
	}
	return f.fallback.GlyphMetrics(r, size)
}

func (f *failoverFont) Kerning(prev, curr rune, size float64) dimen.Dimen {
	if f.primary.HasGlyph(prev) && f.primary.HasGlyph(curr) {
		return f.primary.Kerning(prev, curr, size)
	}
	if f.fallback.HasGlyph(prev) && f.fallback.HasGlyph(curr) {
		return f.fallback.Kerning(prev, curr, size)
	}
	return 0
}

func (f *failoverFont) Ligatures(s string) string {
	return f.primary.Ligatures(s)
}

// Draw draws one code point at a time, dispatching each to whichever
// constituent font can render it.
func (f *failoverFont) Draw(s string, size float64, x, y dimen.Dimen, sink backend.Sink) error {
	for _, r := range s {
		var from Font
		switch {
		case f.primary.HasGlyph(r):
			from = f.primary
		case f.fallback.HasGlyph(r):
			from = f.fallback
		default:
			return core.Error(core.ERENDER,
				"neither primary nor fallback font can handle %c (U+%04x)", r, r)
		}
		if err := from.Draw(string(r), size, x, y, sink); err != nil {
			return err
		}
		x += from.GlyphMetrics(r, size).Width
	}
	return nil
}
