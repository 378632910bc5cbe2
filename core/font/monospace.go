package font

import (
	"math"
	"strings"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core/dimen"
)

// Monospace is a metrics-only font for tests and debugging output: every
// glyph is half an em wide, 0.7 em high and 0.2 em deep. Ligatures and
// kern pairs are configurable, so the horizontal assembler can be
// exercised without a real font file.
type Monospace struct {
	name     string
	ligtable *strings.Replacer
	kerns    map[[2]rune]float64 // in em
	missing  map[rune]bool
}

var _ Font = &Monospace{}

// NewMonospace creates a monospace font without ligatures or kerning.
func NewMonospace(name string) *Monospace {
	return &Monospace{
		name:     name,
		ligtable: strings.NewReplacer(),
		kerns:    make(map[[2]rune]float64),
		missing:  make(map[rune]bool),
	}
}

// WithLigatures enables the standard Latin f-ligature set.
func (f *Monospace) WithLigatures() *Monospace {
	pairs := make([]string, 0, 2*len(latinLigatures))
	for _, lig := range latinLigatures {
		pairs = append(pairs, lig.from, string(lig.to))
	}
	f.ligtable = strings.NewReplacer(pairs...)
	return f
}

// WithKernPair adds a kern pair, in fractions of an em.
func (f *Monospace) WithKernPair(a, b rune, em float64) *Monospace {
	f.kerns[[2]rune{a, b}] = em
	return f
}

// WithoutGlyphs marks code points as absent from the font.
func (f *Monospace) WithoutGlyphs(runes ...rune) *Monospace {
	for _, r := range runes {
		f.missing[r] = true
	}
	return f
}

func (f *Monospace) Name() string {
	return f.name
}

func (f *Monospace) HasGlyph(r rune) bool {
	return !f.missing[r]
}

func (f *Monospace) em(size float64, frac float64) dimen.Dimen {
	return dimen.Dimen(math.Round(size * frac * float64(dimen.PT)))
}

func (f *Monospace) SpaceWidth(size float64) dimen.Dimen {
	return f.em(size, 0.5)
}

func (f *Monospace) GlyphMetrics(r rune, size float64) Metrics {
	if f.missing[r] {
		return Metrics{}
	}
	return Metrics{
		Width:  f.em(size, 0.5),
		Height: f.em(size, 0.7),
		Depth:  f.em(size, 0.2),
	}
}

func (f *Monospace) Kerning(prev, curr rune, size float64) dimen.Dimen {
	if em, ok := f.kerns[[2]rune{prev, curr}]; ok {
		return f.em(size, em)
	}
	return 0
}

func (f *Monospace) Ligatures(s string) string {
	return f.ligtable.Replace(s)
}

func (f *Monospace) Draw(s string, size float64, x, y dimen.Dimen, sink backend.Sink) error {
	sink.SetFont(f.name, size)
	sink.Glyphs(s, x, y)
	return nil
}
