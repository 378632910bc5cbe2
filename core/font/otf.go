package font

import (
	"math"
	"os"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core"
	"github.com/npillmayer/typeset/core/dimen"
)

// otfFont is a Font backed by an OpenType/TrueType font file, measured
// through x/image/sfnt. Glyph outlines are not touched; back-ends receive
// the font by name.
type otfFont struct {
	name      string
	sfnt      *sfnt.Font
	ligatures *strings.Replacer

	mu  sync.Mutex // sfnt.Buffer is not safe for concurrent use
	buf sfnt.Buffer
}

var _ Font = &otfFont{}

// Standard Latin f-ligatures, longest first. Only the ones the font
// actually provides a glyph for are substituted.
var latinLigatures = []struct {
	from string
	to   rune
}{
	{"ffi", 'ﬃ'},
	{"ffl", 'ﬄ'},
	{"ff", 'ﬀ'},
	{"fi", 'ﬁ'},
	{"fl", 'ﬂ'},
}

// LoadOpenTypeFont reads and parses an OpenType font file.
func LoadOpenTypeFont(fontfile string) (Font, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont parses binary OpenType font data.
func ParseOpenTypeFont(fbytes []byte) (Font, error) {
	sf, err := sfnt.Parse(fbytes)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "broken font data")
	}
	f := &otfFont{sfnt: sf}
	f.name, _ = sf.Name(&f.buf, sfnt.NameIDFull)
	f.ligatures = f.buildLigatures()
	tracer().Debugf("parsed font %s", f.name)
	return f, nil
}

func (f *otfFont) buildLigatures() *strings.Replacer {
	pairs := make([]string, 0, 2*len(latinLigatures))
	for _, lig := range latinLigatures {
		if f.HasGlyph(lig.to) {
			pairs = append(pairs, lig.from, string(lig.to))
		}
	}
	return strings.NewReplacer(pairs...)
}

func (f *otfFont) Name() string {
	return f.name
}

func (f *otfFont) glyphIndex(r rune) sfnt.GlyphIndex {
	f.mu.Lock()
	defer f.mu.Unlock()
	gi, err := f.sfnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return gi
}

func (f *otfFont) HasGlyph(r rune) bool {
	return f.glyphIndex(r) != 0
}

// ppem returns the pixels-per-em for a point size, at one pixel per
// point; 26.6 font units then map to scaled points by a shift of 10.
func ppem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

func toSp(v fixed.Int26_6) dimen.Dimen {
	return dimen.Dimen(v) << 10
}

func (f *otfFont) SpaceWidth(size float64) dimen.Dimen {
	return f.GlyphMetrics(' ', size).Width
}

func (f *otfFont) GlyphMetrics(r rune, size float64) Metrics {
	gi := f.glyphIndex(r)
	if gi == 0 {
		return Metrics{}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	bounds, adv, err := f.sfnt.GlyphBounds(&f.buf, gi, ppem(size), xfont.HintingNone)
	if err != nil {
		tracer().Errorf("font %s cannot measure U+%04x: %v", f.name, r, err)
		return Metrics{}
	}
	m := Metrics{Width: toSp(adv)}
	// Bounds are y-down: Min.Y reaches above the baseline.
	if bounds.Min.Y < 0 {
		m.Height = toSp(-bounds.Min.Y)
	}
	if bounds.Max.Y > 0 {
		m.Depth = toSp(bounds.Max.Y)
	}
	return m
}

func (f *otfFont) Kerning(prev, curr rune, size float64) dimen.Dimen {
	g0 := f.glyphIndex(prev)
	g1 := f.glyphIndex(curr)
	if g0 == 0 || g1 == 0 {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kern, err := f.sfnt.Kern(&f.buf, g0, g1, ppem(size), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return toSp(kern)
}

func (f *otfFont) Ligatures(s string) string {
	return f.ligatures.Replace(s)
}

func (f *otfFont) Draw(s string, size float64, x, y dimen.Dimen, sink backend.Sink) error {
	sink.SetFont(f.name, size)
	sink.Glyphs(s, x, y)
	return nil
}

// --- Fallback font ---------------------------------------------------------

var fallbackFontLoading sync.Once
var fallbackFont Font

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Regular.
func FallbackFont() Font {
	fallbackFontLoading.Do(func() {
		f, err := ParseOpenTypeFont(goregular.TTF)
		if err != nil {
			panic("cannot load built-in fallback font") // this cannot happen
		}
		fallbackFont = f
	})
	return fallbackFont
}
