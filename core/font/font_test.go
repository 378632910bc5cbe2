package font

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core"
	"github.com/stretchr/testify/assert"
)

func TestFallbackFontMetrics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := FallbackFont()
	if !f.HasGlyph('A') {
		t.Fatal("fallback font should have glyph for 'A'")
	}
	sf := NewSizedFont(f, 11)
	m := sf.GlyphMetrics('A')
	if m.Width <= 0 || m.Height <= 0 {
		t.Errorf("unplausible metrics for 'A': %v", m)
	}
	if sf.SpaceWidth() <= 0 {
		t.Error("space width should be positive")
	}
	if sf.Kerning(0, 'A') != 0 {
		t.Error("kerning against code point 0 should be 0")
	}
}

func TestStringMetrics(t *testing.T) {
	sf := NewSizedFont(NewMonospace("mono"), 10)
	m := sf.StringMetrics("abc")
	g := sf.GlyphMetrics('a')
	assert.Equal(t, 3*g.Width, m.Width, "width should sum per glyph")
	assert.Equal(t, g.Height, m.Height, "height is the maximum glyph height")
	assert.Equal(t, g.Depth, m.Depth, "depth is the maximum glyph depth")
}

func TestMonospaceLigatures(t *testing.T) {
	f := NewMonospace("mono").WithLigatures()
	assert.Equal(t, "diﬃcult", f.Ligatures("difficult"))
	assert.Equal(t, "oﬀer", f.Ligatures("offer"))
}

func TestFailover(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	primary := NewMonospace("latin").WithoutGlyphs('א')
	fallback := NewMonospace("hebrew")
	f := Failover(primary, fallback)
	if !f.HasGlyph('א') {
		t.Error("failover should find glyph in fallback font")
	}
	if f.Name() != "latin" {
		t.Error("failover should carry the primary font's name")
	}
	assert.Equal(t, primary.SpaceWidth(10), f.SpaceWidth(10),
		"space width must come from the primary font")

	rec := &backend.Recorder{}
	err := f.Draw("aא", 10, 0, 0, rec)
	assert.NoError(t, err)

	both := Failover(primary.WithoutGlyphs('€'), fallback.WithoutGlyphs('€'))
	err = both.Draw("€", 10, 0, 0, rec)
	if assert.Error(t, err, "draw of an unsupported code point must fail") {
		assert.Equal(t, core.ERENDER, core.Code(err))
	}
}

func TestManagerCachesFonts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var loads int32
	mgr := NewManager(func(tv TypefaceVariant) (Font, error) {
		atomic.AddInt32(&loads, 1)
		return NewMonospace(tv.Typeface), nil
	})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := mgr.Get("Baskerville", Regular)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	f1, _ := mgr.Get("Baskerville", Regular)
	f2, _ := mgr.Get("Baskerville", Regular)
	if f1 != f2 {
		t.Error("manager should return the cached font instance")
	}
}

func TestManagerFailover(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mgr := NewManager(func(tv TypefaceVariant) (Font, error) {
		if tv.Typeface == "Nowhere" {
			return nil, core.Error(core.EMISSING, "no such typeface")
		}
		return NewMonospace(tv.Typeface), nil
	})
	mgr.SetFallbackTypeface("Go Regular")
	sf, err := mgr.GetSized("Baskerville", Italic, 11)
	assert.NoError(t, err)
	if _, ok := sf.Font().(*failoverFont); !ok {
		t.Error("sized font should be a failover composition")
	}
	_, err = mgr.GetSized("Nowhere", Regular, 11)
	assert.Error(t, err, "missing typeface should surface the loader error")
}

func TestPackStyles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mgr := NewManager(func(tv TypefaceVariant) (Font, error) {
		return NewMonospace(tv.Typeface + "/" + string(tv.Variant)), nil
	})
	pack, err := NewPack(mgr, "Baskerville", "Menlo", 11)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, pack.Regular, pack.ForStyle(StylePlain))
	assert.Equal(t, pack.BoldItalic, pack.ForStyle(StyleBold|StyleItalic))
	assert.Equal(t, pack.SmallCaps, pack.ForStyle(StyleSmallCaps|StyleBold))
	assert.Equal(t, pack.Code, pack.ForStyle(StyleCode))
}
