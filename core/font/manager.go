package font

import (
	"sync"
)

// Variant is a style variant of a typeface.
type Variant string

// The variants a font pack distinguishes.
const (
	Regular    Variant = "regular"
	Bold       Variant = "bold"
	Italic     Variant = "italic"
	BoldItalic Variant = "bold-italic"
	SmallCaps  Variant = "small-caps"
	Code       Variant = "code"
)

// TypefaceVariant names a font: a typeface plus a style variant.
type TypefaceVariant struct {
	Typeface string
	Variant  Variant
}

// Loader turns a typeface/variant pair into a font, typically by locating
// and parsing a font file. Loading may fail with an error of code
// EMISSING. Loaders are called lazily on first request for a font.
type Loader func(tv TypefaceVariant) (Font, error)

// Manager loads and caches fonts. The cache is safe for concurrent
// readers and writers; on a racing first request the loader may be
// invoked more than once for a key, with deterministic results required.
type Manager struct {
	mu               sync.Mutex
	loader           Loader
	fonts            map[TypefaceVariant]Font
	fallbackTypeface string
}

// NewManager creates a font manager drawing fonts from the given loader.
func NewManager(loader Loader) *Manager {
	return &Manager{
		loader: loader,
		fonts:  make(map[TypefaceVariant]Font),
	}
}

// SetFallbackTypeface configures a typeface to fail over to for code
// points the requested font does not cover. Sized fonts returned by
// GetSized will be failover compositions.
func (m *Manager) SetFallbackTypeface(typeface string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbackTypeface = typeface
}

// Get fetches a font, loading it on first request.
func (m *Manager) Get(typeface string, variant Variant) (Font, error) {
	tv := TypefaceVariant{Typeface: typeface, Variant: variant}
	m.mu.Lock()
	f, ok := m.fonts[tv]
	m.mu.Unlock()
	if ok {
		return f, nil
	}
	tracer().Debugf("font manager loads %s/%s", typeface, variant)
	f, err := m.loader(tv)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	if cached, ok := m.fonts[tv]; ok {
		f = cached // a concurrent load won; keep the first result
	} else {
		m.fonts[tv] = f
	}
	m.mu.Unlock()
	return f, nil
}

// GetSized fetches a font at a point size. If a fallback typeface is
// configured, the returned sized font is a failover composition of the
// requested font and the fallback at the same size.
func (m *Manager) GetSized(typeface string, variant Variant, size float64) (*SizedFont, error) {
	f, err := m.Get(typeface, variant)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	fallback := m.fallbackTypeface
	m.mu.Unlock()
	if fallback != "" && fallback != typeface {
		fb, err := m.Get(fallback, variant)
		if err != nil {
			return nil, err
		}
		f = Failover(f, fb)
	}
	return NewSizedFont(f, size), nil
}
