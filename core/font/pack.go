package font

// Style is a set of style flags attributed to a run of text.
type Style uint8

// Style flags. A zero Style selects the regular font.
const (
	StyleBold Style = 1 << iota
	StyleItalic
	StyleSmallCaps
	StyleCode
)

// StylePlain is the empty flag set.
const StylePlain Style = 0

// IsBold tells whether the bold flag is set.
func (s Style) IsBold() bool { return s&StyleBold != 0 }

// IsItalic tells whether the italic flag is set.
func (s Style) IsItalic() bool { return s&StyleItalic != 0 }

// IsSmallCaps tells whether the small-caps flag is set.
func (s Style) IsSmallCaps() bool { return s&StyleSmallCaps != 0 }

// IsCode tells whether the code flag is set.
func (s Style) IsCode() bool { return s&StyleCode != 0 }

// Pack bundles the sized fonts for every style of a text block, all at
// the same nominal size.
type Pack struct {
	Regular    *SizedFont
	Bold       *SizedFont
	Italic     *SizedFont
	BoldItalic *SizedFont
	SmallCaps  *SizedFont
	Code       *SizedFont
}

// NewPack loads a pack from a manager: one sized font per variant of the
// given typeface, with code drawn from a separate typeface.
func NewPack(m *Manager, typeface, codeTypeface string, size float64) (*Pack, error) {
	p := &Pack{}
	var err error
	if p.Regular, err = m.GetSized(typeface, Regular, size); err != nil {
		return nil, err
	}
	if p.Bold, err = m.GetSized(typeface, Bold, size); err != nil {
		return nil, err
	}
	if p.Italic, err = m.GetSized(typeface, Italic, size); err != nil {
		return nil, err
	}
	if p.BoldItalic, err = m.GetSized(typeface, BoldItalic, size); err != nil {
		return nil, err
	}
	if p.SmallCaps, err = m.GetSized(typeface, SmallCaps, size); err != nil {
		return nil, err
	}
	if p.Code, err = m.GetSized(codeTypeface, Regular, size); err != nil {
		return nil, err
	}
	return p, nil
}

// ForStyle picks the sized font for a style flag set. Small caps wins
// over bold and italic, code only applies unstyled.
func (p *Pack) ForStyle(s Style) *SizedFont {
	switch {
	case s.IsSmallCaps():
		return p.SmallCaps
	case s.IsBold() && s.IsItalic():
		return p.BoldItalic
	case s.IsBold():
		return p.Bold
	case s.IsItalic():
		return p.Italic
	case s.IsCode():
		return p.Code
	default:
		return p.Regular
	}
}
