package hlist

import (
	"github.com/npillmayer/typeset/core/font"
	"github.com/npillmayer/typeset/engine/element"
)

// addKerning returns a new list of elements with kern elements inserted
// wherever the font kerns a pair of adjacent code points. The previous
// code point is tracked across element boundaries; text elements are
// split at kern positions.
func addKerning(elements []element.Element, f *font.SizedFont) []element.Element {
	newElements := make([]element.Element, 0, len(elements))
	_, newElements = addKerningToList(elements, newElements, 0, f)
	return newElements
}

// addKerningToList kerns the original elements onto the output list,
// starting with the given previous code point. It returns the code
// point a following element would kern against.
func addKerningToList(origElements []element.Element, newElements []element.Element,
	previousCh rune, f *font.SizedFont) (rune, []element.Element) {
	//
	for idx := 0; idx < len(origElements); idx++ {
		e := origElements[idx]

		switch x := e.(type) {
		case *element.Text:
			// Walk the text one code point at a time and split where a
			// pair requires kerning.
			s := []rune(x.Text())
			start := 0
			for i := 0; i < len(s); i++ {
				ch := s[i]
				if kerning := f.Kerning(previousCh, ch); kerning != 0 {
					if i > start {
						newElements = append(newElements, element.NewText(string(s[start:i]), f))
						start = i
					}
					newElements = append(newElements, element.NewKern(kerning, true))
				}
				previousCh = ch
			}
			if start < len(s) {
				newElements = append(newElements, element.NewText(string(s[start:]), f))
			}

		case *element.Glue:
			// A glue with positive size acts like a space.
			if x.Size > 0 {
				previousCh = ' '
			}
			newElements = append(newElements, e)

		case *element.Discretionary:
			var nextCh rune
			nextCh, newElements = kernDiscretionary(origElements, idx, x, newElements, previousCh, f)
			previousCh = nextCh

		case *element.Kern:
			// Kerning runs once; existing kerns would be double-counted.
			tracer().Errorf("there should not be kern elements in the list already")
			newElements = append(newElements, e)

		case *element.Rule:
			// Reset the previous character only if the rule has width; a
			// zero-width rule is a strut and doesn't affect kerning.
			if x.Width() > 0 {
				previousCh = 0
			}
			newElements = append(newElements, e)

		case *element.VBox:
			if x.Width() > 0 {
				previousCh = 0
			}
			newElements = append(newElements, e)

		case *element.Penalty:
			newElements = append(newElements, e)

		default:
			// Bookmarks, footnotes and other zero-width riders pass
			// through without affecting kerning.
			newElements = append(newElements, e)
		}
	}

	return previousCh, newElements
}

// kernDiscretionary recurses into the three parts of a discretionary,
// kerning each with the appropriate previous code point: the pre-break
// and no-break parts continue from before the discretionary, the
// post-break part starts a fresh line.
//
// When the post-break and no-break parts end in different code points,
// the kern against the following text differs per branch. We resolve it
// by peeking at the next element and placing the branch kerns inside the
// discretionary, then suppressing the outer kern.
func kernDiscretionary(origElements []element.Element, idx int, disc *element.Discretionary,
	newElements []element.Element, previousCh rune, f *font.SizedFont) (rune, []element.Element) {
	//
	var preBreakElements, postBreakElements, noBreakElements []element.Element
	_, preBreakElements = addKerningToList(disc.PreBreak.Elements(), nil, previousCh, f)
	postBreakCh, postBreakElements := addKerningToList(disc.PostBreak.Elements(), nil, 0, f)
	noBreakCh, noBreakElements := addKerningToList(disc.NoBreak.Elements(), nil, previousCh, f)

	if postBreakCh != noBreakCh {
		// The most likely scenario: a simple discretionary hyphen, where
		// the post-break is empty (previous code point undefined) and the
		// no-break is empty (previous code point from before the
		// discretionary). The kern has to go into the branches, which
		// requires peeking ahead.
		resolved := false
		if idx+1 < len(origElements) {
			if peek, ok := origElements[idx+1].(*element.Text); ok && peek.Text() != "" {
				nextCh := []rune(peek.Text())[0]
				if kerning := f.Kerning(postBreakCh, nextCh); kerning != 0 {
					postBreakElements = append(postBreakElements, element.NewKern(kerning, true))
				}
				if kerning := f.Kerning(noBreakCh, nextCh); kerning != 0 {
					noBreakElements = append(noBreakElements, element.NewKern(kerning, true))
				}
				resolved = true
			}
		}
		if resolved {
			// The branch kerns are in place; disable kerning against the
			// next element at the outer level.
			previousCh = 0
		} else {
			// Seen with a two-ligature discretionary followed by a hyphen
			// discretionary. The model cannot represent per-branch
			// leading kerns, so assume the no-break code point, the most
			// likely case.
			tracer().Infof("cannot resolve kerning across %v; assuming the no-break part", disc)
			previousCh = noBreakCh
		}
	} else {
		// Both parts end alike.
		previousCh = postBreakCh
	}

	newElements = append(newElements, element.NewDiscretionary(
		element.NewHBox(preBreakElements, 0),
		element.NewHBox(postBreakElements, 0),
		element.NewHBox(noBreakElements, 0),
		disc.Penalty))
	return previousCh, newElements
}
