package hlist

import (
	"github.com/npillmayer/typeset/core/font"
	"github.com/npillmayer/typeset/engine/element"
)

// transformLigatures returns a new list of elements with ligatures
// converted to their one-glyph form.
//
// If it weren't for hyphenation, we'd just substitute the ligatures in
// each Text element. But a discretionary break can cut in the middle of
// a ligature, such as in the word "dif-fi-cult", cutting the "ffi"
// ligature. So the plan is:
//
//  1. Find patterns of Text/Discretionary/Text elements.
//  2. Reconstruct the entire pre-break, post-break, and no-break text.
//  3. Transform ligatures in each.
//  4. Find common prefixes and suffixes.
//  5. Rebuild the Text/Discretionary/Text elements from those.
//
// For example:
//
//	Original text: difficult
//	Hyphenated:    dif-fi-cult
//	As elements:   Text(dif)Disc(-,,)Text(fi)Disc(-,,)Text(cult)
//	With "fi":     Text(dif)Disc(-,,)Text(`fi`)Disc(-,,)Text(cult)
//	With "ffi":    Text(di)Disc(f-,`fi`,`ffi`)Disc(-,,)Text(cult)
//
// (The text in `backticks` stands for ligature glyphs.)
func transformLigatures(elements []element.Element, f *font.SizedFont) []element.Element {
	// A deque of pending elements: the trailing Text of a triplet is
	// reconsidered against the following discretionary.
	oldElements := make([]element.Element, len(elements))
	copy(oldElements, elements)

	var newElements []element.Element

	for len(oldElements) > 0 {
		e := oldElements[0]
		oldElements = oldElements[1:]

		var beforeText, afterText *element.Text
		var disc *element.Discretionary

		switch x := e.(type) {
		case *element.Text:
			beforeText = x
			if len(oldElements) > 0 {
				if d, ok := oldElements[0].(*element.Discretionary); ok {
					disc = d
					oldElements = oldElements[1:]
				}
			}
		case *element.Discretionary:
			disc = x
		default:
			// Not text or discretionary, leave it as-is.
			newElements = append(newElements, e)
			continue
		}
		if disc != nil && len(oldElements) > 0 {
			if t, ok := oldElements[0].(*element.Text); ok {
				afterText = t
				oldElements = oldElements[1:]
			}
		}

		// We now have one of: text/nil/nil, text/disc/nil, text/disc/text,
		// nil/disc/nil, nil/disc/text.
		if beforeText != nil && afterText != nil && !beforeText.IsCompatibleWith(afterText) {
			tracer().Errorf("fonts around a discretionary don't match; skipping ligatures")
			newElements = append(newElements, beforeText, disc, afterText)
			continue
		}

		// Generate the full pre-break, post-break, and no-break strings.
		var entirePreBreak, entirePostBreak, entireNoBreak string
		if beforeText != nil {
			entirePreBreak = beforeText.Text()
			entireNoBreak = beforeText.Text()
		}
		if disc != nil {
			entirePreBreak += disc.PreBreak.OnlyString()
			entirePostBreak += disc.PostBreak.OnlyString()
			entireNoBreak += disc.NoBreak.OnlyString()
		}
		if afterText != nil {
			entirePostBreak += afterText.Text()
			entireNoBreak += afterText.Text()
		}

		// Substitute ligatures in all three.
		entirePreBreak = f.Ligatures(entirePreBreak)
		entirePostBreak = f.Ligatures(entirePostBreak)
		entireNoBreak = f.Ligatures(entireNoBreak)

		prefix := commonPrefix(entirePreBreak, entireNoBreak)
		suffix := commonSuffix(entirePostBreak, entireNoBreak)
		if len(prefix)+len(suffix) > len(entireNoBreak) {
			// Prefix and suffix overlap inside the no-break string; keep
			// the prefix and shorten the suffix.
			suffix = entireNoBreak[len(prefix):]
		}

		// What's left goes into the discretionary.
		preBreak := entirePreBreak[len(prefix):]
		postBreak := entirePostBreak[:len(entirePostBreak)-len(suffix)]
		noBreak := entireNoBreak[len(prefix) : len(entireNoBreak)-len(suffix)]

		if prefix != "" {
			newElements = append(newElements, element.NewText(prefix, f))
		}
		if disc != nil {
			newElements = append(newElements, element.NewDiscretionary(
				element.HBoxFromText(preBreak, f),
				element.HBoxFromText(postBreak, f),
				element.HBoxFromText(noBreak, f),
				disc.Penalty))
		}

		// The suffix must be processed again, potentially with the next
		// discretionary, so put it back into the input. Its ligatures
		// end up substituted twice, which is fine.
		if suffix != "" {
			requeued := make([]element.Element, 0, len(oldElements)+1)
			requeued = append(requeued, element.NewText(suffix, f))
			oldElements = append(requeued, oldElements...)
		}
	}

	return newElements
}

// commonPrefix returns the longest common prefix of two strings, whole
// runes only.
func commonPrefix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return string(ra[:n])
}

// commonSuffix returns the longest common suffix of two strings, whole
// runes only.
func commonSuffix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[len(ra)-1-n] == rb[len(rb)-1-n] {
		n++
	}
	return string(ra[len(ra)-n:])
}
