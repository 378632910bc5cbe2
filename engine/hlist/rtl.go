package hlist

import (
	"github.com/npillmayer/typeset/engine/element"
)

// reverseRightToLeft reorders right-to-left runs for display. Texts are
// split into single code points, then maximal runs that start and end on
// a right-to-left code point — containing only right-to-left or neutral
// code points or non-text elements in between — are reversed in place.
//
// This is deliberately simple mirroring for isolated RTL runs; complex
// script shaping is outside the engine.
func reverseRightToLeft(elements []element.Element) []element.Element {
	containsRTL := false
	for _, e := range elements {
		if t, ok := e.(*element.Text); ok && t.ContainsRightToLeft() {
			containsRTL = true
			break
		}
	}
	if !containsRTL {
		return elements
	}

	// Split all Text elements so that none holds more than one code
	// point. Leave the rest alone.
	var singleChars []element.Element
	for _, e := range elements {
		if t, ok := e.(*element.Text); ok {
			singleChars = t.BreakUpInto(singleChars)
		} else {
			singleChars = append(singleChars, e)
		}
	}

	firstRTL := -1
	mostRecentRTL := -1
	for i, e := range singleChars {
		t, ok := e.(*element.Text)
		if !ok {
			continue
		}
		dir, err := t.Direction()
		if err != nil {
			tracer().Errorf("single code point with mixed direction: %v", err)
			continue
		}
		switch dir {
		case element.LeftToRight:
			// A left-to-right code point ends a right-to-left section.
			if firstRTL != -1 {
				reverseSection(singleChars, firstRTL, mostRecentRTL)
				firstRTL = -1
				mostRecentRTL = -1
			}
		case element.Neutral:
			// Continue whatever we were doing.
		case element.RightToLeft:
			if firstRTL == -1 {
				firstRTL = i
			}
			mostRecentRTL = i
		}
	}
	if firstRTL != -1 {
		reverseSection(singleChars, firstRTL, mostRecentRTL)
	}

	// We could merge single-code-point texts back together here, but
	// there is no benefit.
	return singleChars
}

// reverseSection reverses the elements between first and last inclusive.
func reverseSection(elements []element.Element, first, last int) {
	for i, j := first, last; i < j; i, j = i+1, j-1 {
		elements[i], elements[j] = elements[j], elements[i]
	}
}
