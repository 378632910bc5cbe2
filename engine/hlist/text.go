package hlist

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/core/font"
	"github.com/npillmayer/typeset/core/hyphen"
	"github.com/npillmayer/typeset/engine/element"
)

// pipeline holds the word segmenter used during hyphenation. It is
// created lazily and reused across texts.
type pipeline struct {
	words *segment.Segmenter
}

func (hl *HorizontalList) preparePipeline() *pipeline {
	if hl.pipeline == nil {
		hl.pipeline = &pipeline{
			words: segment.NewSegmenter(uax29.NewWordBreaker(1)),
		}
	}
	return hl.pipeline
}

// AddStyledText adds a run of text in the style's font from the pack.
func (hl *HorizontalList) AddStyledText(text string, style font.Style, pack *font.Pack,
	dict *hyphen.Dictionary) {
	hl.AddText(text, pack.ForStyle(style), dict)
}

// AddText adds text in a font to the horizontal list, running it through
// the assembly stages.
//
// dict may be nil to skip hyphenation.
func (hl *HorizontalList) AddText(text string, f *font.SizedFont, dict *hyphen.Dictionary) {
	text = norm.NFC.String(text)

	// First, convert the string to a sequence of elements, where each
	// word is a single Text element, plus glue and penalties for spaces.
	elements := hl.textToWords(text, f)

	// Second, insert discretionary hyphens.
	if dict != nil && hl.allowLineBreaks {
		elements = hl.hyphenate(elements, f, dict)
	}

	// Third, fold ligatures around the discretionaries.
	elements = transformLigatures(elements, f)

	// Fourth, add kerning between and within text elements.
	elements = addKerning(elements, f)

	// Finally, reorder right-to-left runs for display.
	elements = reverseRightToLeft(elements)

	for _, e := range elements {
		hl.AddElement(e)
	}
}

// isWordCharacter tells whether the code point can be part of a
// hyphenated word. Both kinds of apostrophes count.
func isWordCharacter(r rune) bool {
	return unicode.IsLetter(r) || r == '-' || r == '\'' || r == '’'
}

// textToWords breaks a string into three kinds of elements: glue (for
// space and non-breaking space), words, and runs of non-word characters.
func (hl *HorizontalList) textToWords(text string, f *font.SizedFont) []element.Element {
	var elements []element.Element

	spaceWidth := f.SpaceWidth()

	// Don't allow stretching or shrinking if we're not justified.
	stretchability := dimen.Dimen(1)
	if hl.raggedLeft || hl.raggedRight {
		stretchability = 0
	}

	// Roughly copy TeX.
	spaceGlue := func() *element.Glue {
		return element.NewGlue(spaceWidth, spaceWidth/2*stretchability,
			spaceWidth/3*stretchability, true)
	}
	thinSpaceGlue := func() *element.Glue {
		return element.NewGlue(spaceWidth/2, spaceWidth/4*stretchability,
			spaceWidth/6*stretchability, true)
	}

	runes := []rune(text)
	for i := 0; i < len(runes); {
		ch := runes[i]
		i++

		switch {
		case ch == ' ' && hl.allowLineBreaks:
			elements = append(elements, spaceGlue())
		case ch == '\u00a0' && hl.allowLineBreaks:
			// Non-break space: precede the glue with an infinite penalty.
			elements = append(elements, element.NewPenalty(element.InfinitePenalty))
			elements = append(elements, spaceGlue())
		case ch == '\u202f' && hl.allowLineBreaks:
			// Thin non-break space.
			elements = append(elements, element.NewPenalty(element.InfinitePenalty))
			elements = append(elements, thinSpaceGlue())
		default:
			word := []rune{ch}
			isWord := isWordCharacter(ch)

			// Grab all the letters of the word (or non-word).
			for i < len(runes) {
				ch = runes[i]
				if isWord != isWordCharacter(ch) ||
					((ch == ' ' || ch == '\u00a0' || ch == '\u202f') && hl.allowLineBreaks) {
					break
				}
				i++
				word = append(word, ch)
			}

			elements = append(elements, element.NewText(string(word), f))
		}
	}

	return elements
}

// hyphenate returns a modified copy of the element list with the words
// hyphenated: discretionary breaks inserted between syllables. Words are
// iterated within each Text element by a UAX#29 word segmenter; a
// compound's explicit hyphen keeps its break opportunity via an empty
// pre-break discretionary.
func (hl *HorizontalList) hyphenate(elements []element.Element, f *font.SizedFont,
	dict *hyphen.Dictionary) []element.Element {
	//
	newElements := make([]element.Element, 0, len(elements))
	words := hl.preparePipeline().words

	for _, e := range elements {
		text, ok := e.(*element.Text)
		if !ok {
			newElements = append(newElements, e)
			continue
		}
		word := text.Text()
		if word == "" || !isWordCharacter([]rune(word)[0]) {
			// Not a word, leave it as-is.
			newElements = append(newElements, e)
			continue
		}
		words.Init(strings.NewReader(word))
		var pieces []string
		for words.Next() {
			pieces = append(pieces, words.Text())
		}
		newElements = hl.hyphenatePieces(newElements, pieces, f, dict)
	}

	return newElements
}

// hyphenatePieces emits the fragments of one word-run: each piece is
// hyphenated by the dictionary, with a discretionary between fragments.
// A bare "-" piece merges onto its predecessor, keeping an explicit
// break opportunity after the hyphen.
func (hl *HorizontalList) hyphenatePieces(out []element.Element, pieces []string,
	f *font.SizedFont, dict *hyphen.Dictionary) []element.Element {
	//
	for i := 0; i < len(pieces); i++ {
		piece := pieces[i]
		if piece == "-" && len(out) > 0 {
			// Explicit compound hyphen: append to the previous fragment
			// and allow a cut after it without adding another hyphen.
			if prev, ok := out[len(out)-1].(*element.Text); ok {
				out[len(out)-1] = element.NewText(prev.Text()+"-", f)
				if i+1 < len(pieces) {
					out = append(out, element.NewHyphen(f, true))
				}
				continue
			}
		}
		syllables := dict.Hyphenate(piece)
		tracer().Debugf("hyphenated %q as %s", piece, hyphen.SegmentsToString(syllables))
		for j, syllable := range syllables {
			out = append(out, element.NewText(syllable, f))
			if j < len(syllables)-1 {
				// The hyphen may already exist in the word.
				explicit := strings.HasSuffix(syllable, "-")
				out = append(out, element.NewHyphen(f, explicit))
			}
		}
	}
	return out
}
