/*
Package block defines the input contract of the typesetting engine: a
document arrives as a sequence of blocks (paragraphs, headers, code
blocks), each a list of spans. The source parser producing blocks lives
outside the engine.

The package also implements the locale-sensitive punctuation
post-processor applied to a block's text before horizontal assembly.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package block

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typeset/core/font"
)

// tracer traces with key 'typeset.block'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.block")
}

// Type classifies a block.
type Type int

// The block types the engine distinguishes.
const (
	Body Type = iota
	PartHeader
	ChapterHeader
	MinorSectionHeader
	CodeBlock
	BlockQuote
	NumberedList
	Caption
)

// Span is one piece of a block: a run of styled text or one of the
// marker spans (image, footnote, label, index entry, page reference).
type Span interface {
	isSpan()
}

// TextSpan is a run of text with a style flag set.
type TextSpan struct {
	Text  string
	Flags font.Style
}

func (TextSpan) isSpan() {}

// ImageSpan references a whole-page image.
type ImageSpan struct {
	Path    string
	Caption *Block
}

func (ImageSpan) isSpan() {}

// FootnoteSpan carries the block of a footnote's content.
type FootnoteSpan struct {
	Content *Block
}

func (FootnoteSpan) isSpan() {}

// LabelSpan marks a named position for cross-references.
type LabelSpan struct {
	Name string
}

func (LabelSpan) isSpan() {}

// IndexSpan marks an index reference; entries are the term path,
// outermost first.
type IndexSpan struct {
	Entries []string
}

func (IndexSpan) isSpan() {}

// PageRefSpan is replaced by the page number of the label it refers to.
type PageRefSpan struct {
	Name  string
	Flags font.Style
}

func (PageRefSpan) isSpan() {}

// Block is a paragraph-like unit: a sequence of spans.
type Block struct {
	Type Type
	// LineNumber is the line in the source where the block started, for
	// warnings.
	LineNumber int
	Spans      []Span
}

// New creates an empty block.
func New(t Type, lineNumber int) *Block {
	return &Block{Type: t, LineNumber: lineNumber}
}

// FromText creates a body block holding a single plain text span.
func FromText(text string) *Block {
	b := New(Body, 0)
	b.Append(TextSpan{Text: text})
	return b
}

// Append adds a span to the block.
func (b *Block) Append(span Span) *Block {
	b.Spans = append(b.Spans, span)
	return b
}

// Text returns the concatenated text of all text spans.
func (b *Block) Text() string {
	var sb strings.Builder
	for _, span := range b.Spans {
		if ts, ok := span.(TextSpan); ok {
			sb.WriteString(ts.Text)
		}
	}
	return sb.String()
}

func (b *Block) String() string {
	text := b.Text()
	if len(text) > 30 {
		text = text[:30] + "…"
	}
	return fmt.Sprintf("block (%d spans): %s", len(b.Spans), text)
}
