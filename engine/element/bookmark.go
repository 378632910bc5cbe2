package element

import (
	"fmt"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core/dimen"
)

// Bookmark is a zero-size marker element. Bookmarks ride along in the
// element lists, are never discarded by the breaker, and end up on the
// page their host element fell on after pagination.
type Bookmark interface {
	Element
	isBookmark()
}

// bookmark provides the zero-size element plumbing for all markers.
type bookmark struct{}

func (bookmark) Width() dimen.Dimen  { return 0 }
func (bookmark) Height() dimen.Dimen { return 0 }
func (bookmark) Depth() dimen.Dimen  { return 0 }
func (bookmark) isBookmark()         {}

func (bookmark) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, nil
}

func (bookmark) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, nil
}

// SectionType classifies section bookmarks.
type SectionType int

// The section kinds of a book.
const (
	Part SectionType = iota
	Chapter
	MinorSection
	HalfTitlePage
	TitlePage
	CopyrightPage
	TableOfContents
	IndexSection
)

func (t SectionType) String() string {
	switch t {
	case Part:
		return "Part"
	case Chapter:
		return "Chapter"
	case MinorSection:
		return "Minor Section"
	case HalfTitlePage:
		return "Half Title Page"
	case TitlePage:
		return "Title Page"
	case CopyrightPage:
		return "Copyright Page"
	case TableOfContents:
		return "Table of Contents"
	case IndexSection:
		return "Index"
	}
	return "Section"
}

// InTableOfContents tells whether sections of this kind get a table of
// contents entry.
func (t SectionType) InTableOfContents() bool {
	switch t {
	case Part, Chapter, MinorSection, IndexSection:
		return true
	}
	return false
}

// SectionBookmark marks the start of a part, chapter or other section.
type SectionBookmark struct {
	bookmark
	Type SectionType
	Name string
}

var _ Bookmark = &SectionBookmark{}

// NewSectionBookmark creates a section marker.
func NewSectionBookmark(t SectionType, name string) *SectionBookmark {
	return &SectionBookmark{Type: t, Name: name}
}

func (s *SectionBookmark) String() string {
	return fmt.Sprintf("%s %q", s.Type, s.Name)
}

// LabelBookmark marks a named position for cross-references.
type LabelBookmark struct {
	bookmark
	Name string
}

var _ Bookmark = &LabelBookmark{}

// NewLabelBookmark creates a label marker.
func NewLabelBookmark(name string) *LabelBookmark {
	return &LabelBookmark{Name: name}
}

func (l *LabelBookmark) String() string {
	return fmt.Sprintf("Label %q", l.Name)
}

// IndexBookmark marks a position referenced from the book's index.
type IndexBookmark struct {
	bookmark
	// Entries is the index term path, outermost first.
	Entries []string
}

var _ Bookmark = &IndexBookmark{}

// NewIndexBookmark creates an index reference marker.
func NewIndexBookmark(entries []string) *IndexBookmark {
	return &IndexBookmark{Entries: entries}
}

func (ib *IndexBookmark) String() string {
	return fmt.Sprintf("Index entry %v", ib.Entries)
}
