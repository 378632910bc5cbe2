/*
Package book tracks the book-level structure that emerges after
pagination: which bookmarks ended up on which physical page, where the
sections start, and how pages are labelled.

Physical page numbers count output pages, 1-based. Logical page labels
are what gets printed: lowercase Roman numerals in the front matter,
Arabic numerals in the body.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package book

import (
	"math"
	"sort"

	"strconv"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typeset/core/roman"
	"github.com/npillmayer/typeset/engine/element"
)

// tracer traces with key 'typeset.book'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.book")
}

// Bookmarks records which bookmarks fell on which physical page.
type Bookmarks struct {
	pageToBookmarks map[int][]element.Bookmark
	labelToPage     map[string]int
}

// EmptyBookmarks creates an empty collection.
func EmptyBookmarks() *Bookmarks {
	return &Bookmarks{
		pageToBookmarks: make(map[int][]element.Bookmark),
		labelToPage:     make(map[string]int),
	}
}

// BookmarksFromPages walks each page's elements and collects the
// bookmarks riding in them.
func BookmarksFromPages(pages []*element.Page) *Bookmarks {
	bookmarks := EmptyBookmarks()
	for _, page := range pages {
		page.Visit(func(e element.Element) {
			if bm, ok := e.(element.Bookmark); ok {
				bookmarks.add(page.PhysicalPageNumber, bm)
			}
		})
	}
	return bookmarks
}

func (b *Bookmarks) add(physicalPageNumber int, bookmark element.Bookmark) {
	b.pageToBookmarks[physicalPageNumber] = append(b.pageToBookmarks[physicalPageNumber], bookmark)
	if label, ok := bookmark.(*element.LabelBookmark); ok {
		b.labelToPage[label.Name] = physicalPageNumber
	}
}

// PageForLabel returns the physical page a label landed on.
func (b *Bookmarks) PageForLabel(name string) (int, bool) {
	page, ok := b.labelToPage[name]
	return page, ok
}

// Entry is one bookmark with the physical page it fell on.
type Entry struct {
	PhysicalPageNumber int
	Bookmark           element.Bookmark
}

// Entries returns all bookmarks in page order.
func (b *Bookmarks) Entries() []Entry {
	pages := make([]int, 0, len(b.pageToBookmarks))
	for page := range b.pageToBookmarks {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	var entries []Entry
	for _, page := range pages {
		for _, bm := range b.pageToBookmarks[page] {
			entries = append(entries, Entry{PhysicalPageNumber: page, Bookmark: bm})
		}
	}
	return entries
}

// ---------------------------------------------------------------------------

// Sections keeps track of the positions of the parts and chapters of
// the book, and derives the front-matter/body-matter split.
type Sections struct {
	// pageToSection maps a physical page number to the section starting
	// on it.
	pageToSection *treemap.Map
	sectionToPage map[element.SectionType]int
	// firstFrontMatterPage is where Roman numbering starts; always 1.
	firstFrontMatterPage int
	// firstBodyMatterPage is where Arabic numbering starts; depends on
	// the first part or chapter.
	firstBodyMatterPage int
}

// NewSections creates an empty section map.
func NewSections() *Sections {
	return &Sections{
		pageToSection:        treemap.NewWithIntComparator(),
		sectionToPage:        make(map[element.SectionType]int),
		firstFrontMatterPage: 1,
		firstBodyMatterPage:  1,
	}
}

// ConfigureFromBookmarks scans the bookmarks to find where the body
// starts and which section any given page is in.
//
// The body is guessed to start at the first part; in a book without
// parts, at the first chapter. Two sections starting on the same page
// emit a warning, not an error.
func (s *Sections) ConfigureFromBookmarks(bookmarks *Bookmarks) {
	s.pageToSection.Clear()
	s.sectionToPage = make(map[element.SectionType]int)
	s.firstFrontMatterPage = 1
	s.firstBodyMatterPage = math.MaxInt32
	firstChapterPage := math.MaxInt32

	for _, entry := range bookmarks.Entries() {
		section, ok := entry.Bookmark.(*element.SectionBookmark)
		if !ok {
			continue
		}
		page := entry.PhysicalPageNumber

		if section.Type == element.Part && page < s.firstBodyMatterPage {
			s.firstBodyMatterPage = page
		}
		if section.Type == element.Chapter && page < firstChapterPage {
			firstChapterPage = page
		}

		if existing, ok := s.pageToSection.Get(page); ok {
			tracer().Infof("warning: duplicate sections for physical page %d (%v and %v)",
				page, existing, section)
			continue
		}
		s.pageToSection.Put(page, section)
		s.sectionToPage[section.Type] = page
	}

	// If no parts, pick the first chapter.
	if s.firstBodyMatterPage == math.MaxInt32 {
		s.firstBodyMatterPage = firstChapterPage
	}
	if s.firstBodyMatterPage == math.MaxInt32 {
		s.firstBodyMatterPage = 1
		tracer().Infof("warning: never found the book's body")
	}
}

// SectionBookmarkForPage returns the section starting on a physical
// page, if any.
func (s *Sections) SectionBookmarkForPage(physicalPageNumber int) (*element.SectionBookmark, bool) {
	v, ok := s.pageToSection.Get(physicalPageNumber)
	if !ok {
		return nil, false
	}
	return v.(*element.SectionBookmark), true
}

// SectionEntry is a section with the physical page it starts on.
type SectionEntry struct {
	PhysicalPageNumber int
	Section            *element.SectionBookmark
}

// Sections returns the sections of the book in page order.
func (s *Sections) Sections() []SectionEntry {
	var entries []SectionEntry
	it := s.pageToSection.Iterator()
	for it.Next() {
		entries = append(entries, SectionEntry{
			PhysicalPageNumber: it.Key().(int),
			Section:            it.Value().(*element.SectionBookmark),
		})
	}
	return entries
}

// HasParts tells whether the book has any part sections.
func (s *Sections) HasParts() bool {
	_, ok := s.sectionToPage[element.Part]
	return ok
}

// FirstBodyMatterPage returns the physical page where Arabic numbering
// starts.
func (s *Sections) FirstBodyMatterPage() int {
	return s.firstBodyMatterPage
}

// ShouldDrawHeadline tells whether the page gets a headline. Pages that
// start a section and pages before the table of contents don't.
func (s *Sections) ShouldDrawHeadline(physicalPageNumber int) bool {
	if _, ok := s.pageToSection.Get(physicalPageNumber); ok {
		return false
	}
	if tocPage, ok := s.sectionToPage[element.TableOfContents]; ok &&
		physicalPageNumber < tocPage {
		return false
	}
	return true
}

// PageNumberLabel returns the displayed page number for a physical
// page: Arabic in the body, lowercase Roman in the front matter, both
// 1-indexed within their matter.
func (s *Sections) PageNumberLabel(physicalPageNumber int) string {
	if physicalPageNumber >= s.firstBodyMatterPage {
		return strconv.Itoa(physicalPageNumber - s.firstBodyMatterPage + 1)
	}
	return roman.Lower(physicalPageNumber - s.firstFrontMatterPage + 1)
}

// HeadlineLabel returns the string for the top of a page: the book
// title on even (verso) pages, the nearest prior section name on odd
// (recto) pages.
func (s *Sections) HeadlineLabel(physicalPageNumber int, bookTitle string) string {
	if physicalPageNumber%2 == 1 {
		if _, v := s.pageToSection.Floor(physicalPageNumber); v != nil {
			return v.(*element.SectionBookmark).Name
		}
	}
	return bookTitle
}
