package book

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typeset/core/font"
	"github.com/npillmayer/typeset/engine/element"
	"github.com/stretchr/testify/assert"
)

// pageWith builds a page with the given number holding a single line
// that carries the bookmarks.
func pageWith(number int, bookmarks ...element.Bookmark) *element.Page {
	f := font.NewSizedFont(font.NewMonospace("mono"), 10)
	children := []element.Element{element.NewText("content", f)}
	for _, bm := range bookmarks {
		children = append(children, bm)
	}
	line := element.NewHBox(children, 0)
	return element.NewPage([]element.Element{line}, number, 0)
}

func TestBookmarksFromPages(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pages := []*element.Page{
		pageWith(1, element.NewSectionBookmark(element.TitlePage, "Title")),
		pageWith(2, element.NewLabelBookmark("intro")),
		pageWith(3,
			element.NewSectionBookmark(element.Chapter, "One"),
			element.NewIndexBookmark([]string{"typesetting"})),
	}
	bookmarks := BookmarksFromPages(pages)

	page, ok := bookmarks.PageForLabel("intro")
	assert.True(t, ok)
	assert.Equal(t, 2, page)
	_, ok = bookmarks.PageForLabel("nowhere")
	assert.False(t, ok)

	entries := bookmarks.Entries()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, 1, entries[0].PhysicalPageNumber, "entries are in page order")
		assert.Equal(t, 3, entries[3].PhysicalPageNumber)
	}
}

func sectionsFor(t *testing.T, pages ...*element.Page) *Sections {
	t.Helper()
	sections := NewSections()
	sections.ConfigureFromBookmarks(BookmarksFromPages(pages))
	return sections
}

func TestFrontMatterSplitWithPart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// A part starting at physical page 7: pages 1..6 are front matter.
	sections := sectionsFor(t,
		pageWith(2, element.NewSectionBookmark(element.TableOfContents, "Contents")),
		pageWith(7, element.NewSectionBookmark(element.Part, "Part One")),
		pageWith(9, element.NewSectionBookmark(element.Chapter, "One")),
	)
	assert.True(t, sections.HasParts())
	assert.Equal(t, 7, sections.FirstBodyMatterPage())

	romans := []string{"i", "ii", "iii", "iv", "v", "vi"}
	for p := 1; p <= 6; p++ {
		assert.Equal(t, romans[p-1], sections.PageNumberLabel(p))
	}
	assert.Equal(t, "1", sections.PageNumberLabel(7))
	assert.Equal(t, "4", sections.PageNumberLabel(10))
}

func TestFrontMatterSplitWithoutPart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sections := sectionsFor(t,
		pageWith(3, element.NewSectionBookmark(element.Chapter, "One")),
	)
	assert.False(t, sections.HasParts())
	assert.Equal(t, 3, sections.FirstBodyMatterPage())
	assert.Equal(t, "ii", sections.PageNumberLabel(2))
	assert.Equal(t, "1", sections.PageNumberLabel(3))
}

func TestBodyDefaultsToPageOne(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sections := sectionsFor(t, pageWith(1))
	assert.Equal(t, 1, sections.FirstBodyMatterPage())
	assert.Equal(t, "1", sections.PageNumberLabel(1))
}

func TestDuplicateSectionWarns(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sections := sectionsFor(t,
		pageWith(3,
			element.NewSectionBookmark(element.Chapter, "One"),
			element.NewSectionBookmark(element.Chapter, "Two")),
	)
	// The first section wins; the duplicate only warns.
	section, ok := sections.SectionBookmarkForPage(3)
	if assert.True(t, ok) {
		assert.Equal(t, "One", section.Name)
	}
}

func TestShouldDrawHeadline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sections := sectionsFor(t,
		pageWith(2, element.NewSectionBookmark(element.TableOfContents, "Contents")),
		pageWith(4, element.NewSectionBookmark(element.Chapter, "One")),
	)
	assert.False(t, sections.ShouldDrawHeadline(1), "before the TOC")
	assert.False(t, sections.ShouldDrawHeadline(2), "the TOC page starts a section")
	assert.True(t, sections.ShouldDrawHeadline(3))
	assert.False(t, sections.ShouldDrawHeadline(4), "chapter start")
	assert.True(t, sections.ShouldDrawHeadline(5))
}

func TestHeadlineLabel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sections := sectionsFor(t,
		pageWith(3, element.NewSectionBookmark(element.Chapter, "One")),
		pageWith(8, element.NewSectionBookmark(element.Chapter, "Two")),
	)
	assert.Equal(t, "My Book", sections.HeadlineLabel(4, "My Book"),
		"even pages show the book title")
	assert.Equal(t, "One", sections.HeadlineLabel(5, "My Book"),
		"odd pages show the nearest prior section name")
	assert.Equal(t, "Two", sections.HeadlineLabel(9, "My Book"))
	assert.Equal(t, "My Book", sections.HeadlineLabel(1, "My Book"),
		"no section yet: fall back to the title")
}

func TestSectionsInPageOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sections := sectionsFor(t,
		pageWith(9, element.NewSectionBookmark(element.Chapter, "Two")),
		pageWith(3, element.NewSectionBookmark(element.Chapter, "One")),
	)
	entries := sections.Sections()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, 3, entries[0].PhysicalPageNumber)
		assert.Equal(t, 9, entries[1].PhysicalPageNumber)
	}
}
