package vlist

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/engine/element"
	"github.com/stretchr/testify/assert"
)

// line builds a line box of the given height and depth.
func line(height, depth dimen.Dimen) *element.HBox {
	return element.NewHBox([]element.Element{
		element.NewRule(50*dimen.PT, height, depth),
	}, 0)
}

func TestBaselineSkipGlue(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vl := New()
	vl.SetBaselineSkip(14 * dimen.PT)
	vl.AddElement(line(8*dimen.PT, 2*dimen.PT))
	vl.AddElement(line(8*dimen.PT, 2*dimen.PT))

	elements := vl.Elements()
	if assert.Len(t, elements, 3, "a glue should be inserted between the lines") {
		glue, ok := elements[1].(*element.Glue)
		if assert.True(t, ok) {
			// 14pt - 2pt (depth above) - 8pt (height below) = 4pt.
			assert.Equal(t, 4*dimen.PT, glue.Size)
		}
	}
	assert.Equal(t, 8*dimen.PT, vl.FirstHBoxHeight())
	assert.Equal(t, 2*dimen.PT, vl.LastHBoxDepth())
}

func TestBaselineSkipNeverNegative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vl := New()
	vl.SetBaselineSkip(5 * dimen.PT)
	vl.AddElement(line(8*dimen.PT, 2*dimen.PT))
	vl.AddElement(line(8*dimen.PT, 2*dimen.PT))
	glue := vl.Elements()[1].(*element.Glue)
	assert.Equal(t, dimen.Zero, glue.Size, "tight baseline skip must not produce negative glue")
}

func TestSetBaselineSkipReturnsPrevious(t *testing.T) {
	vl := New()
	old := vl.SetBaselineSkip(20 * dimen.PT)
	assert.Equal(t, dimen.UnitPT.ToSP(11*1.2), old)
	assert.Equal(t, 20*dimen.PT, vl.SetBaselineSkip(10*dimen.PT))
}

func TestBreakIntoPages(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vl := New()
	vl.SetBaselineSkip(10 * dimen.PT)
	for i := 0; i < 20; i++ {
		vl.AddElement(line(10*dimen.PT, 0))
	}
	vl.EjectPage()
	pages, err := vl.BreakIntoPages(100*dimen.PT, 1)
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, pages, 2) {
		assert.Equal(t, 1, pages[0].PhysicalPageNumber)
		assert.Equal(t, 2, pages[1].PhysicalPageNumber)
	}
}

func TestOddPageFromOddPage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vl := New()
	vl.SetBaselineSkip(10 * dimen.PT)
	for i := 0; i < 10; i++ { // exactly one page
		vl.AddElement(line(10*dimen.PT, 0))
	}
	vl.OddPage()
	for i := 0; i < 3; i++ {
		vl.AddElement(line(10*dimen.PT, 0))
	}
	vl.EjectPage()

	pages, err := vl.BreakIntoPages(100*dimen.PT, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Content ended on odd page 1; the next odd page is 3, so page 2
	// stays blank.
	if assert.Len(t, pages, 3) {
		assert.Empty(t, pages[1].Elements(), "page 2 should be blank")
		assert.Equal(t, 3, pages[2].PhysicalPageNumber)
		assert.NotEmpty(t, pages[2].Elements())
	}
}

func TestOddPageFromEvenPage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vl := New()
	vl.SetBaselineSkip(10 * dimen.PT)
	for i := 0; i < 20; i++ { // exactly two pages
		vl.AddElement(line(10*dimen.PT, 0))
	}
	vl.OddPage()
	for i := 0; i < 3; i++ {
		vl.AddElement(line(10*dimen.PT, 0))
	}
	vl.EjectPage()

	pages, err := vl.BreakIntoPages(100*dimen.PT, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Content ended on even page 2: the even-only penalty fires right
	// there and the next content starts on page 3, no blank page.
	if assert.Len(t, pages, 3) {
		assert.NotEmpty(t, pages[1].Elements())
		assert.Equal(t, 3, pages[2].PhysicalPageNumber)
		assert.NotEmpty(t, pages[2].Elements())
	}
}

func TestColumnGrouping(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vl := New()
	vl.SetBaselineSkip(10 * dimen.PT)
	vl.AddElement(line(10*dimen.PT, 0))
	vl.ChangeColumnLayout(element.ColumnLayout{Count: 2, Margin: dimen.PT})
	for i := 0; i < 4; i++ {
		vl.AddElement(line(10*dimen.PT, 0))
	}
	vl.ChangeColumnLayout(element.SingleColumn())
	vl.AddElement(line(10*dimen.PT, 0))
	vl.EjectPage()

	pages, err := vl.BreakIntoPages(300*dimen.PT, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !assert.Len(t, pages, 1) {
		return
	}
	var columns *element.Columns
	for _, e := range pages[0].Elements() {
		if c, ok := e.(*element.Columns); ok {
			if columns != nil {
				t.Fatal("expected a single Columns group")
			}
			columns = c
		}
	}
	if assert.NotNil(t, columns, "multi-column stretch should be grouped") {
		assert.Equal(t, 2, columns.Layout.Count)
		// Two 10pt lines per column (plus the baseline glue riding along).
		assert.Equal(t, 20*dimen.PT, columns.Height())
	}
}

func TestImageAdvancesPageCounter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vl := New()
	vl.SetBaselineSkip(10 * dimen.PT)
	vl.AddElement(line(10*dimen.PT, 0))
	vl.EjectPage()
	vl.AddElement(element.NewImage("figure.jpg", 50*dimen.PT, 80*dimen.PT))
	vl.AddElement(line(10*dimen.PT, 0))
	vl.EjectPage()
	vl.AddElement(line(10*dimen.PT, 0))
	vl.EjectPage()

	pages, err := vl.BreakIntoPages(200*dimen.PT, 1)
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, pages, 3) {
		assert.Equal(t, 1, pages[0].PhysicalPageNumber)
		assert.Equal(t, 2, pages[1].PhysicalPageNumber)
		assert.Equal(t, 4, pages[2].PhysicalPageNumber,
			"the whole-page image consumes a page number")
	}
}
