package element

import (
	"fmt"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core"
	"github.com/npillmayer/typeset/core/dimen"
)

// ColumnLayout describes how a stretch of a vertical list is distributed
// over columns.
type ColumnLayout struct {
	// Count is the number of parallel columns, at least 1.
	Count int
	// Margin is the gap between adjacent columns.
	Margin dimen.Dimen
}

// SingleColumn is the default layout.
func SingleColumn() ColumnLayout {
	return ColumnLayout{Count: 1}
}

// Columns groups vertical elements that share a multi-column layout into
// one element spanning the full width of the page's text area. The
// children must have been typeset against the narrower per-column
// measure.
type Columns struct {
	box
	Layout   ColumnLayout
	elements []Element
	columns  [][]Element
}

var _ Element = &Columns{}

// NewColumns distributes elements over the layout's columns, balancing
// column heights: each column is filled to roughly a Count-th of the
// total vertical size.
func NewColumns(elements []Element, layout ColumnLayout) *Columns {
	c := &Columns{Layout: layout, elements: elements}
	total := dimen.Zero
	for _, e := range elements {
		total += VerticalSize(e)
		c.width = dimen.Max(c.width, e.Width())
	}
	target := total / dimen.Dimen(layout.Count)

	c.columns = make([][]Element, layout.Count)
	col, colSize := 0, dimen.Zero
	for _, e := range elements {
		size := VerticalSize(e)
		if colSize+size/2 > target && col < layout.Count-1 {
			col++
			colSize = 0
		}
		c.columns[col] = append(c.columns[col], e)
		colSize += size
		if colSize > c.height {
			c.height = colSize
		}
	}
	c.width = dimen.Dimen(layout.Count)*c.width +
		dimen.Dimen(layout.Count-1)*layout.Margin
	return c
}

// Elements returns the grouped elements in their original order.
func (c *Columns) Elements() []Element {
	return c.elements
}

// columnWidth is the measure one column occupies.
func (c *Columns) columnWidth() dimen.Dimen {
	n := dimen.Dimen(c.Layout.Count)
	return (c.Width() - dimen.Dimen(c.Layout.Count-1)*c.Layout.Margin) / n
}

func (c *Columns) LayOutHorizontally(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	return 0, core.Error(core.EINTERNAL, "columns cannot be laid out horizontally")
}

func (c *Columns) LayOutVertically(x, y dimen.Dimen, sink backend.Sink) (dimen.Dimen, error) {
	colX := x
	for _, column := range c.columns {
		advance := dimen.Zero
		for _, e := range column {
			h, err := e.LayOutVertically(colX, y+advance, sink)
			if err != nil {
				return 0, err
			}
			advance += h
		}
		colX += c.columnWidth() + c.Layout.Margin
	}
	return VerticalSize(c), nil
}

func (c *Columns) String() string {
	return fmt.Sprintf("Columns ×%d %s", c.Layout.Count, c.dimenString())
}
