// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

// cellGrid derives the 4x4-cell tiling of a rows x cols block.
type cellGrid struct {
	cellRows uint32
	cellCols uint32
	rows     uint32
	cols     uint32
}

// newCellGrid computes ceil(rows/4) x ceil(cols/4) cells for the given block shape.
func newCellGrid(rows, cols uint32) cellGrid {
	return cellGrid{
		cellRows: (rows + 3) / 4,
		cellCols: (cols + 3) / 4,
		rows:     rows,
		cols:     cols,
	}
}

// count returns the total number of cells in the grid.
func (g cellGrid) count() uint32 {
	return g.cellRows * g.cellCols
}

// padding returns (padRow, padCol) for cell (ci, cj): the real extent of an edge
// cell, each in [1,4]. Interior cells always return (4, 4).
func (g cellGrid) padding(ci, cj uint32) (padRow, padCol uint32) {
	padRow = 4
	if ci == g.cellRows-1 {
		if r := g.rows % 4; r != 0 {
			padRow = r
		}
	}
	padCol = 4
	if cj == g.cellCols-1 {
		if c := g.cols % 4; c != 0 {
			padCol = c
		}
	}
	return padRow, padCol
}

// origin returns the input-buffer byte offset of cell (ci, cj)'s top-left corner.
func (g cellGrid) origin(ci, cj uint32) uint32 {
	return ci*4*g.cols + cj*4
}

// forEachCell walks the grid in row-major cell order, the order both Encode and
// Decode must agree on since back-references are only valid against
// already-visited cells.
func (g cellGrid) forEachCell(fn func(ci, cj uint32) error) error {
	for ci := uint32(0); ci < g.cellRows; ci++ {
		for cj := uint32(0); cj < g.cellCols; cj++ {
			if err := fn(ci, cj); err != nil {
				return err
			}
		}
	}
	return nil
}
