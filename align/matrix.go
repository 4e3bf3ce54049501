// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"sync"
	"text/tabwriter"

	"github.com/grailbio/base/errors"
)

const (
	maxInt = int(^uint(0) >> 1)
	// maxDist bounds every cell distance.
	maxDist = math.MaxInt32
)

// cell is one entry of the DP matrix.
type cell struct {
	dist int32
	dir  Direction
}

// matrix is the (len(y)+1) x (len(x)+1) edit distance matrix of one Align
// call. Cells are stored in a single row-major buffer; cell (i, j) is
// data[i*nCol+j]. x runs along the columns and y along the rows.
type matrix struct {
	nRow, nCol int
	data       []cell
	x, y       []byte
}

// matrixPool recycles cell buffers across calls. A matrix never outlives the
// call that obtained it.
var matrixPool = sync.Pool{
	New: func() interface{} { return &matrix{} },
}

// cellCount returns rows*cols, or false if the product overflows int.
func cellCount(rows, cols int) (int, bool) {
	if rows == 0 || cols == 0 {
		return 0, true
	}
	if rows > maxInt/cols {
		return 0, false
	}
	return rows * cols, true
}

// newMatrix obtains a matrix for x and y. It fails with errors.Unavailable,
// without allocating, if the matrix has more than maxCells cells. The Go
// runtime cannot report a failed allocation to its caller, so maxCells is
// the only guard against exhausting memory. The caller must call free once
// it is done with the matrix.
func newMatrix(x, y []byte, maxCells int) (*matrix, error) {
	rows, cols := len(y)+1, len(x)+1
	n, ok := cellCount(rows, cols)
	if !ok || n > maxCells {
		return nil, errors.E(errors.Unavailable,
			fmt.Sprintf("align: %dx%d matrix exceeds the limit of %d cells", rows, cols, maxCells))
	}
	m := matrixPool.Get().(*matrix)
	if cap(m.data) < n {
		m.data = make([]cell, n)
	}
	m.nRow, m.nCol = rows, cols
	m.data = m.data[:n]
	m.x, m.y = x, y
	return m, nil
}

// free returns m to the pool. m must not be used afterwards.
func (m *matrix) free() {
	m.x, m.y = nil, nil
	matrixPool.Put(m)
}

func (m *matrix) at(i, j int) cell {
	return m.data[i*m.nCol+j]
}

// fill initializes the first row and column with pure gap costs and then
// computes every interior cell, row by row. Every distance must fit in
// maxDist.
func (m *matrix) fill(sub, gap int, policy TieBreak) {
	for j := 0; j < m.nCol; j++ {
		m.data[j] = cell{dist: int32(j * gap), dir: FromLeft}
	}
	for i := 0; i < m.nRow; i++ {
		m.data[i*m.nCol] = cell{dist: int32(i * gap), dir: FromTop}
	}
	for i := 1; i < m.nRow; i++ {
		m.computeRow(i, sub, gap, policy)
	}
}

// computeRow computes cells (i, 1) .. (i, nCol-1). Row i-1 and cell (i, 0)
// must already be set.
func (m *matrix) computeRow(i, sub, gap int, policy TieBreak) {
	yc := m.y[i-1]
	prev := m.data[(i-1)*m.nCol : i*m.nCol]
	cur := m.data[i*m.nCol : (i+1)*m.nCol]
	for j := 1; j < m.nCol; j++ {
		left := int(cur[j-1].dist) + gap
		top := int(prev[j].dist) + gap
		diagonal := int(prev[j-1].dist)
		if m.x[j-1] != yc {
			diagonal += sub
		}
		dir, dist := policy.choose(left, top, diagonal)
		cur[j] = cell{dist: int32(dist), dir: dir}
	}
}

// String renders the matrix as a table of "distance direction" entries,
// with x across the top and y down the side.
func (m *matrix) String() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "\t\t")
	for j := 0; j < m.nCol-1; j++ {
		fmt.Fprintf(w, "%c\t", m.x[j])
	}
	fmt.Fprintln(w)
	for i := 0; i < m.nRow; i++ {
		if i > 0 {
			fmt.Fprintf(w, "%c\t", m.y[i-1])
		} else {
			fmt.Fprint(w, "\t")
		}
		for j := 0; j < m.nCol; j++ {
			c := m.at(i, j)
			fmt.Fprint(w, strconv.Itoa(int(c.dist))+c.dir.arrow()+"\t")
		}
		fmt.Fprintln(w)
	}
	w.Flush() // nolint: errcheck
	return buf.String()
}
