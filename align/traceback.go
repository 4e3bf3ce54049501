// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// Op is the edit operation of one alignment column. x is treated as the
// reference: OpInsert adds a byte of y, OpDelete drops a byte of x.
type Op uint8

const (
	// OpMatch pairs two equal bytes.
	OpMatch Op = iota
	// OpMismatch pairs two different bytes.
	OpMismatch
	// OpInsert pairs a gap in x with a byte of y.
	OpInsert
	// OpDelete pairs a byte of x with a gap in y.
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpMatch:
		return "match"
	case OpMismatch:
		return "mismatch"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("Op(%d)", o)
}

// Column is one position of an alignment. X and Y are the original bytes;
// the side that skips holds GapMarker. Mismatched columns keep both bytes
// regardless of the Markup style.
type Column struct {
	Op   Op
	X, Y byte
}

// tracebackLen walks the direction pointers from the bottom-right cell to the
// origin and returns the number of columns. Every step decreases i+j by one,
// so the result is at most len(x)+len(y).
func (m *matrix) tracebackLen() int {
	i, j, n := m.nRow-1, m.nCol-1, 0
	for i > 0 || j > 0 {
		switch m.at(i, j).dir {
		case FromDiagonal:
			i--
			j--
		case FromTop:
			i--
		case FromLeft:
			j--
		}
		n++
	}
	return n
}

// traceback fills r with the alignment encoded in m. r's buffers must have
// length tracebackLen(). The walk runs from the end of the alignment to the
// start, so columns are written from the back of the buffers.
func (m *matrix) traceback(markup Markup, r *Result) {
	i, j := m.nRow-1, m.nCol-1
	z := len(r.cols)
	for i > 0 || j > 0 {
		z--
		var c Column
		switch m.at(i, j).dir {
		case FromDiagonal:
			c = Column{Op: OpMatch, X: m.x[j-1], Y: m.y[i-1]}
			if c.X != c.Y {
				c.Op = OpMismatch
			}
			i--
			j--
		case FromTop:
			c = Column{Op: OpInsert, X: GapMarker, Y: m.y[i-1]}
			i--
		case FromLeft:
			c = Column{Op: OpDelete, X: m.x[j-1], Y: GapMarker}
			j--
		}
		if z < 0 {
			log.Panicf("align: traceback of %dx%d matrix overran %d columns", m.nRow, m.nCol, len(r.cols))
		}
		r.cols[z] = c
		r.x[z], r.y[z] = c.X, c.Y
		if c.Op == OpMismatch && markup == MarkupMasked {
			r.x[z], r.y[z] = MismatchMarker, MismatchMarker
		}
	}
	if z != 0 {
		log.Panicf("align: traceback of %dx%d matrix left %d unwritten columns", m.nRow, m.nCol, z)
	}
}
