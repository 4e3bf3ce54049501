// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"sync"

	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/sam"
)

// resultMagic marks a live Result. Release clears it so that later use of
// the Result can be detected.
const resultMagic = uint64(0x616c69676e726573)

// Result is the alignment produced by one Align call. It owns pooled
// buffers: call Release exactly once when done. Every method panics once
// the Result has been released.
type Result struct {
	magic uint64
	bufs  *resultBufs
	x, y  []byte
	cols  []Column
	cost  int
}

type resultBufs struct {
	x, y []byte
	cols []Column
}

var resultPool = sync.Pool{
	New: func() interface{} { return &resultBufs{} },
}

// newResult returns a live Result with n-column buffers.
func newResult(n int) *Result {
	b := resultPool.Get().(*resultBufs)
	if cap(b.cols) < n {
		b.x = make([]byte, n)
		b.y = make([]byte, n)
		b.cols = make([]Column, n)
	}
	return &Result{
		magic: resultMagic,
		bufs:  b,
		x:     b.x[:n],
		y:     b.y[:n],
		cols:  b.cols[:n],
	}
}

func (r *Result) check(op string) {
	if r == nil {
		log.Panicf("align: %s on nil Result", op)
	}
	if r.magic != resultMagic {
		log.Panicf("align: %s on released Result %p", op, r)
	}
}

// Release returns the Result's buffers to the pool. Releasing a Result twice
// is a programming error and panics.
func (r *Result) Release() {
	r.check("Release")
	r.magic = 0
	b := r.bufs
	r.bufs, r.x, r.y, r.cols = nil, nil, nil, nil
	resultPool.Put(b)
}

// Cost returns the total penalty of the alignment.
func (r *Result) Cost() int {
	r.check("Cost")
	return r.cost
}

// Len returns the number of alignment columns. It never exceeds
// len(x)+len(y).
func (r *Result) Len() int {
	r.check("Len")
	return len(r.cols)
}

// AlignedX returns the markup of x: x's bytes with GapMarker wherever y has
// a byte that x lacks.
func (r *Result) AlignedX() string {
	r.check("AlignedX")
	return string(r.x)
}

// AlignedY returns the markup of y.
func (r *Result) AlignedY() string {
	r.check("AlignedY")
	return string(r.y)
}

// Columns returns a copy of the alignment columns in left-to-right order.
func (r *Result) Columns() []Column {
	r.check("Columns")
	c := make([]Column, len(r.cols))
	copy(c, r.cols)
	return c
}

var cigarOps = [...]sam.CigarOpType{
	OpMatch:    sam.CigarEqual,
	OpMismatch: sam.CigarMismatch,
	OpInsert:   sam.CigarInsertion,
	OpDelete:   sam.CigarDeletion,
}

// Cigar returns the alignment as a CIGAR with x as the reference, using the
// extended '=' and 'X' operations. Consecutive columns with the same
// operation are merged.
func (r *Result) Cigar() sam.Cigar {
	r.check("Cigar")
	var cigar sam.Cigar
	for k := 0; k < len(r.cols); {
		op := r.cols[k].Op
		n := 1
		for k+n < len(r.cols) && r.cols[k+n].Op == op {
			n++
		}
		cigar = append(cigar, sam.NewCigarOp(cigarOps[op], n))
		k += n
	}
	return cigar
}

// String returns the historical three-field rendering of the result.
func (r *Result) String() string {
	r.check("String")
	return fmt.Sprintf("x: %s; y: %s; cost = %d", r.x, r.y, r.cost)
}
