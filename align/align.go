// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// Align computes the minimum-cost alignment of x and y with the given
// penalties and the remaining settings of DefaultOpts.
func Align(x, y Sequence, substitutionPenalty, gapPenalty int) (*Result, error) {
	opts := DefaultOpts
	opts.SubstitutionPenalty = substitutionPenalty
	opts.GapPenalty = gapPenalty
	return AlignOpts(x, y, opts)
}

// AlignOpts computes the minimum-cost alignment of x and y. x is laid out
// along the matrix columns and y along the rows. On success the caller owns
// the Result and must Release it.
func AlignOpts(x, y Sequence, opts Opts) (*Result, error) {
	if err := opts.validate(x, y); err != nil {
		return nil, err
	}
	// Every cell is bounded by (i+j)*max(sub, gap).
	maxPenalty := opts.GapPenalty
	if opts.SubstitutionPenalty > maxPenalty {
		maxPenalty = opts.SubstitutionPenalty
	}
	if steps := x.Len() + y.Len(); steps > 0 && maxPenalty > maxDist/steps {
		return nil, errors.E(errors.Invalid,
			fmt.Sprintf("align: penalty %d overflows the cost of a %d+%d alignment", maxPenalty, x.Len(), y.Len()))
	}
	xb, yb := bytesOf(x), bytesOf(y)
	m, err := newMatrix(xb, yb, opts.maxCells())
	if err != nil {
		return nil, err
	}
	defer m.free()
	if log.At(log.Debug) {
		log.Debug.Printf("align: %dx%d matrix, sub=%d gap=%d policy=%v",
			m.nRow, m.nCol, opts.SubstitutionPenalty, opts.GapPenalty, opts.TieBreak)
	}
	m.fill(opts.SubstitutionPenalty, opts.GapPenalty, opts.TieBreak)

	r := newResult(m.tracebackLen())
	r.cost = int(m.at(m.nRow-1, m.nCol-1).dist)
	m.traceback(opts.Markup, r)
	return r, nil
}

// Pair is one input of AlignAll.
type Pair struct {
	X, Y Sequence
}

// AlignAll aligns every pair with opts, running up to parallelism
// alignments at once. Results are returned in input order. If any
// alignment fails, the results obtained so far are released and the first
// error is returned.
func AlignAll(pairs []Pair, opts Opts, parallelism int) ([]*Result, error) {
	results := make([]*Result, len(pairs))
	if len(pairs) == 0 {
		return results, nil
	}
	if parallelism <= 0 {
		parallelism = 1
	}
	if parallelism > len(pairs) {
		parallelism = len(pairs)
	}
	err := traverse.Each(parallelism, func(jobIdx int) error {
		for k := jobIdx; k < len(pairs); k += parallelism {
			r, err := AlignOpts(pairs[k].X, pairs[k].Y, opts)
			if err != nil {
				return errors.E(err, fmt.Sprintf("align: pair %d", k))
			}
			results[k] = r
		}
		return nil
	})
	if err != nil {
		for _, r := range results {
			if r != nil {
				r.Release()
			}
		}
		return nil, err
	}
	return results, nil
}
