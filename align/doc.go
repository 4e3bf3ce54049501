// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package align computes minimum-cost global alignments between two byte
// sequences under a substitution penalty and a linear gap penalty, and
// reconstructs the aligned sequences with explicit gap and mismatch markup.
//
// The computation fills the complete (len(y)+1) x (len(x)+1) edit distance
// matrix, x along the columns and y along the rows. Row 0 and column 0 hold
// pure gap costs. Every interior cell is the minimum of three candidates:
//
//	left     = d[i][j-1] + gap          (x[j-1] against a gap)
//	top      = d[i-1][j] + gap          (a gap against y[i-1])
//	diagonal = d[i-1][j-1] + sub or 0   (x[j-1] against y[i-1])
//
// and remembers which neighbor produced it. When candidates tie, the choice
// is made by a TieBreak policy. The default, DiagonalTopLeft, prefers the
// diagonal, then top, then left. The policy never changes the cost, but it
// does change the reconstructed strings, so fixtures that compare markup must
// name the policy they were produced with.
//
// Traceback starts at the bottom-right cell and follows the stored directions
// back to the origin. Each step decrements i+j by exactly one, so an alignment
// never has more than len(x)+len(y) columns.
//
// Results own pooled buffers and must be released exactly once:
//
//	r, err := align.Align(align.String("GCT"), align.String("ACTGGCT"), 10, 2)
//	if err != nil {
//	  ...
//	}
//	defer r.Release()
//	fmt.Println(r.AlignedX(), r.AlignedY(), r.Cost()) // ____GCT ACTGGCT 8
//
// Invalid arguments are reported as errors of kind errors.Invalid, and a
// matrix larger than Opts.MaxCells as errors.Unavailable (see
// github.com/grailbio/base/errors). Releasing a result twice, or reading a
// released result, panics.
package align
