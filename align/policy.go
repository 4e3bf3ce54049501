// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// Direction records which neighbor produced a cell's minimum.
type Direction uint8

const (
	// FromLeft means x[j-1] was paired with a gap; traceback moves to (i, j-1).
	FromLeft Direction = iota
	// FromTop means a gap was paired with y[i-1]; traceback moves to (i-1, j).
	FromTop
	// FromDiagonal means x[j-1] was paired with y[i-1]; traceback moves to
	// (i-1, j-1).
	FromDiagonal
)

func (d Direction) String() string {
	switch d {
	case FromLeft:
		return "left"
	case FromTop:
		return "top"
	case FromDiagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// arrow is the one-character rendering used by Matrix.String.
func (d Direction) arrow() string {
	switch d {
	case FromLeft:
		return "-"
	case FromTop:
		return "|"
	case FromDiagonal:
		return "\\"
	}
	return "?"
}

// TieBreak is the policy that picks a direction when several candidates share
// the minimum cost. The cost of the alignment is the same under every policy;
// the markup is not.
type TieBreak uint8

const (
	// DiagonalTopLeft compares left against top first, giving ties to top,
	// then gives ties between that winner and the diagonal to the diagonal.
	// The overall priority is diagonal > top > left. Existing fixture output
	// was produced with this policy.
	DiagonalTopLeft TieBreak = iota
	// DiagonalLeftTop is DiagonalTopLeft with ties between left and top given
	// to left: diagonal > left > top.
	DiagonalLeftTop
)

func (p TieBreak) String() string {
	switch p {
	case DiagonalTopLeft:
		return "diagonal-top-left"
	case DiagonalLeftTop:
		return "diagonal-left-top"
	}
	return fmt.Sprintf("TieBreak(%d)", p)
}

// ParseTieBreak parses the output of TieBreak.String.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "diagonal-top-left", "":
		return DiagonalTopLeft, nil
	case "diagonal-left-top":
		return DiagonalLeftTop, nil
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("align: unknown tie-break policy %q", s))
}

// choose returns the winning direction and its cost.
func (p TieBreak) choose(left, top, diagonal int) (Direction, int) {
	var (
		dir  Direction
		cost int
	)
	if left < top || (p == DiagonalLeftTop && left == top) {
		dir, cost = FromLeft, left
	} else {
		dir, cost = FromTop, top
	}
	if cost < diagonal {
		return dir, cost
	}
	return FromDiagonal, diagonal
}
