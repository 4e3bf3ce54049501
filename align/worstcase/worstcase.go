// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package worstcase generates sequence pairs that force long alignments:
// two sequences that share almost nothing, so the optimal alignment is made
// mostly of gaps or substitutions and approaches len(x)+len(y) columns.
package worstcase

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/grailbio/base/errors"
)

const (
	// PatternX is the prefix of every generated x.
	PatternX = "ACGT"
	// PatternY is the prefix of every generated y.
	PatternY = "TGCA"

	// MaxRandomLen bounds the lengths drawn by RandomParams (exclusive).
	MaxRandomLen = 128
	// MaxRandomPenalty bounds the penalties drawn by RandomParams (exclusive).
	MaxRandomPenalty = 10
)

// Pattern returns a sequence of length n. The first min(n, len(pattern))
// bytes are copied from pattern; the rest repeat pattern's last byte.
func Pattern(n int, pattern string) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	k := copy(b, pattern)
	if k == 0 {
		return string(b)
	}
	last := pattern[len(pattern)-1]
	for i := k; i < n; i++ {
		b[i] = last
	}
	return string(b)
}

// Pair returns an x of length m and a y of length n built from PatternX and
// PatternY.
func Pair(m, n int) (x, y string) {
	return Pattern(m, PatternX), Pattern(n, PatternY)
}

// Params describes one worst-case run.
type Params struct {
	// M and N are the lengths of x and y.
	M, N int
	// Gap and Sub are the gap and substitution penalties.
	Gap, Sub int
}

// RandomParams draws lengths in [0, MaxRandomLen) and penalties in
// [0, MaxRandomPenalty).
func RandomParams(r *rand.Rand) Params {
	return Params{
		M:   r.Intn(MaxRandomLen),
		N:   r.Intn(MaxRandomLen),
		Gap: r.Intn(MaxRandomPenalty),
		Sub: r.Intn(MaxRandomPenalty),
	}
}

// ParseParams parses "M N GAP SUB". Negative values are replaced by their
// absolute value.
func ParseParams(args []string) (Params, error) {
	if len(args) != 4 {
		return Params{}, errors.E(errors.Invalid, fmt.Sprintf("worstcase: want 4 arguments (M N GAP SUB), got %d", len(args)))
	}
	var v [4]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Params{}, errors.E(errors.Invalid, err, fmt.Sprintf("worstcase: argument %d", i+1))
		}
		if n < 0 {
			n = -n
		}
		v[i] = n
	}
	return Params{M: v[0], N: v[1], Gap: v[2], Sub: v[3]}, nil
}
