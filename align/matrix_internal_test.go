// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"math/rand"
	"strings"
	"testing"
	"unsafe"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		left, top, diagonal int
		policy              TieBreak
		want                Direction
		wantCost            int
	}{
		{1, 2, 3, DiagonalTopLeft, FromLeft, 1},
		{2, 1, 3, DiagonalTopLeft, FromTop, 1},
		{3, 2, 1, DiagonalTopLeft, FromDiagonal, 1},
		// Ties between left and top go to top...
		{2, 2, 3, DiagonalTopLeft, FromTop, 2},
		// ...or left, depending on the policy.
		{2, 2, 3, DiagonalLeftTop, FromLeft, 2},
		// Ties with the diagonal always go to the diagonal.
		{2, 3, 2, DiagonalTopLeft, FromDiagonal, 2},
		{3, 2, 2, DiagonalTopLeft, FromDiagonal, 2},
		{2, 2, 2, DiagonalTopLeft, FromDiagonal, 2},
		{2, 2, 2, DiagonalLeftTop, FromDiagonal, 2},
	}
	for _, test := range tests {
		dir, cost := test.policy.choose(test.left, test.top, test.diagonal)
		expect.EQ(t, dir, test.want, "%+v", test)
		expect.EQ(t, cost, test.wantCost, "%+v", test)
	}
}

func TestCellCount(t *testing.T) {
	n, ok := cellCount(3, 4)
	expect.True(t, ok)
	expect.EQ(t, n, 12)
	_, ok = cellCount(maxInt/2+1, 2)
	expect.False(t, ok)
	n, ok = cellCount(0, maxInt)
	expect.True(t, ok)
	expect.EQ(t, n, 0)
}

func TestMatrixLimit(t *testing.T) {
	// 8193x8193 cells, just over DefaultMaxCells.
	x := make([]byte, 8192)
	m, err := newMatrix(x, x, DefaultMaxCells)
	expect.True(t, m == nil)
	expect.True(t, errors.Is(errors.Unavailable, err), "%v", err)

	m, err = newMatrix(x[:1], x, maxInt)
	assert.NoError(t, err)
	expect.EQ(t, len(m.data), 2*8193)
	m.free()
	expect.EQ(t, unsafe.Sizeof(cell{}), uintptr(8))
}

func buildMatrix(t *testing.T, x, y string, sub, gap int, policy TieBreak) *matrix {
	m, err := newMatrix([]byte(x), []byte(y), DefaultMaxCells)
	assert.NoError(t, err)
	m.fill(sub, gap, policy)
	return m
}

// checkMatrix verifies the borders and that every interior cell holds the
// minimum of its candidates, with the direction the policy picks.
func checkMatrix(t *testing.T, m *matrix, sub, gap int, policy TieBreak) {
	for j := 0; j < m.nCol; j++ {
		expect.EQ(t, int(m.at(0, j).dist), j*gap)
	}
	for i := 0; i < m.nRow; i++ {
		expect.EQ(t, int(m.at(i, 0).dist), i*gap)
	}
	for j := 1; j < m.nCol; j++ {
		expect.EQ(t, m.at(0, j).dir, FromLeft)
	}
	for i := 0; i < m.nRow; i++ {
		expect.EQ(t, m.at(i, 0).dir, FromTop)
	}
	for i := 1; i < m.nRow; i++ {
		for j := 1; j < m.nCol; j++ {
			left := int(m.at(i, j-1).dist) + gap
			top := int(m.at(i-1, j).dist) + gap
			diagonal := int(m.at(i-1, j-1).dist)
			if m.x[j-1] != m.y[i-1] {
				diagonal += sub
			}
			min := left
			if top < min {
				min = top
			}
			if diagonal < min {
				min = diagonal
			}
			c := m.at(i, j)
			expect.EQ(t, int(c.dist), min, "cell (%d, %d)", i, j)
			switch {
			case diagonal == min:
				expect.EQ(t, c.dir, FromDiagonal, "cell (%d, %d)", i, j)
			case left == min && top == min && policy == DiagonalTopLeft:
				expect.EQ(t, c.dir, FromTop, "cell (%d, %d)", i, j)
			case left == min && top == min:
				expect.EQ(t, c.dir, FromLeft, "cell (%d, %d)", i, j)
			case top == min:
				expect.EQ(t, c.dir, FromTop, "cell (%d, %d)", i, j)
			default:
				expect.EQ(t, c.dir, FromLeft, "cell (%d, %d)", i, j)
			}
		}
	}
}

func TestMatrixFill(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	gen := func() string {
		b := make([]byte, rnd.Intn(20))
		for i := range b {
			b[i] = "ACGT"[rnd.Intn(4)]
		}
		return string(b)
	}
	for iter := 0; iter < 200; iter++ {
		x, y := gen(), gen()
		sub, gap := rnd.Intn(8), rnd.Intn(8)
		for _, policy := range []TieBreak{DiagonalTopLeft, DiagonalLeftTop} {
			m := buildMatrix(t, x, y, sub, gap, policy)
			checkMatrix(t, m, sub, gap, policy)
			n := m.tracebackLen()
			expect.True(t, n <= len(x)+len(y), "x=%q y=%q n=%d", x, y, n)
			expect.True(t, n >= len(x) && n >= len(y), "x=%q y=%q n=%d", x, y, n)
			m.free()
		}
	}
}

func TestMatrixString(t *testing.T) {
	m := buildMatrix(t, "CG", "CA", 10, 2, DiagonalTopLeft)
	defer m.free()
	s := m.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	expect.EQ(t, len(lines), 4)
	expect.EQ(t, strings.Fields(lines[0]), []string{"C", "G"})
	expect.EQ(t, strings.Fields(lines[1]), []string{"0|", "2-", "4-"})
	expect.EQ(t, strings.Fields(lines[2]), []string{"C", "2|", `0\`, "2-"})
	expect.EQ(t, strings.Fields(lines[3]), []string{"A", "4|", "2|", "4|"})
}

func TestMatrixReuse(t *testing.T) {
	big := buildMatrix(t, "ACGTACGTAC", "ACGTACGTAC", 1, 1, DiagonalTopLeft)
	big.free()
	// A pooled buffer is resliced, and every cell is overwritten by fill.
	small := buildMatrix(t, "AC", "GT", 1, 1, DiagonalTopLeft)
	defer small.free()
	expect.EQ(t, len(small.data), 9)
	checkMatrix(t, small, 1, 1, DiagonalTopLeft)
}
