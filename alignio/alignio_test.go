// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package alignio_test

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/grailbio/align/align"
	"github.com/grailbio/align/alignio"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func alignment(t *testing.T, x, y string) alignio.Alignment {
	r, err := align.Align(align.String(x), align.String(y), 10, 2)
	assert.NoError(t, err)
	defer r.Release()
	return alignio.FromResult(r)
}

func TestFromResult(t *testing.T) {
	expect.EQ(t, alignment(t, "CG", "CA"), alignio.Alignment{
		Cost:     4,
		AlignedX: "CG_",
		AlignedY: "C_A",
		Cigar:    "1=1D1I",
	})
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, alignio.WriteText(&buf, "GCT", "ACTGGCT", alignment(t, "GCT", "ACTGGCT")))
	expect.EQ(t, buf.String(), "Aligning GCT and ACTGGCT\nx: ____GCT\ny: ACTGGCT\ncost = 8\n")
}

func TestTSV(t *testing.T) {
	recs := []alignio.Record{
		alignio.NewRecord("read1", "ref1", alignment(t, "CG", "CA")),
		alignio.NewRecord("read2", "ref1", alignment(t, "CG", "CG")),
	}
	expect.EQ(t, recs[0].AlignedQuery, "C_A")
	expect.EQ(t, recs[0].AlignedTarget, "CG_")

	var buf bytes.Buffer
	w := alignio.NewWriter(&buf)
	for _, rec := range recs {
		assert.NoError(t, w.Write(rec))
	}
	assert.NoError(t, w.Flush())
	expect.EQ(t, buf.String(),
		"#QUERY\tTARGET\tCOST\tALIGNED_QUERY\tALIGNED_TARGET\tCIGAR\n"+
			"read1\tref1\t4\tC_A\tCG_\t1=1D1I\n"+
			"read2\tref1\t0\tCG\tCG\t2=\n")

	got, err := alignio.ReadRecords(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	expect.EQ(t, got, recs)
}

func TestMemo(t *testing.T) {
	m := alignio.NewMemo()
	_, ok := m.Get("CG", "CA")
	expect.False(t, ok)

	a := alignment(t, "CG", "CA")
	m.Put("CG", "CA", a)
	got, ok := m.Get("CG", "CA")
	expect.True(t, ok)
	expect.EQ(t, got, a)
	// The pair is ordered.
	_, ok = m.Get("CA", "CG")
	expect.False(t, ok)
	expect.EQ(t, m.Hits(), 1)

	b := alignment(t, "CA", "CG")
	m.Put("CG", "CA", b)
	got, _ = m.Get("CG", "CA")
	expect.EQ(t, got, b)
}

func TestMemoConcurrent(t *testing.T) {
	m := alignio.NewMemo()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				x := fmt.Sprintf("A%dC", i)
				m.Put(x, "G", alignio.Alignment{Cost: i})
				a, ok := m.Get(x, "G")
				require.True(t, ok)
				require.Equal(t, i, a.Cost)
			}
		}(g)
	}
	wg.Wait()
	expect.EQ(t, m.Hits(), 800)
}
