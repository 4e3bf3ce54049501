// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fasta_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/align/encoding/fasta"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
)

var fastaData = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 A viral sequence\n" + "acgt\r\n" + "\n" + "ACGT\n"

func TestRead(t *testing.T) {
	records, err := fasta.Read(strings.NewReader(fastaData), fasta.Opts{})
	assert.NoError(t, err)
	expect.EQ(t, records, []fasta.Record{
		{Name: "seq1", Seq: "ACGTACGTACGT"},
		{Name: "seq2", Seq: "acgtACGT"},
	})

	records, err = fasta.Read(strings.NewReader(fastaData), fasta.Opts{Upper: true})
	assert.NoError(t, err)
	expect.EQ(t, records[1].Seq, "ACGTACGT")

	records, err = fasta.Read(strings.NewReader(""), fasta.Opts{})
	assert.NoError(t, err)
	expect.EQ(t, len(records), 0)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		data string
		opts fasta.Opts
		want string
	}{
		{"ACGT\n>seq1\nACGT\n", fasta.Opts{}, "before the first"},
		{">seq1\nACGT\n>seq1\nAC\n", fasta.Opts{}, "duplicate sequence name seq1"},
		{">\nACGT\n", fasta.Opts{}, "missing sequence name"},
		{">seq1\n>seq2\nACGT\n", fasta.Opts{}, "sequence seq1 is empty"},
	}
	for _, test := range tests {
		_, err := fasta.Read(strings.NewReader(test.data), test.opts)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%q: got error %v, want %q", test.data, err, test.want)
		}
	}
	records, err := fasta.Read(strings.NewReader(">seq1\n>seq2\nACGT\n"), fasta.Opts{AllowEmpty: true})
	assert.NoError(t, err)
	expect.EQ(t, records, []fasta.Record{{Name: "seq1"}, {Name: "seq2", Seq: "ACGT"}})
}

func TestReadPath(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := vcontext.Background()

	plain := filepath.Join(tempDir, "in.fa")
	assert.NoError(t, ioutil.WriteFile(plain, []byte(fastaData), 0644))
	records, err := fasta.ReadPath(ctx, plain, fasta.Opts{})
	assert.NoError(t, err)
	expect.EQ(t, len(records), 2)

	gz := filepath.Join(tempDir, "in.fa.gz")
	f, err := os.Create(gz)
	assert.NoError(t, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(fastaData))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, f.Close())
	records, err = fasta.ReadPath(ctx, gz, fasta.Opts{Upper: true})
	assert.NoError(t, err)
	expect.EQ(t, records[1], fasta.Record{Name: "seq2", Seq: "ACGTACGT"})

	_, err = fasta.ReadPath(ctx, filepath.Join(tempDir, "missing.fa"), fasta.Opts{})
	expect.True(t, err != nil)
}
