// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package alignio

import (
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
)

const header = "#QUERY\tTARGET\tCOST\tALIGNED_QUERY\tALIGNED_TARGET\tCIGAR"

// Record is one row of an alignment TSV.
type Record struct {
	Query         string
	Target        string
	Cost          int
	AlignedQuery  string
	AlignedTarget string
	Cigar         string
}

// NewRecord builds the row for query aligned against target.
func NewRecord(query, target string, a Alignment) Record {
	return Record{
		Query:         query,
		Target:        target,
		Cost:          a.Cost,
		AlignedQuery:  a.AlignedY,
		AlignedTarget: a.AlignedX,
		Cigar:         a.Cigar,
	}
}

// Writer writes alignment rows. The header is written before the first row.
// Writer is not thread-safe.
type Writer struct {
	w             *tsv.Writer
	headerWritten bool
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: tsv.NewWriter(w)}
}

// Write appends one row.
func (w *Writer) Write(rec Record) error {
	if !w.headerWritten {
		w.w.WriteString(header)
		if err := w.w.EndLine(); err != nil {
			return err
		}
		w.headerWritten = true
	}
	w.w.WriteString(rec.Query)
	w.w.WriteString(rec.Target)
	w.w.WriteString(strconv.Itoa(rec.Cost))
	w.w.WriteString(rec.AlignedQuery)
	w.w.WriteString(rec.AlignedTarget)
	w.w.WriteString(rec.Cigar)
	return w.w.EndLine()
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// ReadRecords reads every row written by Writer.
func ReadRecords(r io.Reader) ([]Record, error) {
	reader := tsv.NewReader(r)
	reader.Comment = '#'
	var recs []Record
	for {
		var rec Record
		if err := reader.Read(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
