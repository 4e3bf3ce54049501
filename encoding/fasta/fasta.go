// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fasta reads FASTA files into named sequences for alignment.
// FASTA files consist of a number of named sequences that may be interrupted
// by newlines.  For example:
//
// >seq1
// ACGTAC
// GAGGAC
// >seq2 a second sequence
// ACGT
//
// Sequence names are the stretch of characters excluding spaces immediately
// after '>'.  Any text after a space is ignored, so '>seq2 a second sequence'
// becomes 'seq2'.
package fasta

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

const (
	maxLineSize = 1024 * 1024 * 300 // 300 MB
)

// Record is one named sequence.
type Record struct {
	Name string
	Seq  string
}

// Opts controls parsing.
type Opts struct {
	// Upper converts sequences to upper case.
	Upper bool
	// AllowEmpty keeps records with no sequence lines.
	AllowEmpty bool
}

// Read parses all records from r, in order of appearance. Record names must
// be unique.
func Read(r io.Reader, opts Opts) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)
	var (
		records []Record
		seen    = map[string]bool{}
		name    string
		inRec   bool
		seq     strings.Builder
		lineno  int
	)
	flush := func() error {
		if !inRec {
			return nil
		}
		if seq.Len() == 0 && !opts.AllowEmpty {
			return errors.Errorf("sequence %s is empty", name)
		}
		s := seq.String()
		if opts.Upper {
			s = strings.ToUpper(s)
		}
		records = append(records, Record{Name: name, Seq: s})
		seq.Reset()
		return nil
	}
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			if err := flush(); err != nil {
				return nil, err
			}
			name = strings.Split(line[1:], " ")[0]
			if name == "" {
				return nil, errors.Errorf("line %d: missing sequence name", lineno)
			}
			if seen[name] {
				return nil, errors.Errorf("line %d: duplicate sequence name %s", lineno, name)
			}
			seen[name] = true
			inRec = true
			continue
		}
		if !inRec {
			return nil, errors.Errorf("line %d: sequence data before the first '>' line", lineno)
		}
		seq.WriteString(line)
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadPath reads the FASTA file at path, which may be any path supported by
// grailbio/base/file. Compressed files are decompressed transparently.
func ReadPath(ctx context.Context, path string, opts Opts) (records []Record, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		defer u.Close() // nolint: errcheck
		r = u
	}
	if records, err = Read(r, opts); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return records, nil
}
