// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/grailbio/align/align"
	"github.com/grailbio/align/alignio"
	"github.com/grailbio/align/encoding/fasta"
	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"v.io/x/lib/cmdline"
)

type batchOpts struct {
	queryPath   string
	targetPath  string
	outPath     string
	parallelism int
	upper       bool
	align       align.Opts
}

func newCmdBatch() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "batch",
		Short: "Align every query sequence against every target sequence",
	}
	var opts batchOpts
	cmd.Flags.StringVar(&opts.queryPath, "query", "", "Query FASTA file, optionally compressed")
	cmd.Flags.StringVar(&opts.targetPath, "target", "", "Target FASTA file, optionally compressed")
	cmd.Flags.StringVar(&opts.outPath, "out", "", "Output TSV path. Empty writes to stdout. A .gz suffix compresses the output.")
	cmd.Flags.IntVar(&opts.parallelism, "parallelism", runtime.NumCPU(), "Number of alignments to run in parallel")
	cmd.Flags.BoolVar(&opts.upper, "upper", false, "Convert sequences to upper case before aligning")
	flags := newAlignFlags(&cmd.Flags, align.MarkupLiteral)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return env.UsageErrorf("batch takes no arguments, but got %v", argv)
		}
		if opts.queryPath == "" || opts.targetPath == "" {
			return env.UsageErrorf("batch: -query and -target are required")
		}
		var err error
		if opts.align, err = flags.opts(); err != nil {
			return err
		}
		return runBatch(vcontext.Background(), env.Stdout, opts)
	})
	return cmd
}

// alignBatch aligns every query against every target. Rows are returned in
// query-major order. Jobs stride over all pairs, so a single query against
// many targets still runs in parallel.
func alignBatch(queries, targets []fasta.Record, opts align.Opts, parallelism int, memo *alignio.Memo) ([]alignio.Record, error) {
	rows := make([]alignio.Record, len(queries)*len(targets))
	if len(rows) == 0 {
		return rows, nil
	}
	if parallelism <= 0 {
		parallelism = 1
	}
	if parallelism > len(rows) {
		parallelism = len(rows)
	}
	err := traverse.Each(parallelism, func(jobIdx int) error {
		for k := jobIdx; k < len(rows); k += parallelism {
			q, t := queries[k/len(targets)], targets[k%len(targets)]
			a, ok := memo.Get(t.Seq, q.Seq)
			if !ok {
				r, err := align.AlignOpts(align.String(t.Seq), align.String(q.Seq), opts)
				if err != nil {
					return errors.E(err, fmt.Sprintf("aligning query %s against target %s", q.Name, t.Name))
				}
				a = alignio.FromResult(r)
				r.Release()
				memo.Put(t.Seq, q.Seq, a)
			}
			rows[k] = alignio.NewRecord(q.Name, t.Name, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func runBatch(ctx context.Context, stdout io.Writer, opts batchOpts) (err error) {
	fopts := fasta.Opts{Upper: opts.upper}
	queries, err := fasta.ReadPath(ctx, opts.queryPath, fopts)
	if err != nil {
		return err
	}
	targets, err := fasta.ReadPath(ctx, opts.targetPath, fopts)
	if err != nil {
		return err
	}
	log.Printf("batch: aligning %d queries against %d targets", len(queries), len(targets))
	memo := alignio.NewMemo()
	rows, err := alignBatch(queries, targets, opts.align, opts.parallelism, memo)
	if err != nil {
		return err
	}
	log.Printf("batch: %d alignments, %d served from duplicates", len(rows), memo.Hits())

	var out io.Writer = stdout
	if opts.outPath != "" {
		var f file.File
		if f, err = file.Create(ctx, opts.outPath); err != nil {
			return err
		}
		defer func() {
			if e := f.Close(ctx); e != nil && err == nil {
				err = e
			}
		}()
		out = f.Writer(ctx)
		if strings.HasSuffix(opts.outPath, ".gz") {
			gz := gzip.NewWriter(out)
			defer func() {
				if e := gz.Close(); e != nil && err == nil {
					err = e
				}
			}()
			out = gz
		}
	}
	w := alignio.NewWriter(out)
	for _, row := range rows {
		if err = w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}
