// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/grailbio/align/align"
	"github.com/grailbio/align/align/worstcase"
	"github.com/grailbio/align/alignio"
	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdWorstCase() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "worstcase",
		Short:    "Align a generated worst-case pair",
		ArgsName: "[m n gap sub]",
		ArgsLong: `
m and n are the lengths of the two sequences, gap and sub the penalties.
Negative values are replaced by their absolute value. If fewer than four
arguments are given, all four are drawn at random. Extra arguments are
ignored.`,
	}
	seed := cmd.Flags.Int64("seed", 0, "Random seed used when parameters are generated. 0 uses the current time.")
	markup := cmd.Flags.String("markup", align.MarkupMasked.String(), `Mismatch rendering, either "masked" or "literal"`)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		m, err := align.ParseMarkup(*markup)
		if err != nil {
			return err
		}
		var (
			params    worstcase.Params
			generated = len(argv) < 4
		)
		if generated {
			s := *seed
			if s == 0 {
				s = time.Now().UnixNano()
			}
			params = worstcase.RandomParams(rand.New(rand.NewSource(s)))
		} else if params, err = worstcase.ParseParams(argv[:4]); err != nil {
			return err
		}
		return runWorstCase(env.Stdout, params, generated, m)
	})
	return cmd
}

func runWorstCase(out io.Writer, p worstcase.Params, generated bool, markup align.Markup) error {
	if generated {
		fmt.Fprintln(out, ">> Not enough parameters, generating with:")
	} else {
		fmt.Fprintln(out, ">> Received parameters, generating with:")
	}
	fmt.Fprintf(out, ">> \tString 1 length: %d\n", p.M)
	fmt.Fprintf(out, ">> \tString 2 length: %d\n", p.N)
	fmt.Fprintf(out, ">> \tGap penalty: %d\n", p.Gap)
	fmt.Fprintf(out, ">> \tReplacement penalty: %d\n", p.Sub)

	x, y := worstcase.Pair(p.M, p.N)
	opts := align.DefaultOpts
	opts.SubstitutionPenalty = p.Sub
	opts.GapPenalty = p.Gap
	opts.Markup = markup
	r, err := align.AlignOpts(align.String(x), align.String(y), opts)
	if err != nil {
		return err
	}
	a := alignio.FromResult(r)
	r.Release()
	if err := alignio.WriteText(out, x, y, a); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
