// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/grailbio/align/align"
	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"
)

func newCmdPair() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "pair",
		Short:    "Align two sequences given on the command line",
		ArgsName: "x y",
	}
	flags := newAlignFlags(&cmd.Flags, align.MarkupMasked)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return env.UsageErrorf("pair takes two sequences, but got %v", argv)
		}
		opts, err := flags.opts()
		if err != nil {
			return err
		}
		return runPair(env.Stdout, argv[0], argv[1], opts)
	})
	return cmd
}

func runPair(out io.Writer, x, y string, opts align.Opts) error {
	r, err := align.AlignOpts(align.String(x), align.String(y), opts)
	if err != nil {
		return err
	}
	defer r.Release()
	_, err = fmt.Fprintf(out, ">>> Aligning '%s' and '%s'\n%v\n", x, y, r)
	return err
}
