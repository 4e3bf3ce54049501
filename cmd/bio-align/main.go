// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	golog "log"

	"github.com/grailbio/align/align"
	"v.io/x/lib/cmdline"
)

// alignFlags are the alignment settings shared by all subcommands.
type alignFlags struct {
	sub      *int
	gap      *int
	markup   *string
	tieBreak *string
	maxCells *int
}

func newAlignFlags(fs *flag.FlagSet, defaultMarkup align.Markup) alignFlags {
	return alignFlags{
		sub:      fs.Int("sub", align.DefaultOpts.SubstitutionPenalty, "Substitution penalty"),
		gap:      fs.Int("gap", align.DefaultOpts.GapPenalty, "Gap penalty"),
		markup:   fs.String("markup", defaultMarkup.String(), `Mismatch rendering, either "masked" or "literal"`),
		tieBreak: fs.String("tiebreak", align.DefaultOpts.TieBreak.String(), `Tie-break policy, either "diagonal-top-left" or "diagonal-left-top"`),
		maxCells: fs.Int("max-cells", align.DefaultMaxCells, "Maximum number of DP matrix cells per alignment"),
	}
}

func (f alignFlags) opts() (align.Opts, error) {
	opts := align.Opts{
		SubstitutionPenalty: *f.sub,
		GapPenalty:          *f.gap,
		MaxCells:            *f.maxCells,
	}
	var err error
	if opts.Markup, err = align.ParseMarkup(*f.markup); err != nil {
		return opts, err
	}
	if opts.TieBreak, err = align.ParseTieBreak(*f.tieBreak); err != nil {
		return opts, err
	}
	return opts, nil
}

func newRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-align",
		Short:    "Compute minimum-cost sequence alignments",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdPair(),
			newCmdWorstCase(),
			newCmdBatch(),
		},
	}
}

func main() {
	golog.SetFlags(golog.Ldate | golog.Ltime | golog.Lmicroseconds | golog.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newRoot())
}
