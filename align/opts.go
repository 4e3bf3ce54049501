// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

const (
	// GapMarker fills the side of a column that skips a position.
	GapMarker byte = '_'
	// MismatchMarker replaces both bytes of a substituted column when the
	// markup style is MarkupMasked.
	MismatchMarker byte = '*'

	// DefaultMaxCells bounds the DP matrix of a single call (64Mi cells,
	// 512MiB).
	DefaultMaxCells = 1 << 26
)

// Markup selects how substituted columns are rendered in Result.AlignedX and
// Result.AlignedY. Result.Columns always keeps both original bytes.
type Markup uint8

const (
	// MarkupLiteral writes the original bytes at mismatched positions, so
	// removing GapMarker from the markup reproduces the input.
	MarkupLiteral Markup = iota
	// MarkupMasked writes MismatchMarker on both sides of a mismatched
	// column. This is the historical output format.
	MarkupMasked
)

func (m Markup) String() string {
	switch m {
	case MarkupLiteral:
		return "literal"
	case MarkupMasked:
		return "masked"
	}
	return fmt.Sprintf("Markup(%d)", m)
}

// ParseMarkup parses the output of Markup.String.
func ParseMarkup(s string) (Markup, error) {
	switch strings.ToLower(s) {
	case "literal":
		return MarkupLiteral, nil
	case "masked":
		return MarkupMasked, nil
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("align: unknown markup %q", s))
}

// Opts configures an alignment.
type Opts struct {
	// SubstitutionPenalty is charged when a column pairs two different
	// bytes. Must be >= 0.
	SubstitutionPenalty int
	// GapPenalty is charged for every column that pairs a byte with a gap.
	// Must be >= 0.
	GapPenalty int
	// TieBreak chooses between equal-cost predecessors.
	TieBreak TieBreak
	// Markup selects the mismatch rendering of the aligned strings.
	Markup Markup
	// MaxCells caps (len(x)+1)*(len(y)+1). Calls that need a larger matrix
	// fail with errors.Unavailable before allocating. Zero means DefaultMaxCells.
	MaxCells int
}

// DefaultOpts uses substitution penalty 10 and gap penalty 2.
var DefaultOpts = Opts{
	SubstitutionPenalty: 10,
	GapPenalty:          2,
	TieBreak:            DiagonalTopLeft,
	Markup:              MarkupLiteral,
	MaxCells:            DefaultMaxCells,
}

// validate checks opts and both sequences. It runs before any allocation.
func (o Opts) validate(x, y Sequence) error {
	if x == nil || y == nil {
		return errors.E(errors.Invalid, "align: nil sequence")
	}
	if o.SubstitutionPenalty < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("align: negative substitution penalty %d", o.SubstitutionPenalty))
	}
	if o.GapPenalty < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("align: negative gap penalty %d", o.GapPenalty))
	}
	if o.MaxCells < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("align: negative cell limit %d", o.MaxCells))
	}
	if o.TieBreak != DiagonalTopLeft && o.TieBreak != DiagonalLeftTop {
		return errors.E(errors.Invalid, fmt.Sprintf("align: unknown tie-break policy %v", o.TieBreak))
	}
	if o.Markup != MarkupLiteral && o.Markup != MarkupMasked {
		return errors.E(errors.Invalid, fmt.Sprintf("align: unknown markup %v", o.Markup))
	}
	for _, s := range []struct {
		name string
		seq  Sequence
	}{{"x", x}, {"y", y}} {
		if i := indexByte(s.seq, GapMarker); i >= 0 {
			return errors.E(errors.Invalid, fmt.Sprintf("align: %s contains the gap marker %q at %d", s.name, GapMarker, i))
		}
		if o.Markup == MarkupMasked {
			if i := indexByte(s.seq, MismatchMarker); i >= 0 {
				return errors.E(errors.Invalid, fmt.Sprintf("align: %s contains the mismatch marker %q at %d", s.name, MismatchMarker, i))
			}
		}
	}
	return nil
}

func (o Opts) maxCells() int {
	if o.MaxCells == 0 {
		return DefaultMaxCells
	}
	return o.MaxCells
}
