// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package alignio

import (
	"fmt"
	"io"

	"github.com/grailbio/align/align"
)

// Alignment is an owned copy of the parts of an align.Result that are
// written out. Unlike a Result it needs no release.
type Alignment struct {
	Cost     int
	AlignedX string
	AlignedY string
	Cigar    string
}

// FromResult copies r. r may be released afterwards.
func FromResult(r *align.Result) Alignment {
	return Alignment{
		Cost:     r.Cost(),
		AlignedX: r.AlignedX(),
		AlignedY: r.AlignedY(),
		Cigar:    r.Cigar().String(),
	}
}

// WriteText writes x, y and their alignment in the human-readable format
// of the worst-case driver.
func WriteText(w io.Writer, x, y string, a Alignment) error {
	_, err := fmt.Fprintf(w, "Aligning %s and %s\nx: %s\ny: %s\ncost = %d\n", x, y, a.AlignedX, a.AlignedY, a.Cost)
	return err
}
