// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Command bio-align computes minimum-cost alignments between sequences.

  bio-align pair [flags] X Y
    aligns X against Y and prints the markup and cost.

  bio-align worstcase [flags] [M N GAP SUB]
    builds an adversarial pair of lengths M and N from the "ACGT" and
    "TGCA" patterns (the first four bytes of the pattern followed by
    repetitions of its last byte) and aligns it with the given gap and
    substitution penalties. With fewer than four arguments the lengths are
    drawn from [0, 128) and the penalties from [0, 10).

  bio-align batch -query q.fa -target t.fa [-out out.tsv.gz]
    aligns every query sequence against every target sequence in parallel
    and writes one TSV row per pair (see github.com/grailbio/align/alignio).
    Identical (query, target) sequence pairs are aligned once.

  Penalties are set with -sub and -gap. The -markup flag chooses between
  "masked" output, where both sides of a substitution show '*', and
  "literal" output, which keeps the substituted bytes.
*/
package main
