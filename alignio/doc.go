// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package alignio writes and reads alignment results.
//
// Alignments are stored as TSV with one row per (query, target) pair:
//
//	#QUERY	TARGET	COST	ALIGNED_QUERY	ALIGNED_TARGET	CIGAR
//	read1	ref1	4	C_A	CG_	1=1D1I
//
// The target is the x (reference) side of the alignment and the query the y
// side, so the CIGAR describes the query relative to the target.
package alignio
