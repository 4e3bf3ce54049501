// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

// Sequence is a read-only view over the bytes being aligned. The aligner
// never modifies or retains a Sequence; it must not change while Align runs.
type Sequence interface {
	// Len returns the number of bytes in the sequence.
	Len() int
	// At returns the i'th byte, 0 <= i < Len().
	At(i int) byte
}

// String adapts a Go string to Sequence.
type String string

// Len implements Sequence.
func (s String) Len() int { return len(s) }

// At implements Sequence.
func (s String) At(i int) byte { return s[i] }

// Bytes adapts a byte slice to Sequence. A nil Bytes is an empty sequence.
type Bytes []byte

// Len implements Sequence.
func (b Bytes) Len() int { return len(b) }

// At implements Sequence.
func (b Bytes) At(i int) byte { return b[i] }

// indexByte returns the index of the first occurrence of c in s, or -1.
func indexByte(s Sequence, c byte) int {
	n := s.Len()
	for i := 0; i < n; i++ {
		if s.At(i) == c {
			return i
		}
	}
	return -1
}

// bytesOf returns the contents of s as a byte slice. Bytes is returned
// without copying; the caller must not modify the result.
func bytesOf(s Sequence) []byte {
	switch v := s.(type) {
	case Bytes:
		return v
	case String:
		return []byte(v)
	}
	b := make([]byte, s.Len())
	for i := range b {
		b[i] = s.At(i)
	}
	return b
}
