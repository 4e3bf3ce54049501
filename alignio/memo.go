// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package alignio

import (
	"sync"

	farm "github.com/dgryski/go-farm"
)

type memoEntry struct {
	x, y string
	a    Alignment
}

// Memo remembers alignments of (x, y) pairs so that duplicate pairs in one
// run are aligned once. Keys are farm hashes of the pair; colliding pairs
// are told apart by comparing the sequences. Memo is thread-safe.
type Memo struct {
	mu      sync.Mutex
	entries map[uint64][]memoEntry
	hits    int
}

// NewMemo creates an empty Memo.
func NewMemo() *Memo {
	return &Memo{entries: map[uint64][]memoEntry{}}
}

func pairKey(x, y string) uint64 {
	return farm.Hash64WithSeed([]byte(y), farm.Hash64([]byte(x)))
}

// Get returns the alignment stored for (x, y).
func (m *Memo) Get(x, y string) (Alignment, bool) {
	key := pairKey(x, y)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries[key] {
		if e.x == x && e.y == y {
			m.hits++
			return e.a, true
		}
	}
	return Alignment{}, false
}

// Put stores the alignment of (x, y), replacing any previous value.
func (m *Memo) Put(x, y string, a Alignment) {
	key := pairKey(x, y)
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.entries[key]
	for i := range list {
		if list[i].x == x && list[i].y == y {
			list[i].a = a
			return
		}
	}
	m.entries[key] = append(list, memoEntry{x: x, y: y, a: a})
}

// Hits returns the number of successful Gets.
func (m *Memo) Hits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}
