// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package intern implements a string-interning table: each distinct string
// content is assigned a small, dense, stable integer identifier, with O(1)
// average-case lookup in both directions.
//
// The table provides:
//   - Deduplication: equal content always maps to the same ID
//   - Dense IDs: the k-th unique string receives ID k-1, in first-appearance order
//   - Stable lookups: a string returned by Lookup remains valid for the
//     lifetime of the table, across any amount of growth
//   - Allocation-free hit paths for both string and []byte inputs
//
// The table is designed for exclusive single-owner mutation. Callers that
// need shared access should wrap it (see the shared subpackage) rather than
// rely on any internal locking, because there is none.
//
// Interned strings are never evicted; the table's memory is reclaimed only
// when the table itself is discarded. Callers with bounded-memory
// requirements should use shared.Cache instead.
package intern

import "strings"

// ID is the handle for an interned string. IDs are unsigned, 0-based, dense
// and never reused; they stay valid for the lifetime of the table that
// issued them.
type ID uint32

// maxStrings bounds the number of distinct strings a table can hold.
// Exceeding it is a capacity-exhaustion bug in the caller, not a
// recoverable condition.
const maxStrings = 1 << 32

// Table deduplicates strings, mapping content to IDs and back.
//
// The backing store is a []string: growing it reallocates only the slice
// spine, never the string bytes it references, so strings returned by
// Lookup stay valid no matter how much the table grows afterwards. The
// index keys alias the same bytes as the store entries, one key per entry.
type Table struct {
	index map[string]ID
	store []string
}

// New creates an empty table.
func New() *Table {
	return &Table{index: make(map[string]ID)}
}

// NewSize creates an empty table pre-sized for n distinct strings. The size
// is a hint for both the index and the backing store; it does not change
// observable behavior.
func NewSize(n int) *Table {
	return &Table{
		index: make(map[string]ID, n),
		store: make([]string, 0, n),
	}
}

// Intern returns the unique ID for the given content, interning it on first
// sight. Repeated calls with equal content return the same ID and do not
// mutate the table.
//
// Intern panics if a new entry would exceed the 2^32 ID space.
func (t *Table) Intern(text string) ID {
	if id, ok := t.index[text]; ok {
		return id
	}
	return t.insert(text)
}

// InternBytes is Intern for byte slices. The hit path performs no
// allocation: the compiler elides the string conversion used for the map
// probe.
func (t *Table) InternBytes(b []byte) ID {
	if id, ok := t.index[string(b)]; ok {
		return id
	}
	return t.insert(string(b))
}

// insert appends new content and registers it in the index. The store is
// appended first: a fault between the two steps wastes a slot but never
// leaves an index entry pointing at a missing store slot.
func (t *Table) insert(text string) ID {
	if uint64(len(t.store)) >= maxStrings {
		panic("intern: ID space exhausted")
	}

	// Clone so the table owns the bytes outright. This also avoids pinning
	// a large caller buffer when text is a slice of one.
	owned := strings.Clone(text)
	id := ID(len(t.store))
	t.store = append(t.store, owned)
	t.index[owned] = id
	return id
}

// Find reports the ID for the given content without interning it.
func (t *Table) Find(text string) (ID, bool) {
	id, ok := t.index[text]
	return id, ok
}

// Lookup returns the content interned under id.
//
// The id must have been issued by a prior Intern call on this table;
// passing anything else is a contract violation and panics. Callers that
// cannot guarantee a valid id must use TryLookup.
func (t *Table) Lookup(id ID) string {
	return t.store[id]
}

// TryLookup is Lookup with a comma-ok result instead of a panic for
// out-of-range ids. Any id the table has ever issued resolves; there is no
// other absence case.
func (t *Table) TryLookup(id ID) (string, bool) {
	if uint64(id) >= uint64(len(t.store)) {
		return "", false
	}
	return t.store[id], true
}

// Len returns the number of distinct strings interned.
func (t *Table) Len() int {
	return len(t.store)
}

// Cap returns the current capacity of the backing store.
func (t *Table) Cap() int {
	return cap(t.store)
}
