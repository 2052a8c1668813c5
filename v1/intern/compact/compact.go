// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package compact implements the interning table contract over a chunked
// byte bank instead of individual string allocations.
//
// Observable behavior matches intern.Table: the same first-appearance
// sequence yields the same dense IDs. The difference is the storage
// strategy. The lookup index is an open-addressing probe table holding only
// (hash, id) pairs; dedup checks resolve candidate content through the bank
// and compare bytes. No index entry holds a live string view, so the index
// and the store never alias each other's memory.
//
// Use this variant when interning very large numbers of strings: per-string
// overhead is a few bytes of probe slot plus the bank bytes, and the GC
// never scans per-string pointers. For moderate populations intern.Table is
// simpler and just as fast.
package compact

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"

	"github.com/alex60217101990/intern/v1/intern"
	"github.com/alex60217101990/intern/v1/intern/bank"
)

const (
	// minSlots is the smallest probe table allocated.
	minSlots = 16

	// migrateBatch is the number of old-table slots examined per insert
	// during an incremental resize. Migration completes long before the new
	// table can fill, since each insert moves a batch.
	migrateBatch = 16

	// maxStrings leaves one ID unused: probe slots store id+1 so that zero
	// marks an empty slot.
	maxStrings = 1<<32 - 1
)

// Table deduplicates strings into a byte bank, assigning dense IDs in
// first-appearance order. The zero value is an empty table ready for use;
// New pre-sizes one.
type Table struct {
	bank    bank.Bank
	offsets []int // ID -> bank offset

	// probe is the live table; old is the previous table while an
	// incremental resize is in flight. Entries may transiently exist in
	// both; lookups check old first.
	probe   probes
	old     probes
	oldCur  int
}

// probes is an open-addressing hash table. Hashes are kept alongside the
// ids to skip byte comparisons on probe collisions and to re-place entries
// during resize without re-hashing content.
type probes struct {
	hashes []uint64
	ids    []uint32 // id+1; 0 marks an empty slot
}

func newProbes(slots int) probes {
	return probes{
		hashes: make([]uint64, slots),
		ids:    make([]uint32, slots),
	}
}

// New creates an empty table pre-sized for n distinct strings. The probe
// table is rounded up to a power of two, never below minSlots.
func New(n int) *Table {
	slots := minSlots
	if n > minSlots {
		slots = 1 << bits.Len(uint(n-1))
	}
	return &Table{
		offsets: make([]int, 0, n),
		probe:   newProbes(slots),
	}
}

// Intern returns the unique ID for the given content, interning it on first
// sight. It panics if a new entry would exhaust the ID space.
func (t *Table) Intern(text string) intern.ID {
	t.migrate()

	h := xxhash.Sum64String(text)

	if t.old.ids != nil {
		if _, id, ok := t.find(t.old, text, h); ok {
			return id
		}
	}
	cursor, id, ok := t.find(t.probe, text, h)
	if ok {
		return id
	}

	if uint64(len(t.offsets)) >= maxStrings {
		panic("compact: ID space exhausted")
	}

	newID := intern.ID(len(t.offsets))
	t.offsets = append(t.offsets, t.bank.Save(text))
	t.probe.hashes[cursor] = h
	t.probe.ids[cursor] = uint32(newID) + 1
	return newID
}

// InternBytes is Intern for byte slices. Unlike intern.Table, the hit path
// pays one string conversion for hashing.
func (t *Table) InternBytes(b []byte) intern.ID {
	return t.Intern(string(b))
}

// Find reports the ID for the given content without interning it.
func (t *Table) Find(text string) (intern.ID, bool) {
	if t.probe.ids == nil {
		return 0, false
	}
	h := xxhash.Sum64String(text)
	if t.old.ids != nil {
		if _, id, ok := t.find(t.old, text, h); ok {
			return id, true
		}
	}
	_, id, ok := t.find(t.probe, text, h)
	return id, ok
}

// Lookup returns the content interned under id. It panics on ids this table
// never issued; use TryLookup when the id is untrusted.
func (t *Table) Lookup(id intern.ID) string {
	return t.bank.Get(t.offsets[id])
}

// TryLookup is Lookup with a comma-ok result instead of a panic for
// out-of-range ids.
func (t *Table) TryLookup(id intern.ID) (string, bool) {
	if uint64(id) >= uint64(len(t.offsets)) {
		return "", false
	}
	return t.bank.Get(t.offsets[id]), true
}

// Len returns the number of distinct strings interned.
func (t *Table) Len() int {
	return len(t.offsets)
}

// Cap returns the number of probe slots in the live table.
func (t *Table) Cap() int {
	return len(t.probe.ids)
}

// Bytes returns the number of bytes reserved by the backing bank.
func (t *Table) Bytes() int {
	return t.bank.Size()
}

// find probes p for content with the given hash. On a hit it returns the
// slot and ID. On a miss it returns the empty slot where an insert into p
// would go.
func (t *Table) find(p probes, text string, h uint64) (cursor int, id intern.ID, ok bool) {
	mask := len(p.ids) - 1
	cursor = int(h) & mask
	start := cursor
	for p.ids[cursor] != 0 {
		if p.hashes[cursor] == h {
			candidate := intern.ID(p.ids[cursor] - 1)
			if t.bank.Get(t.offsets[candidate]) == text {
				return cursor, candidate, true
			}
		}
		cursor = (cursor + 1) & mask
		if cursor == start {
			panic("compact: probe table full")
		}
	}
	return cursor, 0, false
}

// migrate advances the incremental resize. At 3/4 load the live table is
// swapped for one twice the size and old entries are copied over a batch at
// a time; entries may exist in both tables until the sweep completes, which
// is harmless because lookups consult both.
func (t *Table) migrate() {
	if t.probe.ids == nil {
		t.probe = newProbes(minSlots)
	}

	if len(t.offsets) < len(t.probe.ids)*3/4 && t.old.ids == nil {
		return
	}

	if t.old.ids == nil {
		t.old, t.probe = t.probe, newProbes(len(t.probe.ids)*2)
	}

	end := min(t.oldCur+migrateBatch, len(t.old.ids))
	for i := t.oldCur; i < end; i++ {
		if t.old.ids[i] != 0 {
			t.place(t.old.ids[i], t.old.hashes[i])
		}
	}
	t.oldCur = end

	if t.oldCur >= len(t.old.ids) {
		t.old = probes{}
		t.oldCur = 0
	}
}

// place copies a slot into the live table. The entry is guaranteed absent,
// so only an empty slot is sought.
func (t *Table) place(idPlus1 uint32, h uint64) {
	mask := len(t.probe.ids) - 1
	cursor := int(h) & mask
	for t.probe.ids[cursor] != 0 {
		cursor = (cursor + 1) & mask
	}
	t.probe.ids[cursor] = idPlus1
	t.probe.hashes[cursor] = h
}
