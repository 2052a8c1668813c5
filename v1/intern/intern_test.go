// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"strconv"
	"testing"
	"unsafe"
)

func TestInternRoundTrip(t *testing.T) {
	tbl := New()

	if id := tbl.Intern("hello"); id != 0 {
		t.Fatalf("Intern(hello) = %d, want 0", id)
	}
	if id := tbl.Intern("world"); id != 1 {
		t.Fatalf("Intern(world) = %d, want 1", id)
	}
	if id := tbl.Intern("hello"); id != 0 {
		t.Fatalf("repeated Intern(hello) = %d, want 0", id)
	}

	if got := tbl.Lookup(0); got != "hello" {
		t.Errorf("Lookup(0) = %q, want hello", got)
	}
	if got := tbl.Lookup(1); got != "world" {
		t.Errorf("Lookup(1) = %q, want world", got)
	}

	if got, ok := tbl.TryLookup(1); !ok || got != "world" {
		t.Errorf("TryLookup(1) = %q, %v, want world, true", got, ok)
	}
	if _, ok := tbl.TryLookup(2); ok {
		t.Error("TryLookup(2) succeeded on a table with 2 entries")
	}
}

func TestInternIdempotent(t *testing.T) {
	tbl := New()

	first := tbl.Intern("token")
	second := tbl.Intern("token")

	if first != second {
		t.Errorf("Intern returned %d then %d for equal content", first, second)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d after interning one string twice, want 1", tbl.Len())
	}
}

func TestInternDense(t *testing.T) {
	tbl := New()

	const n = 1000
	for i := 0; i < n; i++ {
		id := tbl.Intern(strconv.Itoa(i))
		if id != ID(i) {
			t.Fatalf("Intern(%d) = %d, want %d", i, id, i)
		}
		// Duplicates must never disturb the sequence.
		if id := tbl.Intern(strconv.Itoa(i / 2)); id != ID(i/2) {
			t.Fatalf("duplicate Intern(%d) = %d, want %d", i/2, id, i/2)
		}
	}

	if tbl.Len() != n {
		t.Fatalf("Len() = %d, want %d", tbl.Len(), n)
	}
}

func TestStabilityUnderGrowth(t *testing.T) {
	// An initial capacity of 1 forces the backing store to reallocate many
	// times. Previously returned strings must keep resolving, backed by the
	// same memory.
	tbl := NewSize(1)

	first := tbl.Intern("hello")
	before := tbl.Lookup(first)
	ptr := unsafe.StringData(before)

	for i := 0; i < 10000; i++ {
		tbl.Intern(strconv.Itoa(i))
	}

	after := tbl.Lookup(first)
	if after != "hello" {
		t.Fatalf("Lookup(%d) = %q after growth, want hello", first, after)
	}
	if unsafe.StringData(after) != ptr {
		t.Error("growth moved the bytes behind a previously issued string")
	}

	for i := 0; i < 10000; i++ {
		want := strconv.Itoa(i)
		// IDs 0 is hello, so i maps to i+1.
		if got, ok := tbl.TryLookup(ID(i + 1)); !ok || got != want {
			t.Fatalf("TryLookup(%d) = %q, %v, want %q", i+1, got, ok, want)
		}
	}
}

func TestTryLookupOutOfRange(t *testing.T) {
	tbl := New()
	tbl.Intern("only")

	for _, id := range []ID{1, 2, 100, 1<<32 - 1} {
		if got, ok := tbl.TryLookup(id); ok {
			t.Errorf("TryLookup(%d) = %q, true, want absent", id, got)
		}
	}
}

func TestLookupPanicsOutOfRange(t *testing.T) {
	tbl := New()
	tbl.Intern("only")

	defer func() {
		if recover() == nil {
			t.Error("Lookup(1) on a one-entry table did not panic")
		}
	}()
	tbl.Lookup(1)
}

func TestInternBytes(t *testing.T) {
	tbl := New()

	id := tbl.InternBytes([]byte("payload"))
	if got := tbl.Lookup(id); got != "payload" {
		t.Fatalf("Lookup = %q, want payload", got)
	}
	if again := tbl.Intern("payload"); again != id {
		t.Errorf("Intern(payload) = %d, want %d from InternBytes", again, id)
	}

	// Mutating the input afterwards must not affect the table.
	b := []byte("mutable")
	id = tbl.InternBytes(b)
	b[0] = 'X'
	if got := tbl.Lookup(id); got != "mutable" {
		t.Errorf("Lookup = %q after caller mutation, want mutable", got)
	}
}

func TestInternClonesInput(t *testing.T) {
	tbl := New()

	buffer := []byte("prefix-content-suffix")
	view := string(buffer[7:14]) // "content"
	id := tbl.Intern(view)

	if unsafe.StringData(tbl.Lookup(id)) == unsafe.StringData(view) {
		t.Error("table retained the caller's backing bytes instead of its own copy")
	}
	if got := tbl.Lookup(id); got != "content" {
		t.Errorf("Lookup = %q, want content", got)
	}
}

func TestFind(t *testing.T) {
	tbl := New()

	if _, ok := tbl.Find("absent"); ok {
		t.Error("Find on an empty table reported a hit")
	}

	want := tbl.Intern("present")
	if got, ok := tbl.Find("present"); !ok || got != want {
		t.Errorf("Find(present) = %d, %v, want %d, true", got, ok, want)
	}
	if tbl.Len() != 1 {
		t.Errorf("Find mutated the table: Len() = %d, want 1", tbl.Len())
	}
}

func TestNewSize(t *testing.T) {
	tbl := NewSize(64)
	if tbl.Cap() < 64 {
		t.Errorf("Cap() = %d, want at least 64", tbl.Cap())
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d for a fresh table, want 0", tbl.Len())
	}

	// The hint must not change observable behavior.
	if id := tbl.Intern("hello"); id != 0 {
		t.Errorf("Intern(hello) = %d, want 0", id)
	}
}

func TestEmptyString(t *testing.T) {
	tbl := New()

	id := tbl.Intern("")
	if got, ok := tbl.TryLookup(id); !ok || got != "" {
		t.Errorf("TryLookup(%d) = %q, %v, want empty string", id, got, ok)
	}
	if again := tbl.Intern(""); again != id {
		t.Errorf("repeated Intern(\"\") = %d, want %d", again, id)
	}
}
