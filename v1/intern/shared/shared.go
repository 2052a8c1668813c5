// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package shared provides synchronized interning for callers that cannot
// guarantee exclusive ownership of a table.
//
// intern.Table itself does no locking: it is built for single-owner
// mutation. This package is the wrapping layer for everything else: Shared
// for a table with many readers and occasional writers, Cache for bounded
// long-running processes, and Canonical for process-global deduplication
// without a table at all.
package shared

import (
	"sync"

	"github.com/alex60217101990/intern/v1/intern"
)

// Shared wraps an interning table for concurrent use. Reads and dedup hits
// are served under a read lock; only first-sight interning takes the write
// lock.
type Shared struct {
	mu sync.RWMutex
	t  *intern.Table
}

// New creates an empty shared table.
func New() *Shared {
	return &Shared{t: intern.New()}
}

// NewSize creates an empty shared table pre-sized for n distinct strings.
func NewSize(n int) *Shared {
	return &Shared{t: intern.NewSize(n)}
}

// Intern returns the unique ID for the given content, interning it on first
// sight.
func (s *Shared) Intern(text string) intern.ID {
	// Fast path: interning traffic is mostly hits, served under the read
	// lock.
	s.mu.RLock()
	id, ok := s.t.Find(text)
	s.mu.RUnlock()
	if ok {
		return id
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another writer may have interned text between the probe and the lock
	// upgrade; Table.Intern is idempotent so the double-check is free.
	return s.t.Intern(text)
}

// Dedup returns the table-canonical copy of text.
func (s *Shared) Dedup(text string) string {
	id := s.Intern(text)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Lookup(id)
}

// Find reports the ID for the given content without interning it.
func (s *Shared) Find(text string) (intern.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Find(text)
}

// Lookup returns the content interned under id. It panics on ids this table
// never issued.
func (s *Shared) Lookup(id intern.ID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Lookup(id)
}

// TryLookup is Lookup with a comma-ok result instead of a panic for
// out-of-range ids.
func (s *Shared) TryLookup(id intern.ID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.TryLookup(id)
}

// Len returns the number of distinct strings interned.
func (s *Shared) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Len()
}
