// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

//go:build !go1.23

package shared

import "sync"

// Fallback for Go < 1.23: a process-global map stands in for the runtime's
// unique package. Entries live for the life of the process.

var (
	canonMu    sync.RWMutex
	canonCache = make(map[string]string)
)

// Canonical returns the process-wide canonical copy of s.
func Canonical(s string) string {
	canonMu.RLock()
	if cached, ok := canonCache[s]; ok {
		canonMu.RUnlock()
		return cached
	}
	canonMu.RUnlock()

	canonMu.Lock()
	// Double-check after acquiring the write lock.
	if cached, ok := canonCache[s]; ok {
		canonMu.Unlock()
		return cached
	}
	canonCache[s] = s
	canonMu.Unlock()
	return s
}

// CanonicalBytes returns the process-wide canonical string for the content
// of b.
func CanonicalBytes(b []byte) string {
	canonMu.RLock()
	if cached, ok := canonCache[string(b)]; ok {
		canonMu.RUnlock()
		return cached
	}
	canonMu.RUnlock()
	return Canonical(string(b))
}
