// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

//go:build go1.23

package shared

import "unique"

// Canonical returns the process-wide canonical copy of s (Go 1.23+,
// via the runtime's unique package). Unlike Table entries, canonical
// strings are garbage collected once no caller references them.
func Canonical(s string) string {
	return unique.Make(s).Value()
}

// CanonicalBytes returns the process-wide canonical string for the content
// of b.
func CanonicalBytes(b []byte) string {
	return unique.Make(string(b)).Value()
}
