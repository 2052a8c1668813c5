// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

// Dedup returns the table-canonical copy of text. Every call with equal
// content returns a string backed by the same memory, so callers holding
// many duplicates retain the bytes only once.
func (t *Table) Dedup(text string) string {
	return t.store[t.Intern(text)]
}

// DedupValue walks a decoded JSON document (the map[string]any / []any /
// scalar shape produced by encoding/json or util.Unmarshal) and replaces
// object keys and string values with table-canonical copies. Documents with
// many repeated keys ("name", "role", ...) end up sharing one backing
// string per distinct key.
//
// Maps are rebuilt because Go map keys cannot be replaced in place; slices
// are rewritten in place. Non-string scalars pass through untouched.
func (t *Table) DedupValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[t.Dedup(k)] = t.DedupValue(val)
		}
		return out
	case []any:
		for i := range x {
			x[i] = t.DedupValue(x[i])
		}
		return x
	case string:
		return t.Dedup(x)
	default:
		return v
	}
}
