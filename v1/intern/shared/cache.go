// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package shared

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxLen is the longest string a Cache interns by default. Longer
// strings pass through untouched: they are unlikely to repeat, and one
// oversized entry can cost more than many ordinary ones.
const DefaultMaxLen = 256

// Cache is a bounded interner: only the most recently seen strings are
// retained, so memory stays capped even when the input string population is
// unbounded. Unlike Table it issues no IDs; its job is purely to collapse
// duplicate backing arrays.
//
// Cache is safe for concurrent use.
type Cache struct {
	lru    *lru.Cache[string, string]
	maxLen int
}

// NewCache returns a cache retaining at most size strings. It panics if
// size is not positive.
func NewCache(size int) *Cache {
	return NewCacheMaxLen(size, DefaultMaxLen)
}

// NewCacheMaxLen is NewCache with a custom per-string length cutoff.
func NewCacheMaxLen(size, maxLen int) *Cache {
	c, err := lru.New[string, string](size)
	if err != nil {
		panic(err)
	}
	return &Cache{lru: c, maxLen: maxLen}
}

// Intern returns the cached copy of s, caching s itself on first sight.
// Strings longer than the cutoff are returned unchanged.
func (c *Cache) Intern(s string) string {
	if len(s) > c.maxLen {
		return s
	}
	if cached, ok, _ := c.lru.PeekOrAdd(s, s); ok {
		return cached
	}
	return s
}

// InternBytes returns the cached string for the content of b.
func (c *Cache) InternBytes(b []byte) string {
	if len(b) > c.maxLen {
		return string(b)
	}
	if cached, ok := c.lru.Peek(string(b)); ok {
		return cached
	}
	s := string(b)
	c.lru.Add(s, s)
	return s
}

// Len returns the number of strings currently retained.
func (c *Cache) Len() int {
	return c.lru.Len()
}
