// Copyright 2026 The Intern Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package bank implements an append-only byte store for string content.
//
// Strings are copied into large fixed-size chunks and addressed by integer
// offset. Chunks are never moved, grown in place, or freed, so a string
// view handed out by Get stays valid for the lifetime of the bank no matter
// how much is saved afterwards. Growth allocates new chunks and only ever
// appends to the chunk directory.
//
// Storing content as raw chunk bytes instead of individual string
// allocations keeps very large string populations cheap for the garbage
// collector: the GC sees a handful of big slices rather than millions of
// small objects.
package bank

import (
	"math/bits"
	"unsafe"
)

// chunkSize is the offset granularity of the bank. Each chunk spans one
// offset slot; entries too large for a single chunk span several (see
// reserveLarge).
const chunkSize = 1 << 16

// Bank holds saved string bytes. The zero value is ready to use.
type Bank struct {
	// current is the tail of the newest chunk. Its length is the write
	// position; its capacity is the chunk boundary.
	current []byte

	// chunks is the slot directory. chunks[off/chunkSize] is the chunk
	// holding the entry at off.
	chunks [][]byte

	// base is the offset of the current chunk's first byte.
	base int
}

// Save copies text into the bank and returns its offset. Equal content
// saved twice is stored twice; deduplication is the caller's concern (see
// the compact package).
func (b *Bank) Save(text string) int {
	n := len(text)
	need := n + lengthSize(n)

	var off int
	var buf []byte
	if need > chunkSize {
		off, buf = b.reserveLarge(need)
	} else {
		off, buf = b.reserve(need)
	}

	i := putLength(buf, n)
	copy(buf[i:], text)
	return off
}

// Get returns the string saved at off as a view over the chunk bytes. The
// view is valid for the lifetime of the bank. Offsets must come from a
// prior Save on the same bank.
func (b *Bank) Get(off int) string {
	data := b.chunks[off/chunkSize]
	i := off % chunkSize
	n, w := getLength(data[i:])
	if n == 0 {
		return ""
	}
	return unsafe.String(&data[i+w], n)
}

// Size returns the number of bytes reserved by the bank, including space
// not yet written. It only ever grows.
func (b *Bank) Size() int {
	return len(b.chunks) * chunkSize
}

// reserve returns the offset and buffer for an entry of n bytes,
// n <= chunkSize, starting a fresh chunk when the current one is full.
func (b *Bank) reserve(n int) (int, []byte) {
	if len(b.current)+n > cap(b.current) {
		b.base = len(b.chunks) * chunkSize
		b.current = make([]byte, 0, chunkSize)
		b.chunks = append(b.chunks, b.current[0:chunkSize])
	}
	off := b.base + len(b.current)
	b.current = b.current[:len(b.current)+n]
	return off, b.current[off-b.base:]
}

// reserveLarge places an entry too big for one chunk in a dedicated chunk
// spanning several offset slots. Only the first slot's offset is ever
// handed out, so Get's off/chunkSize arithmetic still resolves to the
// chunk; the spanned slots are padded with nil.
func (b *Bank) reserveLarge(n int) (int, []byte) {
	chunk := make([]byte, n)
	off := len(b.chunks) * chunkSize
	b.chunks = append(b.chunks, chunk)
	for spanned := chunkSize; spanned < n; spanned += chunkSize {
		b.chunks = append(b.chunks, nil)
	}
	return off, chunk
}

// Entry lengths are stored as a leading base-128 varint. Short strings
// dominate real workloads, so most entries pay a single byte.

func lengthSize(n int) int {
	if n == 0 {
		return 1
	}
	return (bits.Len(uint(n)) + 6) / 7
}

func putLength(buf []byte, n int) int {
	i := 0
	for {
		v := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			v |= 0x80
		}
		buf[i] = v
		i++
		if n == 0 {
			return i
		}
	}
}

func getLength(buf []byte) (n, w int) {
	for i := 0; ; i++ {
		v := buf[i]
		n |= int(v&0x7f) << (7 * i)
		if v&0x80 == 0 {
			return n, i + 1
		}
	}
}
