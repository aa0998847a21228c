// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

import (
	"bytes"
	"sync"
)

// tableSize is the number of entries in each of the three match tables
// (4,096, addressed by a 12-bit hash).
const tableSize = 1 << hashBits

// maxBackOffset is the largest back-offset a token may carry: distances must
// be strictly positive and strictly less than 65,535.
const maxBackOffset = 0xfffe

// table maps a 12-bit content hash to an output-stream byte offset (relative
// to the body, i.e. to the byte right after the 9-byte header) at which a
// previously emitted pattern's raw bytes begin. 0 means "unset": the first
// legal data offset is 1 (byte 0 of the body is always a token byte).
type table [tableSize]uint32

func (t *table) lookup(hash uint32) (offset uint32, ok bool) {
	v := t[hash&hashMask]
	return v, v != 0
}

func (t *table) insert(hash uint32, offset uint32) {
	t[hash&hashMask] = offset
}

// dictionary holds the three match tables (full-cell, row-triple, row-pair)
// live for the duration of one Encode call.
type dictionary struct {
	full   table
	triple table
	pair   table
}

// dictionaryPool recycles dictionaries across Encode calls instead of
// allocating the ~48 KiB of table state on every call, mirroring the
// teacher's sliding-window pool for its own per-call scratch state.
var dictionaryPool = sync.Pool{
	New: func() any {
		return &dictionary{}
	},
}

func acquireDictionary() *dictionary {
	d := dictionaryPool.Get().(*dictionary)
	*d = dictionary{}
	return d
}

func releaseDictionary(d *dictionary) {
	dictionaryPool.Put(d)
}

// acceptDistance validates a candidate offset against the anchor offset
// (the position, relative to the body, of the cell record currently being
// classified) and returns the back-offset to emit. The distance must be
// strictly positive and strictly less than 65,535.
func acceptDistance(anchorRel, candidate uint32) (backOffset uint32, ok bool) {
	if candidate == 0 || candidate >= anchorRel {
		return 0, false
	}
	d := anchorRel - candidate
	if d < 1 || d > maxBackOffset {
		return 0, false
	}
	return d, true
}

// verify compares pattern against the k bytes already written to body at
// offset (relative to body start), returning false if that range hasn't been
// written yet or the bytes differ.
func verify(body []byte, offset uint32, pattern []byte) bool {
	k := uint32(len(pattern))
	if offset+k > uint32(len(body)) {
		return false
	}
	return bytes.Equal(body[offset:offset+k], pattern)
}
