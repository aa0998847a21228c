// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

import "github.com/cespare/xxhash/v2"

// hashBits is the width of the dictionary index derived from a pattern's hash.
const hashBits = 12

// hashMask selects the low hashBits bits of a table index.
const hashMask = 1<<hashBits - 1

// hash12 reduces a byte pattern (16, 12, or 8 bytes) to a 12-bit dictionary
// index. The original C implementation this codec is ported from hashes with
// XXH32 and keeps the high 12 bits; xxhash.Sum64 is the same hash family's
// 64-bit Go port, and since the decoder never recomputes a hash (only the
// encoder's own dictionary lookups depend on it), any stable, well-distributed
// hash works here.
func hash12(pattern []byte) uint32 {
	return uint32(xxhash.Sum64(pattern) >> (64 - hashBits))
}
