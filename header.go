// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

import "encoding/binary"

// headerSize is the fixed 9-byte header: 1 rank byte + two little-endian u32 dimensions.
const headerSize = 9

// rank is the fixed number of dimensions NDLZ operates on (rows, cols).
const rank = 2

// writeHeader writes the 9-byte header into out[:9]. Caller guarantees len(out) >= headerSize.
func writeHeader(out []byte, rows, cols uint32) {
	out[0] = rank
	binary.LittleEndian.PutUint32(out[1:5], rows)
	binary.LittleEndian.PutUint32(out[5:9], cols)
}

// readHeader parses the 9-byte header from the front of in.
func readHeader(in []byte) (rows, cols uint32, err error) {
	if len(in) < headerSize {
		return 0, 0, ErrMalformedStream
	}
	if in[0] != rank {
		return 0, 0, ErrMalformedStream
	}
	rows = binary.LittleEndian.Uint32(in[1:5])
	cols = binary.LittleEndian.Uint32(in[5:9])
	return rows, cols, nil
}
