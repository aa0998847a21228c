// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

// MinOutputSize returns the conservative lower bound on output buffer size
// Encode requires for a block of the given shape: the 9-byte header plus
// worst case one token byte and 16 literal bytes per cell. This follows the
// "9 + cellCount*17" bound from the codec's design notes rather than the
// original heuristic overhead ("17 + (cells-1)*3"), which undercounts when
// many cells fail to compress.
func MinOutputSize(rows, cols uint32) int {
	cellCount := newCellGrid(rows, cols).count()
	return headerSize + int(cellCount)*17
}

// ensureRoom fails closed with ErrOutputOverflow if writing n more bytes at
// pos would exceed the declared output buffer length.
func ensureRoom(output []byte, pos, n int) error {
	if pos+n > len(output) {
		return ErrOutputOverflow
	}
	return nil
}
