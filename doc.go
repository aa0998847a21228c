// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

/*
Package ndlz implements the NDLZ block codec: a lossless compressor for
2-D numeric arrays whose locality is spatial rather than linear. It tiles
a block into 4×4 byte cells and looks for redundancy among whole cells
and sub-cell row patterns using content-addressed hash tables, emitting a
compact token stream a matching Decode call expands back to the exact
original bytes.

NDLZ is not a general-purpose byte compressor: it expects its caller to
hand over one block at a time, sized and shaped, and is not meant for
data with an expected ratio under about 2x (decompression cost would
dominate). It does not checksum its own output; that is the enclosing
container's job.

# Encode

	n, err := ndlz.Encode(block, rows, cols, out)

out must be at least ndlz.MinOutputSize(rows, cols) bytes. n is the
number of bytes written (including the 9-byte header) on success.

# Decode

	n, err := ndlz.Decode(compressed, out)

out must be exactly rows*cols bytes, where rows and cols are read back
from the 9-byte header embedded in compressed; a mismatched out length
returns ErrShapeMismatch.
*/
package ndlz
