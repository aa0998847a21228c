// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package chunk

import (
	"sync"

	"github.com/JekaMas/workerpool"
	"github.com/pkg/errors"

	"github.com/blosc-go/ndlz"
)

// ErrDimensionMismatch is returned by EncodeArray when rows or cols is not
// positive or the input length disagrees with rows*cols, and by DecodeArray
// when the number of streams disagrees with the number of blocks. Rows and
// cols need not be multiples of the block size.
var ErrDimensionMismatch = errors.New("chunk: array dimensions do not match the supplied data")

// Block describes one tile's position within the parent array.
type Block struct {
	Row, Col   int // 0-based tile coordinates within the tile grid
	RowOff     int // byte row offset of this tile's origin in the parent array
	ColOff     int // byte col offset of this tile's origin in the parent array
	Rows, Cols int // tile's byte dimensions (equal to BlockRows/BlockCols for interior tiles)
}

// EncodeArray tiles a rows x cols byte array into BlockRows x BlockCols
// tiles and encodes each tile independently and concurrently, returning one
// compressed stream per tile in row-major tile order. Each stream starts
// with a one-byte tag: 1 followed by a complete NDLZ stream (with its own
// header), or 0 followed by the raw tile bytes for tiles under 16 bytes.
// Tiles may therefore be decoded independently and out of order.
func EncodeArray(input []byte, rows, cols int, opts *EncodeOptions) ([][]byte, []Block, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}
	o := opts.normalize()

	if rows <= 0 || cols <= 0 || len(input) != rows*cols {
		return nil, nil, ErrDimensionMismatch
	}

	tileRows := (rows + o.BlockRows - 1) / o.BlockRows
	tileCols := (cols + o.BlockCols - 1) / o.BlockCols
	total := tileRows * tileCols

	blocks := make([]Block, total)
	streams := make([][]byte, total)
	errs := make([]error, total)

	wp := workerpool.New(o.Workers)
	var wg sync.WaitGroup
	wg.Add(total)

	for ti := 0; ti < tileRows; ti++ {
		for tj := 0; tj < tileCols; tj++ {
			idx := ti*tileCols + tj
			ti, tj, idx := ti, tj, idx
			wp.Submit(func() {
				defer wg.Done()

				blockRows := o.BlockRows
				if r := rows - ti*o.BlockRows; r < blockRows {
					blockRows = r
				}
				blockCols := o.BlockCols
				if c := cols - tj*o.BlockCols; c < blockCols {
					blockCols = c
				}
				blocks[idx] = Block{
					Row: ti, Col: tj,
					RowOff: ti * o.BlockRows, ColOff: tj * o.BlockCols,
					Rows: blockRows, Cols: blockCols,
				}

				tile := extractTile(input, cols, ti*o.BlockRows, tj*o.BlockCols, blockRows, blockCols)
				if len(tile) < 16 {
					// Sub-16-byte tiles can't form a single NDLZ cell; carry
					// them as a raw passthrough stream instead.
					streams[idx] = append([]byte{0}, tile...)
					return
				}

				out := make([]byte, ndlz.MinOutputSize(uint32(blockRows), uint32(blockCols)))
				n, err := ndlz.Encode(tile, uint32(blockRows), uint32(blockCols), out)
				if err != nil {
					errs[idx] = errors.Wrapf(err, "encode tile (%d,%d)", ti, tj)
					return
				}
				streams[idx] = append([]byte{1}, out[:n]...)
			})
		}
	}
	wg.Wait()
	wp.StopWait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return streams, blocks, nil
}

// DecodeArray reconstructs a rows x cols byte array from the tile streams
// produced by EncodeArray, decoding tiles concurrently.
func DecodeArray(streams [][]byte, blocks []Block, rows, cols int, opts *DecodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}
	o := opts.normalize()

	if len(streams) != len(blocks) {
		return nil, ErrDimensionMismatch
	}

	output := make([]byte, rows*cols)
	errs := make([]error, len(streams))

	wp := workerpool.New(o.Workers)
	var wg sync.WaitGroup
	wg.Add(len(streams))

	for i := range streams {
		i := i
		wp.Submit(func() {
			defer wg.Done()

			b := blocks[i]
			stream := streams[i]
			if len(stream) == 0 {
				errs[i] = errors.Errorf("tile (%d,%d): empty stream", b.Row, b.Col)
				return
			}

			tag, payload := stream[0], stream[1:]
			var tile []byte
			switch tag {
			case 0:
				tile = payload
			case 1:
				tile = make([]byte, b.Rows*b.Cols)
				if _, err := ndlz.Decode(payload, tile); err != nil {
					errs[i] = errors.Wrapf(err, "decode tile (%d,%d)", b.Row, b.Col)
					return
				}
			default:
				errs[i] = errors.Errorf("tile (%d,%d): unknown stream tag %d", b.Row, b.Col, tag)
				return
			}

			placeTile(output, cols, b, tile)
		})
	}
	wg.Wait()
	wp.StopWait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return output, nil
}

func extractTile(input []byte, cols, rowOff, colOff, blockRows, blockCols int) []byte {
	tile := make([]byte, blockRows*blockCols)
	for r := 0; r < blockRows; r++ {
		src := (rowOff+r)*cols + colOff
		dst := r * blockCols
		copy(tile[dst:dst+blockCols], input[src:src+blockCols])
	}
	return tile
}

func placeTile(output []byte, cols int, b Block, tile []byte) {
	for r := 0; r < b.Rows; r++ {
		dst := (b.RowOff+r)*cols + b.ColOff
		src := r * b.Cols
		copy(output[dst:dst+b.Cols], tile[src:src+b.Cols])
	}
}
