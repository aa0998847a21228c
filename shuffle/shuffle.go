// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

// Package shuffle implements the byte-shuffle pre-filter the original NDLZ
// pipeline expects its caller to apply ahead of compression for multi-byte
// element types: grouping each element's Nth byte together exposes
// cross-element redundancy that NDLZ's 4x4 spatial model would otherwise
// miss when that redundancy falls on a byte boundary the elements don't
// share.
package shuffle

import "errors"

// ErrNotMultiple is returned when data's length is not an exact multiple
// of elemSize.
var ErrNotMultiple = errors.New("shuffle: data length is not a multiple of elemSize")

// Shuffle rearranges data, interpreted as a sequence of elemSize-byte
// elements, from [e0b0 e0b1 ... e0bN e1b0 ...] into
// [e0b0 e1b0 ... eMb0 e0b1 e1b1 ... eMb1 ... eMbN]: all elements' byte 0
// together, then all byte 1, and so on. elemSize of 1 returns a copy of
// data unchanged.
func Shuffle(data []byte, elemSize int) ([]byte, error) {
	if elemSize <= 0 {
		return nil, ErrNotMultiple
	}
	if len(data)%elemSize != 0 {
		return nil, ErrNotMultiple
	}
	if elemSize == 1 {
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}

	n := len(data) / elemSize
	out := make([]byte, len(data))
	for lane := 0; lane < elemSize; lane++ {
		dst := lane * n
		for e := 0; e < n; e++ {
			out[dst+e] = data[e*elemSize+lane]
		}
	}
	return out, nil
}

// Unshuffle reverses Shuffle.
func Unshuffle(data []byte, elemSize int) ([]byte, error) {
	if elemSize <= 0 {
		return nil, ErrNotMultiple
	}
	if len(data)%elemSize != 0 {
		return nil, ErrNotMultiple
	}
	if elemSize == 1 {
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}

	n := len(data) / elemSize
	out := make([]byte, len(data))
	for lane := 0; lane < elemSize; lane++ {
		src := lane * n
		for e := 0; e < n; e++ {
			out[e*elemSize+lane] = data[src+e]
		}
	}
	return out, nil
}
