// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

import "errors"

// Sentinel errors for Encode and Decode.
var (
	// ErrInvalidInput covers input/output length mismatches: input length not
	// equal to rows*cols, a block smaller than 16 bytes, or an output buffer
	// below MinOutputSize(rows, cols).
	ErrInvalidInput = errors.New("ndlz: invalid input")
	// ErrOutputOverflow is returned when an emission would cross the caller's
	// declared output bound.
	ErrOutputOverflow = errors.New("ndlz: output overflow")
	// ErrMalformedStream is returned by Decode on an unknown token, an
	// out-of-range back-offset, or a truncated payload.
	ErrMalformedStream = errors.New("ndlz: malformed stream")
	// ErrShapeMismatch is returned by Decode when the header's rows*cols
	// disagrees with the caller's declared output length.
	ErrShapeMismatch = errors.New("ndlz: shape mismatch")
)
