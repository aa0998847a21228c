// SPDX-License-Identifier: MIT
// Copyright (c) 2026 NDLZ contributors
// Source: github.com/blosc-go/ndlz

package ndlz

import "encoding/binary"

// Decode expands an NDLZ-compressed stream into output. output's length must
// equal the rows*cols shape recorded in the stream's header, or Decode
// returns ErrShapeMismatch. On any structural violation (unknown token,
// out-of-range back-offset, truncated payload) Decode returns
// ErrMalformedStream and output's contents are unspecified -- callers must
// not use a partial result.
func Decode(input []byte, output []byte) (int, error) {
	rows, cols, err := readHeader(input)
	if err != nil {
		return 0, err
	}
	total := uint64(rows) * uint64(cols)
	if total != uint64(len(output)) {
		return 0, ErrShapeMismatch
	}
	for i := range output {
		output[i] = 0
	}

	grid := newCellGrid(rows, cols)
	pos := headerSize
	var scratch [16]byte

	err = grid.forEachCell(func(ci, cj uint32) error {
		padRow, padCol := grid.padding(ci, cj)
		origin := grid.origin(ci, cj)

		if pos >= len(input) {
			return ErrMalformedStream
		}
		tokenPos := pos
		tok := input[pos]
		pos++
		anchorRel := uint32(tokenPos - headerSize)

		if padRow < 4 || padCol < 4 {
			if tok != tokenLiteral {
				return ErrMalformedStream
			}
			n := int(padRow * padCol)
			if pos+n > len(input) {
				return ErrMalformedStream
			}
			writePaddedCell(output, origin, cols, padRow, padCol, input[pos:pos+n])
			pos += n
			return nil
		}

		switch {
		case tok == tokenLiteral:
			if pos+16 > len(input) {
				return ErrMalformedStream
			}
			copy(scratch[:], input[pos:pos+16])
			pos += 16

		case tok == tokenAllEqual:
			if pos+1 > len(input) {
				return ErrMalformedStream
			}
			v := input[pos]
			pos++
			for i := range scratch {
				scratch[i] = v
			}

		case tok == tokenFullMatch:
			if pos+2 > len(input) {
				return ErrMalformedStream
			}
			backOff := binary.LittleEndian.Uint16(input[pos : pos+2])
			pos += 2
			refAbs, err := resolveBackRef(input, anchorRel, uint32(backOff), 16)
			if err != nil {
				return err
			}
			copy(scratch[:], input[refAbs:refAbs+16])

		case tok&0xe0 == tripleTokenTag:
			idx, ok := tripleIndexFromToken(tok)
			if !ok {
				return ErrMalformedStream
			}
			if pos+6 > len(input) {
				return ErrMalformedStream
			}
			backOff := binary.LittleEndian.Uint16(input[pos : pos+2])
			pos += 2
			missingBytes := input[pos : pos+4]
			pos += 4

			refAbs, err := resolveBackRef(input, anchorRel, uint32(backOff), 12)
			if err != nil {
				return err
			}
			rows3 := triples[idx]
			for k, row := range rows3 {
				copy(scratch[row*4:row*4+4], input[refAbs+k*4:refAbs+k*4+4])
			}
			copy(scratch[tripleMissingRow[idx]*4:tripleMissingRow[idx]*4+4], missingBytes)

		case tok&0xc0 == pairTokenTag:
			idx, ok := pairIndexFromToken(tok)
			if !ok {
				return ErrMalformedStream
			}
			if pos+10 > len(input) {
				return ErrMalformedStream
			}
			backOff := binary.LittleEndian.Uint16(input[pos : pos+2])
			pos += 2
			remBytes := input[pos : pos+8]
			pos += 8

			refAbs, err := resolveBackRef(input, anchorRel, uint32(backOff), 8)
			if err != nil {
				return err
			}
			rows2 := pairs[idx]
			for k, row := range rows2 {
				copy(scratch[row*4:row*4+4], input[refAbs+k*4:refAbs+k*4+4])
			}
			remaining := pairRemaining[idx]
			copy(scratch[remaining[0]*4:remaining[0]*4+4], remBytes[0:4])
			copy(scratch[remaining[1]*4:remaining[1]*4+4], remBytes[4:8])

		default:
			return ErrMalformedStream
		}

		writeFullCell(output, origin, cols, scratch[:])
		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(total), nil
}

// resolveBackRef converts a back-offset read from the current cell record
// into an absolute index into input, validating that the referenced range
// lies entirely within the already-decoded prefix of the compressed body.
func resolveBackRef(input []byte, anchorRel, backOff, length uint32) (int, error) {
	if backOff < 1 || backOff > maxBackOffset || backOff > anchorRel {
		return 0, ErrMalformedStream
	}
	ref := anchorRel - backOff
	refAbs := headerSize + int(ref)
	if refAbs < headerSize || refAbs+int(length) > headerSize+int(anchorRel) {
		return 0, ErrMalformedStream
	}
	return refAbs, nil
}

// writeFullCell copies a reconstructed, non-padded 16-byte cell (4 rows of
// 4 bytes each, stride 4) into output at the cell's origin.
func writeFullCell(output []byte, origin, cols uint32, cell []byte) {
	for r := uint32(0); r < 4; r++ {
		start := origin + r*cols
		copy(output[start:start+4], cell[r*4:r*4+4])
	}
}

// writePaddedCell copies a padRow x padCol literal payload (packed with no
// inter-row gap) into output at the cell's origin.
func writePaddedCell(output []byte, origin, cols, padRow, padCol uint32, payload []byte) {
	for r := uint32(0); r < padRow; r++ {
		start := origin + r*cols
		copy(output[start:start+padCol], payload[r*padCol:r*padCol+padCol])
	}
}
