// SPDX-License-Identifier: MIT
// Copyright (c) 2026 NDLZ contributors
// Source: github.com/blosc-go/ndlz

package ndlz

import "encoding/binary"

// Encode compresses a rows x cols block of bytes into output, returning the
// number of bytes written (including the 9-byte header) on success.
//
// output must be at least MinOutputSize(rows, cols) bytes long, and the
// block must be at least 16 bytes (len(input) == rows*cols); otherwise
// Encode returns ErrInvalidInput. Every emission is also checked against
// len(output) and fails with ErrOutputOverflow if it would cross it; since
// MinOutputSize covers the worst case, this does not occur for a buffer that
// passes the size check above.
func Encode(input []byte, rows, cols uint32, output []byte) (int, error) {
	if rows == 0 || cols == 0 {
		return 0, ErrInvalidInput
	}
	total := uint64(rows) * uint64(cols)
	if total != uint64(len(input)) || len(input) < 16 {
		return 0, ErrInvalidInput
	}
	if len(output) < MinOutputSize(rows, cols) {
		return 0, ErrInvalidInput
	}

	if err := ensureRoom(output, 0, headerSize); err != nil {
		return 0, err
	}
	writeHeader(output, rows, cols)

	grid := newCellGrid(rows, cols)
	dict := acquireDictionary()
	defer releaseDictionary(dict)

	pos := headerSize
	var scratch [16]byte

	err := grid.forEachCell(func(ci, cj uint32) error {
		padRow, padCol := grid.padding(ci, cj)
		origin := grid.origin(ci, cj)

		if padRow < 4 || padCol < 4 {
			return encodePaddedCell(input, output, &pos, origin, cols, padRow, padCol)
		}

		for r := uint32(0); r < 4; r++ {
			start := origin + r*cols
			copy(scratch[r*4:r*4+4], input[start:start+4])
		}

		anchorRel := uint32(pos - headerSize)

		if allEqual(scratch[:]) {
			if err := ensureRoom(output, pos, 2); err != nil {
				return err
			}
			output[pos] = tokenAllEqual
			output[pos+1] = scratch[0]
			pos += 2
			return nil
		}

		if ok, err := tryFullCellMatch(output, dict, &pos, anchorRel, scratch[:]); err != nil {
			return err
		} else if ok {
			return nil
		}

		if ok, err := tryRowTripleMatch(output, dict, &pos, anchorRel, scratch[:]); err != nil {
			return err
		} else if ok {
			return nil
		}

		if ok, err := tryRowPairMatch(output, dict, &pos, anchorRel, scratch[:]); err != nil {
			return err
		} else if ok {
			return nil
		}

		return emitLiteralCell(output, dict, &pos, anchorRel, scratch[:])
	})
	if err != nil {
		return 0, err
	}

	return pos, nil
}

// encodePaddedCell emits an edge cell as a literal; padded cells never
// participate in dictionaries (neither as candidates nor as targets).
func encodePaddedCell(input, output []byte, pos *int, origin, cols, padRow, padCol uint32) error {
	n := int(padRow * padCol)
	if err := ensureRoom(output, *pos, 1+n); err != nil {
		return err
	}
	output[*pos] = tokenLiteral
	*pos++
	for r := uint32(0); r < padRow; r++ {
		start := origin + r*cols
		copy(output[*pos:*pos+int(padCol)], input[start:start+padCol])
		*pos += int(padCol)
	}
	return nil
}

func allEqual(cell []byte) bool {
	for i := 1; i < len(cell); i++ {
		if cell[i] != cell[0] {
			return false
		}
	}
	return true
}

// tryFullCellMatch attempts step 3 of the classification pipeline.
func tryFullCellMatch(output []byte, dict *dictionary, pos *int, anchorRel uint32, cell []byte) (bool, error) {
	hash := hash12(cell)
	candidate, ok := dict.full.lookup(hash)
	if !ok {
		return false, nil
	}
	backOff, ok := acceptDistance(anchorRel, candidate)
	if !ok || !verify(output[headerSize:*pos], candidate, cell) {
		return false, nil
	}

	if err := ensureRoom(output, *pos, 3); err != nil {
		return false, err
	}
	output[*pos] = tokenFullMatch
	binary.LittleEndian.PutUint16(output[*pos+1:*pos+3], uint16(backOff))
	*pos += 3
	return true, nil
}

// tryRowTripleMatch attempts step 4 of the classification pipeline.
func tryRowTripleMatch(output []byte, dict *dictionary, pos *int, anchorRel uint32, cell []byte) (bool, error) {
	var key [12]byte
	for idx, rows3 := range triples {
		copy(key[0:4], cell[rows3[0]*4:rows3[0]*4+4])
		copy(key[4:8], cell[rows3[1]*4:rows3[1]*4+4])
		copy(key[8:12], cell[rows3[2]*4:rows3[2]*4+4])

		hash := hash12(key[:])
		candidate, ok := dict.triple.lookup(hash)
		accepted := false
		var backOff uint32
		if ok {
			backOff, accepted = acceptDistance(anchorRel, candidate)
			accepted = accepted && verify(output[headerSize:*pos], candidate, key[:])
		}

		if accepted {
			missing := tripleMissingRow[idx]
			if err := ensureRoom(output, *pos, 7); err != nil {
				return false, err
			}
			output[*pos] = tripleToken(idx)
			binary.LittleEndian.PutUint16(output[*pos+1:*pos+3], uint16(backOff))
			copy(output[*pos+3:*pos+7], cell[missing*4:missing*4+4])
			*pos += 7
			return true, nil
		}

		if tripleContiguous[idx] {
			dataOffset := anchorRel + 1 + uint32(rows3[0])*4
			dict.triple.insert(hash, dataOffset)
		}
	}
	return false, nil
}

// tryRowPairMatch attempts step 5 of the classification pipeline.
func tryRowPairMatch(output []byte, dict *dictionary, pos *int, anchorRel uint32, cell []byte) (bool, error) {
	var key [8]byte
	for idx, rows2 := range pairs {
		copy(key[0:4], cell[rows2[0]*4:rows2[0]*4+4])
		copy(key[4:8], cell[rows2[1]*4:rows2[1]*4+4])

		hash := hash12(key[:])
		candidate, ok := dict.pair.lookup(hash)
		accepted := false
		var backOff uint32
		if ok {
			backOff, accepted = acceptDistance(anchorRel, candidate)
			accepted = accepted && verify(output[headerSize:*pos], candidate, key[:])
		}

		if accepted {
			remaining := pairRemaining[idx]
			if err := ensureRoom(output, *pos, 11); err != nil {
				return false, err
			}
			output[*pos] = pairToken(idx)
			binary.LittleEndian.PutUint16(output[*pos+1:*pos+3], uint16(backOff))
			copy(output[*pos+3:*pos+7], cell[remaining[0]*4:remaining[0]*4+4])
			copy(output[*pos+7:*pos+11], cell[remaining[1]*4:remaining[1]*4+4])
			*pos += 11
			return true, nil
		}

		if pairContiguous[idx] && !ok {
			dataOffset := anchorRel + 1 + uint32(rows2[0])*4
			dict.pair.insert(hash, dataOffset)
		}
	}
	return false, nil
}

// emitLiteralCell is step 6: no strategy above matched, so write the raw
// 16 bytes and seed the full-cell table with this, the first occurrence.
func emitLiteralCell(output []byte, dict *dictionary, pos *int, anchorRel uint32, cell []byte) error {
	if err := ensureRoom(output, *pos, 17); err != nil {
		return err
	}
	dict.full.insert(hash12(cell), anchorRel+1)
	output[*pos] = tokenLiteral
	copy(output[*pos+1:*pos+17], cell)
	*pos += 17
	return nil
}
