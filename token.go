// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

// Token byte layout (bits 7..0):
//
//	0000_0000  literal cell, or padded cell          payload: raw bytes
//	0100_0000  all-equal full cell                   payload: 1 byte
//	1100_0000  full-cell back-reference               payload: u16 back-offset
//	111x_xxxx  row-triple back-reference               payload: u16 back-offset + 4 bytes
//	10xx_xxxx  row-pair back-reference                 payload: u16 back-offset + 8 bytes
const (
	tokenLiteral   byte = 0x00
	tokenAllEqual  byte = 0x40
	tokenFullMatch byte = 0xc0
	tripleTokenTag byte = 0xe0 // top 3 bits of a row-triple token
	pairTokenTag   byte = 0x80 // top 2 bits of a row-pair token
)

// triples lists the four ordered 3-of-4 row subsets in the fixed encode/decode order.
var triples = [4][3]int{
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

// tripleMissingRow[i] is the row index not present in triples[i].
var tripleMissingRow = [4]int{3, 2, 1, 0}

// tripleContiguous[i] reports whether triples[i]'s three rows are consecutive
// (j == i+1 && k == j+1); only such triples seed the triple table on a miss.
var tripleContiguous = [4]bool{true, false, false, true}

// pairs lists the six ordered 2-of-4 row subsets in the fixed encode/decode order.
var pairs = [6][2]int{
	{0, 1},
	{0, 2},
	{0, 3},
	{1, 2},
	{1, 3},
	{2, 3},
}

// pairRemaining[i] holds, in ascending order, the two row indices not present in pairs[i].
var pairRemaining = [6][2]int{
	{2, 3},
	{1, 3},
	{1, 2},
	{0, 3},
	{0, 2},
	{0, 1},
}

// pairContiguous[i] reports whether pairs[i]'s two rows are consecutive (j == i+1).
var pairContiguous = [6]bool{true, false, false, true, false, true}

// tripleToken encodes a row-triple match for triples[idx]. The triple's low 5
// bits carry idx directly, except idx 3 -- triple (1,2,3) -- which is given
// the all-ones low-5-bit pattern to keep the reserved, fully-1s byte 0xFF
// unambiguous from the otherwise-computed 0xE3.
func tripleToken(idx int) byte {
	if idx == 3 {
		return tripleTokenTag | 0x1f
	}
	return tripleTokenTag | byte(idx)
}

// tripleIndexFromToken reverses tripleToken, reporting false for any byte
// that isn't a valid row-triple token.
func tripleIndexFromToken(tok byte) (idx int, ok bool) {
	if tok&0xe0 != tripleTokenTag {
		return 0, false
	}
	low := tok & 0x1f
	switch {
	case low == 0x1f:
		return 3, true
	case low <= 2:
		return int(low), true
	default:
		return 0, false
	}
}

// pairToken encodes a row-pair match for pairs[idx]. The pair's low 6 bits
// carry (i<<3)|j, except idx 5 -- pair (2,3) -- which is given the all-ones
// low-6-bit pattern as its reserved encoding.
func pairToken(idx int) byte {
	if idx == 5 {
		return pairTokenTag | 0x3f
	}
	i, j := pairs[idx][0], pairs[idx][1]
	return pairTokenTag | byte(i<<3|j)
}

// pairIndexFromToken reverses pairToken, reporting false for any byte that
// isn't a valid row-pair token.
func pairIndexFromToken(tok byte) (idx int, ok bool) {
	if tok&0xc0 != pairTokenTag {
		return 0, false
	}
	low := tok & 0x3f
	if low == 0x3f {
		return 5, true
	}
	i := int(low >> 3)
	j := int(low & 0x7)
	for k := 0; k < 5; k++ {
		if pairs[k][0] == i && pairs[k][1] == j {
			return k, true
		}
	}
	return 0, false
}
