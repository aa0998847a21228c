// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package ndlz

import "testing"

func TestTripleToken_RoundTrip(t *testing.T) {
	for idx := range triples {
		tok := tripleToken(idx)
		gotIdx, ok := tripleIndexFromToken(tok)
		if !ok {
			t.Fatalf("idx %d: token 0x%02x not recognized as a triple token", idx, tok)
		}
		if gotIdx != idx {
			t.Fatalf("idx %d: round-trip gave %d", idx, gotIdx)
		}
	}
}

func TestTripleToken_ReservedAllOnes(t *testing.T) {
	if got := tripleToken(3); got != 0xff {
		t.Fatalf("triple (1,2,3) token = 0x%02x, want 0xff", got)
	}
}

func TestPairToken_RoundTrip(t *testing.T) {
	for idx := range pairs {
		tok := pairToken(idx)
		gotIdx, ok := pairIndexFromToken(tok)
		if !ok {
			t.Fatalf("idx %d: token 0x%02x not recognized as a pair token", idx, tok)
		}
		if gotIdx != idx {
			t.Fatalf("idx %d: round-trip gave %d", idx, gotIdx)
		}
	}
}

func TestPairToken_ReservedAllOnes(t *testing.T) {
	if got := pairToken(5); got != 0xbf {
		t.Fatalf("pair (2,3) token = 0x%02x, want 0xbf", got)
	}
}

func TestTokens_DoNotCollideAcrossKinds(t *testing.T) {
	seen := map[byte]string{
		tokenLiteral:   "literal",
		tokenAllEqual:  "all-equal",
		tokenFullMatch: "full-match",
	}

	for idx := range triples {
		tok := tripleToken(idx)
		if owner, ok := seen[tok]; ok {
			t.Fatalf("triple token 0x%02x collides with %s", tok, owner)
		}
		seen[tok] = "triple"
	}

	for idx := range pairs {
		tok := pairToken(idx)
		if owner, ok := seen[tok]; ok {
			t.Fatalf("pair token 0x%02x collides with %s", tok, owner)
		}
		seen[tok] = "pair"
	}
}

func TestTripleMissingRow_ComplementsTriple(t *testing.T) {
	for idx, rows3 := range triples {
		present := map[int]bool{rows3[0]: true, rows3[1]: true, rows3[2]: true}
		if present[tripleMissingRow[idx]] {
			t.Fatalf("triple %d: missing row %d is actually present", idx, tripleMissingRow[idx])
		}
	}
}

func TestPairRemaining_ComplementsPair(t *testing.T) {
	for idx, rows2 := range pairs {
		present := map[int]bool{rows2[0]: true, rows2[1]: true}
		for _, r := range pairRemaining[idx] {
			if present[r] {
				t.Fatalf("pair %d: remaining row %d is actually present", idx, r)
			}
		}
	}
}
