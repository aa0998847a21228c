// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package advisor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvise_RecommendsApplyForHighlyRedundantBlocks(t *testing.T) {
	blocks := make([][]byte, 5)
	for i := range blocks {
		b := make([]byte, 64)
		for j := range b {
			b[j] = 0x42
		}
		blocks[i] = b
	}

	rec := Advise(nil, blocks, 8, 8)

	require.Equal(t, Apply, rec.Verdict)
	assert.GreaterOrEqual(t, rec.EstimatedRatio, MinUsableRatio)
	assert.Equal(t, 5, rec.SampledBlocks)
	assert.Equal(t, 0, rec.SkippedBlocks)
}

func TestAdvise_RecommendsSkipForHighEntropyBlocks(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	blocks := make([][]byte, 5)
	for i := range blocks {
		b := make([]byte, 64)
		src.Read(b)
		blocks[i] = b
	}

	rec := Advise(nil, blocks, 8, 8)

	assert.Equal(t, Skip, rec.Verdict)
	assert.Less(t, rec.EstimatedRatio, MinUsableRatio)
}

func TestAdvise_ExcludesSubCellBlocksFromEstimate(t *testing.T) {
	blocks := [][]byte{make([]byte, 10), make([]byte, 10)}

	rec := Advise(nil, blocks, 8, 8)

	assert.Equal(t, 0, rec.SampledBlocks)
	assert.Equal(t, 2, rec.SkippedBlocks)
	assert.Equal(t, Skip, rec.Verdict)
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "apply", Apply.String())
	assert.Equal(t, "skip", Skip.String())
}
