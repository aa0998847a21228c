// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

// Package advisor estimates whether NDLZ is likely to clear its usable
// compression-ratio floor for a given workload, by actually compressing a
// handful of sample blocks rather than inspecting their bytes heuristically.
package advisor

import (
	"go.uber.org/zap"

	"github.com/blosc-go/ndlz"
)

// MinUsableRatio is the floor below which NDLZ stops being worth applying,
// per the codec's own stated scope: data with little 4x4 spatial
// redundancy compresses under 2x and a generic byte-oriented codec will
// usually do better.
const MinUsableRatio = 2.0

// Verdict is the advisor's recommendation for a workload.
type Verdict int

const (
	// Apply recommends running NDLZ over the full workload.
	Apply Verdict = iota
	// Skip recommends against NDLZ; a different codec should be used.
	Skip
)

func (v Verdict) String() string {
	if v == Apply {
		return "apply"
	}
	return "skip"
}

// Recommendation summarizes the advisor's sampling pass.
type Recommendation struct {
	Verdict        Verdict
	EstimatedRatio float64
	SampledBlocks  int
	SkippedBlocks  int // blocks too small to carry a single NDLZ cell, or that failed to encode
}

// Advise compresses each sample block with ndlz.Encode and recommends Apply
// or Skip based on the aggregate input/output ratio against MinUsableRatio.
// Blocks smaller than 16 bytes cannot form a single cell and are excluded
// from the estimate rather than treated as a compression failure.
func Advise(logger *zap.Logger, sampleBlocks [][]byte, rows, cols uint32) Recommendation {
	if logger == nil {
		logger = zap.NewNop()
	}

	var totalIn, totalOut int
	skipped := 0

	for i, block := range sampleBlocks {
		if len(block) < 16 {
			skipped++
			continue
		}
		out := make([]byte, ndlz.MinOutputSize(rows, cols))
		n, err := ndlz.Encode(block, rows, cols, out)
		if err != nil {
			logger.Warn("advisor: sample block failed to encode, excluding from estimate",
				zap.Int("block_index", i), zap.Error(err))
			skipped++
			continue
		}
		totalIn += len(block)
		totalOut += n
	}

	sampled := len(sampleBlocks) - skipped
	rec := Recommendation{SampledBlocks: sampled, SkippedBlocks: skipped, Verdict: Skip}

	if totalOut == 0 {
		logger.Info("advisor: no usable sample blocks, defaulting to skip")
		return rec
	}

	rec.EstimatedRatio = float64(totalIn) / float64(totalOut)
	if rec.EstimatedRatio >= MinUsableRatio {
		rec.Verdict = Apply
	}

	logger.Info("advisor: estimate complete",
		zap.Float64("estimated_ratio", rec.EstimatedRatio),
		zap.Stringer("verdict", rec.Verdict),
		zap.Int("sampled_blocks", sampled),
		zap.Int("skipped_blocks", skipped),
	)
	return rec
}
