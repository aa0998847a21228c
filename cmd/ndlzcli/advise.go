// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blosc-go/ndlz/advisor"
)

func newAdviseCommand() *cobra.Command {
	var rows, cols, sampleCount int
	var in string

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Estimate whether NDLZ is worth applying to a file, without writing output",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLogger := newLogger(cmd)
			defer closeLogger()

			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyIntFlagDefaults(cmd, v, "samples"); err != nil {
				return err
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return errors.Wrapf(err, "reading %q", in)
			}

			blockSize := rows * cols
			if blockSize <= 0 {
				return errors.New("rows and cols must both be positive")
			}

			var samples [][]byte
			for off := 0; off+blockSize <= len(data) && len(samples) < sampleCount; off += blockSize {
				samples = append(samples, data[off:off+blockSize])
			}

			rec := advisor.Advise(logger, samples, uint32(rows), uint32(cols))
			logger.Info("advise complete", zap.Stringer("verdict", rec.Verdict), zap.Float64("estimated_ratio", rec.EstimatedRatio))
			fmt.Fprintf(cmd.OutOrStdout(), "verdict=%s estimated_ratio=%.2f sampled=%d skipped=%d\n",
				rec.Verdict, rec.EstimatedRatio, rec.SampledBlocks, rec.SkippedBlocks)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "block row count (required)")
	cmd.Flags().IntVar(&cols, "cols", 0, "block column count (required)")
	cmd.Flags().IntVar(&sampleCount, "samples", 8, "number of blocks to sample from the file")
	cmd.Flags().StringVar(&in, "in", "", "input file path (required)")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
