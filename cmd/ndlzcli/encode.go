// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blosc-go/ndlz/chunk"
)

func newEncodeCommand() *cobra.Command {
	var rows, cols, blockRows, blockCols, workers int
	var in, out string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Tile a flat binary file into NDLZ blocks and compress each",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLogger := newLogger(cmd)
			defer closeLogger()

			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyIntFlagDefaults(cmd, v, "block-rows", "block-cols", "workers"); err != nil {
				return err
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return errors.Wrapf(err, "reading %q", in)
			}

			opts := &chunk.EncodeOptions{BlockRows: blockRows, BlockCols: blockCols, Workers: workers}
			streams, blocks, err := chunk.EncodeArray(data, rows, cols, opts)
			if err != nil {
				return errors.Wrap(err, "encoding array")
			}

			total := 0
			for _, s := range streams {
				total += len(s)
			}
			logger.Info("encode complete",
				zap.Int("input_bytes", len(data)),
				zap.Int("output_bytes", total),
				zap.Int("tile_count", len(blocks)),
			)

			return writeArchive(out, rows, cols, blocks, streams)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "input array row count (required)")
	cmd.Flags().IntVar(&cols, "cols", 0, "input array column count (required)")
	cmd.Flags().IntVar(&blockRows, "block-rows", chunk.DefaultBlockRows, "tile row count")
	cmd.Flags().IntVar(&blockCols, "block-cols", chunk.DefaultBlockCols, "tile column count")
	cmd.Flags().IntVar(&workers, "workers", chunk.DefaultWorkers, "worker pool size")
	cmd.Flags().StringVar(&in, "in", "", "input file path (required)")
	cmd.Flags().StringVar(&out, "out", "", "output archive path (required)")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
