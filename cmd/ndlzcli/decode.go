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

func newDecodeCommand() *cobra.Command {
	var workers int
	var in, out string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Expand an ndlzcli archive back into its flat binary file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLogger := newLogger(cmd)
			defer closeLogger()

			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyIntFlagDefaults(cmd, v, "workers"); err != nil {
				return err
			}

			a, err := readArchive(in)
			if err != nil {
				return err
			}

			decoded, err := chunk.DecodeArray(a.Streams, a.Blocks, a.Rows, a.Cols, &chunk.DecodeOptions{Workers: workers})
			if err != nil {
				return errors.Wrap(err, "decoding array")
			}

			if err := os.WriteFile(out, decoded, 0o644); err != nil {
				return errors.Wrapf(err, "writing %q", out)
			}

			logger.Info("decode complete",
				zap.Int("output_bytes", len(decoded)),
				zap.Int("tile_count", len(a.Blocks)),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", chunk.DefaultWorkers, "worker pool size")
	cmd.Flags().StringVar(&in, "in", "", "input archive path (required)")
	cmd.Flags().StringVar(&out, "out", "", "output file path (required)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
