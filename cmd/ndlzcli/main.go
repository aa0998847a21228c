// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

// Command ndlzcli encodes and decodes flat binary files with NDLZ, and
// reports whether NDLZ is likely worth applying to a given file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ndlzcli",
		Short: "Encode, decode, and advise on NDLZ 2-D block compression",
	}

	root.PersistentFlags().String("config", "", "optional config file (yaml/json/toml) supplying default flag values")
	root.PersistentFlags().Bool("verbose", false, "enable debug-level logging")

	root.AddCommand(newEncodeCommand(), newDecodeCommand(), newAdviseCommand())
	return root
}

func newLogger(cmd *cobra.Command) (*zap.Logger, func()) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	invocationID := uuid.NewString()
	logger = logger.With(zap.String("invocation_id", invocationID))
	return logger, func() { _ = logger.Sync() }
}

func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	path, _ := cmd.Flags().GetString("config")
	v := viper.New()
	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	return v, nil
}

// applyIntFlagDefaults overrides each named int flag with the config file's
// value, but only where the caller didn't pass that flag explicitly --
// explicit flags always win over config.
func applyIntFlagDefaults(cmd *cobra.Command, v *viper.Viper, names ...string) error {
	for _, name := range names {
		if cmd.Flags().Changed(name) || !v.IsSet(name) {
			continue
		}
		if err := cmd.Flags().Set(name, strconv.Itoa(v.GetInt(name))); err != nil {
			return fmt.Errorf("applying config value for %q: %w", name, err)
		}
	}
	return nil
}
