// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the specfields CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/specfields/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

// rootCmd is the base command for the specfields CLI.
var rootCmd = &cobra.Command{
	Use:   "specfields",
	Short: "Extract typed attributes from vehicle specification text",
	Long: `specfields parses free-text vehicle specification strings such as
"2.0L Turbo I4 250HP 6-Speed Automatic, Metallic Red" into typed fields:
fuel type, horsepower, displacement, cylinders, fuel injection, induction,
transmission, gear count, exterior color, and paint finish.

Use extract to print records, and catalog to save, query, and export them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetBool("log.verbose"))
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./specfields.yaml or ~/.config/specfields/config.yaml)")
	flags.BoolP("verbose", "v", false, "enable debug logging on stderr")
	flags.String("catalog-dir", "catalog", "directory holding the catalog database and exports")
	flags.Int("max-results", 20, "default maximum number of catalog query results")

	viper.BindPFlag("log.verbose", flags.Lookup("verbose"))
	viper.BindPFlag("catalog.dir", flags.Lookup("catalog-dir"))
	viper.BindPFlag("catalog.max_results", flags.Lookup("max-results"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("specfields")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "specfields"))
		}
	}

	builtin := types.DefaultDefaults()
	viper.SetDefault("defaults.fuel_type", builtin.FuelType)
	viper.SetDefault("defaults.cylinder", builtin.Cylinder)
	viper.SetDefault("defaults.injection", builtin.Injection)
	viper.SetDefault("defaults.induction", builtin.Induction)
	viper.SetDefault("defaults.transmission", builtin.Transmission)
	viper.SetDefault("defaults.color", builtin.Color)
	viper.SetDefault("defaults.finish", builtin.Finish)
	viper.SetDefault("output", string(types.OutputYAML))

	viper.SetEnvPrefix("SPECFIELDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, environment, and file settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Defaults = cfg.Defaults.WithFallbacks()
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
