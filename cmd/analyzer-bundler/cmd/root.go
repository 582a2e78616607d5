package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tse-options/analyzer-bundler/internal/logger"
	"github.com/tse-options/analyzer-bundler/internal/service/builder"
	"github.com/tse-options/analyzer-bundler/internal/version"
)

var (
	// configPath to the optional configuration YAML file.
	configPath string

	// logLevel controls logging verbosity.
	logLevel string

	// rootCmd represents the base command for packaging the analyzer.
	rootCmd = &cobra.Command{
		Use:   "analyzer-bundler",
		Short: "Package the TSE Options Chain Analyzer into a single executable",
		Long: "Run the packaging pipeline against the current working directory: " +
			"verify the host toolchain, invoke the packaging tool with the bundled " +
			"resource manifest, stage the artifact into the release directory, " +
			"and clean the workspace.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if lvl, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(lvl)
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &builder.Options{
				ConfigPath: configPath,
			}

			return builder.Run(ctx, options)
		},
	}
)

// Execute runs the analyzer-bundler CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "logging level (debug, info, warn, error, fatal)")
}
