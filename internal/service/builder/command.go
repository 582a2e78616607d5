package builder

import (
	"context"
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/tse-options/analyzer-bundler/internal/config"
	"github.com/tse-options/analyzer-bundler/internal/logger"
)

// Options contains inputs for the bundler entry point.
type Options struct {
	// ConfigPath is an optional path to a settings override file.
	ConfigPath string
}

// Run executes the packaging pipeline against the current working directory.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "analyzer-bundler")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if err = acquireRunLock(ctx); err != nil {
		return err
	}
	defer releaseRunLock(ctx)

	logger.InfoKV(ctx, "Starting build",
		"app_name", cfg.AppName,
		"entry_point", cfg.EntryPoint,
		"release_dir", cfg.ReleaseDir)

	b := newBuilder(cfg, osfs.New("."), toolRunner{})
	if err = b.Run(ctx); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logger.Info(ctx, "Build completed successfully")

	return nil
}
