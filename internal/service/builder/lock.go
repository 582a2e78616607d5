package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/tse-options/analyzer-bundler/internal/logger"
)

const (
	// MarkerFilename marks that a build is running right now to avoid
	// parallel runs corrupting the transient directories.
	MarkerFilename = "analyzer-bundler-run-marker.bin"

	// markerLifetime is the period after which a marker without a live
	// bundler process is considered stale. Packaging can legitimately run
	// for a long time, so the window is generous.
	markerLifetime = 2 * time.Hour
)

// processDetector reports whether another bundler process is alive.
// Overridable in tests.
//
//nolint:gochecknoglobals // Seam for tests; production always uses the real detector.
var processDetector = isBundlerProcessRunning

// acquireRunLock creates the run marker, refusing to start while another
// build appears to be in progress against the same workspace.
func acquireRunLock(ctx context.Context) error {
	if isBuildRunningNow(ctx) {
		return ErrBuildRunning
	}

	marker, err := os.Create(MarkerFilename)
	if err != nil {
		return fmt.Errorf("create run marker: %w", err)
	}

	return marker.Close()
}

// releaseRunLock removes the run marker. Best-effort.
func releaseRunLock(ctx context.Context) {
	if err := os.Remove(MarkerFilename); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.WarnKV(ctx, "Unable to remove run marker", "error", err)
	}
}

// isBuildRunningNow checks presence of the run marker and attempts recovery
// when it looks abandoned.
func isBuildRunningNow(ctx context.Context) bool {
	fileInfo, err := os.Stat(MarkerFilename)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}

	if err != nil {
		logger.Infof(ctx, "Unable to read run marker: %v", err)
		return false
	}

	if time.Since(fileInfo.ModTime()) <= markerLifetime {
		if running, detectErr := processDetector(); detectErr == nil && !running {
			logger.Info(ctx, "Run marker has no live owner, removing it")

			return os.Remove(MarkerFilename) != nil
		}

		return true
	}

	logger.Info(ctx, "The run marker is too old, attempting cleanup")

	return os.Remove(MarkerFilename) != nil
}

// isBundlerProcessRunning reports whether another bundler process besides
// this one is alive on the host.
func isBundlerProcessRunning() (bool, error) {
	processList, err := ps.Processes()
	if err != nil {
		return false, err
	}

	var (
		thisProcessID  = os.Getpid()
		executableName = filepath.Base(os.Args[0])
	)

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() == executableName {
			return true, nil
		}
	}

	return false, nil
}
