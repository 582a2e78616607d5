package integration

import (
	"context"
	"math/bits"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tse-options/analyzer-bundler/internal/config"
	"github.com/tse-options/analyzer-bundler/internal/service/builder"
)

// TestBundler_ToolMissing runs the real pipeline entry point in a workspace
// where the packaging tool cannot exist: the run must halt at the tool gate,
// spawn no packaging subprocess, and leave the workspace without markers.
func TestBundler_ToolMissing(t *testing.T) {
	// Setup test directory and change working directory.
	t.Chdir(t.TempDir())

	// Minimal workspace: an entry point and a settings override pointing the
	// tool check at an executable that does not exist.
	require.NoError(t, os.WriteFile("run.py", []byte("print('hi')"), 0o644))

	cfg := config.Default()
	cfg.Tool = "analyzer-bundler-no-such-tool"
	cfg.RequiredArchBits = bits.UintSize

	settingsPath := filepath.Join(".", config.DefaultConfigFilename)
	require.NoError(t, config.Save(settingsPath, cfg))

	// Run with timeout context.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := builder.Run(ctx, &builder.Options{ConfigPath: settingsPath})
	require.ErrorIs(t, err, builder.ErrToolMissing)

	// The run lock was released and no transient directories remain.
	_, err = os.Stat(builder.MarkerFilename)
	require.ErrorIs(t, err, os.ErrNotExist)

	for _, path := range []string{cfg.ScratchDir, cfg.DistDir, cfg.SpecFile} {
		_, err = os.Stat(path)
		require.ErrorIs(t, err, os.ErrNotExist, path)
	}
}

// TestBundler_ArchMismatch verifies the probe gate aborts before any
// subprocess is attempted when the host width differs from the requirement.
func TestBundler_ArchMismatch(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile("run.py", []byte("print('hi')"), 0o644))

	cfg := config.Default()
	if bits.UintSize == 64 {
		cfg.RequiredArchBits = 32
	} else {
		cfg.RequiredArchBits = 64
	}

	settingsPath := filepath.Join(".", config.DefaultConfigFilename)
	require.NoError(t, config.Save(settingsPath, cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := builder.Run(ctx, &builder.Options{ConfigPath: settingsPath})
	require.ErrorIs(t, err, builder.ErrEnvironmentMismatch)
}
