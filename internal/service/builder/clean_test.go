package builder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// TestRemoveStale_Idempotent verifies running the cleaner twice leaves the
// filesystem in the same state with no error on the second pass.
func TestRemoveStale_Idempotent(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	fsys := memfs.New()
	b := newBuilder(cfg, fsys, &fakeRunner{fsys: fsys, cfg: cfg})

	require.NoError(t, util.WriteFile(fsys, filepath.Join(cfg.ScratchDir, "a", "b.txt"), []byte("x"), 0o644))
	require.NoError(t, util.WriteFile(fsys, filepath.Join(cfg.DistDir, "Analyzer"), []byte("x"), 0o755))
	require.NoError(t, util.WriteFile(fsys, cfg.SpecFile, []byte("x"), 0o644))

	ctx := context.Background()

	b.removeStale(ctx)
	b.removeStale(ctx)

	for _, path := range b.cleanTargets() {
		_, err := fsys.Stat(path)
		require.Error(t, err, path)
	}
}

// TestRemoveStale_MissingTargets verifies absence of every target is a no-op.
func TestRemoveStale_MissingTargets(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	fsys := memfs.New()
	b := newBuilder(cfg, fsys, &fakeRunner{fsys: fsys, cfg: cfg})

	// Nothing exists; nothing to do, nothing to fail.
	b.removeStale(context.Background())
}
