package builder

import (
	"context"

	"github.com/go-git/go-billy/v5/util"

	"github.com/tse-options/analyzer-bundler/internal/logger"
)

// cleanTargets returns the transient paths a run may leave behind:
// the tool's scratch directory, its output directory, and the generated
// spec file.
func (b *builder) cleanTargets() []string {
	return []string{b.cfg.ScratchDir, b.cfg.DistDir, b.cfg.SpecFile}
}

// preClean removes leftovers of prior runs so the packaging tool starts
// from a known-empty workspace.
func (b *builder) preClean(ctx context.Context) error {
	logger.Info(ctx, "Removing stale artifacts from prior runs")
	b.removeStale(ctx)

	return nil
}

// removeStale deletes each clean target if present. Absence is a no-op and
// removal failures never escalate: a stale path does not affect the
// correctness of a subsequent run. The pass is idempotent.
func (b *builder) removeStale(ctx context.Context) {
	for _, path := range b.cleanTargets() {
		if !exists(b.fsys, path) {
			continue
		}

		if err := util.RemoveAll(b.fsys, path); err != nil {
			logger.WarnKV(ctx, "Unable to remove stale path", "path", path, "error", err)
			continue
		}

		logger.DebugKV(ctx, "Removed stale path", "path", path)
	}
}
