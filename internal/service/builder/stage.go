package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/util"

	"github.com/tse-options/analyzer-bundler/internal/domain/build"
	"github.com/tse-options/analyzer-bundler/internal/logger"
)

// artifactMode keeps staged executables runnable.
const artifactMode os.FileMode = 0o755

// stageRelease copies the produced artifact into the persistent release
// directory, overwriting any prior artifact of the same name, and writes the
// release record beside it. A missing source artifact means the tool reported
// success without producing output, which is an invariant violation.
func (b *builder) stageRelease(ctx context.Context) error {
	artifact := build.ArtifactName(b.cfg.AppName)
	source := filepath.Join(b.cfg.DistDir, artifact)

	if !exists(b.fsys, source) {
		return fmt.Errorf("%w: expected %s", ErrArtifactMissing, source)
	}

	if err := b.fsys.MkdirAll(b.cfg.ReleaseDir, artifactMode); err != nil {
		return fmt.Errorf("create release directory: %w", err)
	}

	destination := filepath.Join(b.cfg.ReleaseDir, artifact)

	contents, err := util.ReadFile(b.fsys, source)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}

	if err = util.WriteFile(b.fsys, destination, contents, artifactMode); err != nil {
		return fmt.Errorf("stage artifact: %w", err)
	}

	logger.InfoKV(ctx, "Artifact staged", "artifact", destination)

	b.writeRecord(ctx, artifact, destination)

	return nil
}

// writeRecord persists the release record. The record is advisory, so a
// write failure is logged rather than failing an otherwise finished build.
func (b *builder) writeRecord(ctx context.Context, artifact, stagedPath string) {
	checksum, err := build.Checksum(b.fsys, stagedPath)
	if err != nil {
		logger.WarnKV(ctx, "Unable to checksum staged artifact", "artifact", stagedPath, "error", err)
		return
	}

	rec := build.NewRecord(artifact, checksum)
	if err = b.records.Save(ctx, rec); err != nil {
		logger.WarnKV(ctx, "Unable to write release record", "error", err)
		return
	}

	logger.InfoKV(ctx, "Release record written",
		"version", rec.VersionNumber,
		"built_at", rec.BuiltAt)
}
