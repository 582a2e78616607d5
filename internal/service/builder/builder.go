package builder

import (
	"context"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/tse-options/analyzer-bundler/internal/config"
	"github.com/tse-options/analyzer-bundler/internal/domain/build"
	"github.com/tse-options/analyzer-bundler/internal/logger"
	"github.com/tse-options/analyzer-bundler/internal/repository/record"
)

// builder holds the state of a single pipeline run.
// It is unexported—callers should use Run, which encapsulates setup and locking.
type builder struct {
	// cfg is the immutable build configuration for this run.
	cfg *config.Config
	// fsys is the workspace filesystem all stages read and write.
	fsys billy.Filesystem
	// runner spawns the packaging tool subprocesses.
	runner commandRunner
	// records persists the release record next to staged artifacts.
	records record.Repository
	// manifest is produced by the resource resolver before packaging.
	manifest *build.Manifest
	// state is the controller state, advanced through validated transitions.
	state State
}

// stage couples a pipeline step with its diagnostic name and target state.
type stage struct {
	name string
	to   State
	fn   func(context.Context) error
}

// newBuilder wires a builder over the provided filesystem and runner.
func newBuilder(cfg *config.Config, fsys billy.Filesystem, runner commandRunner) *builder {
	return &builder{
		cfg:     cfg,
		fsys:    fsys,
		runner:  runner,
		records: record.NewFileRepository(fsys, filepath.Join(cfg.ReleaseDir, record.Filename)),
		state:   StateInit,
	}
}

// Run executes the gated pipeline. Each stage runs only if every prior stage
// succeeded; the post-run cleanup pass runs on every terminal path.
func (b *builder) Run(ctx context.Context) error {
	runErr := b.runStages(ctx)

	if err := b.postClean(ctx); err != nil {
		return err
	}

	if runErr != nil {
		if err := b.advance(StateFailed); err != nil {
			return err
		}

		return runErr
	}

	if err := b.advance(StateSucceeded); err != nil {
		return err
	}

	return nil
}

// runStages walks the linear stage sequence, stopping at the first failure.
func (b *builder) runStages(ctx context.Context) error {
	stages := []stage{
		{name: "probe", to: StateProbed, fn: b.probe},
		{name: "tool-check", to: StateToolChecked, fn: b.checkTool},
		{name: "resolve-resources", to: StateResolved, fn: b.resolveResources},
		{name: "pre-clean", to: StatePreCleaned, fn: b.preClean},
		{name: "package", to: StatePackaged, fn: b.invokeTool},
		{name: "stage-release", to: StateStaged, fn: b.stageRelease},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return &stageError{stage: s.name, err: err}
		}

		if err := s.fn(ctx); err != nil {
			logger.ErrorKV(ctx, "Stage failed", "stage", s.name, "error", err)

			return &stageError{stage: s.name, err: err}
		}

		if err := b.advance(s.to); err != nil {
			return err
		}
	}

	return nil
}

// postClean is the unconditional cleanup pass after the pipeline terminates.
func (b *builder) postClean(ctx context.Context) error {
	if err := b.advance(StatePostCleaned); err != nil {
		return err
	}

	logger.Info(ctx, "Cleaning up transient build directories")
	b.removeStale(ctx)

	return nil
}

// exists reports whether a path is present on the workspace filesystem.
func exists(fsys billy.Filesystem, path string) bool {
	_, err := fsys.Stat(path)

	return err == nil
}
