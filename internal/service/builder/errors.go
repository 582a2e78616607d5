package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironmentMismatch indicates the host toolchain has the wrong
	// architecture width. A mismatched toolchain produces a broken artifact
	// silently, so the pipeline never proceeds past this.
	ErrEnvironmentMismatch = errors.New("host architecture mismatch")

	// ErrToolMissing indicates the packaging tool is not installed or not invocable.
	ErrToolMissing = errors.New("packaging tool unavailable")

	// ErrEntryPointMissing indicates the application entry point does not exist,
	// so packaging must not be attempted.
	ErrEntryPointMissing = errors.New("entry point not found")

	// ErrPackagingFailed indicates the packaging tool exited with non-zero status.
	ErrPackagingFailed = errors.New("packaging failed")

	// ErrArtifactMissing indicates the tool reported success but produced no
	// artifact. This is an invariant violation, never ignored.
	ErrArtifactMissing = errors.New("artifact missing after packaging")

	// ErrBuildRunning indicates another build holds the run lock for this workspace.
	ErrBuildRunning = errors.New("another build is running now")
)

// stageError annotates a failure with the stage that produced it so the
// controller can report where the pipeline stopped.
type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.stage, e.err)
}

func (e *stageError) Unwrap() error {
	return e.err
}
