package builder

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/executor"
)

// commandRunner executes one external command and reports its outcome.
// The manifest serialization stays testable independent of process spawning
// because stages only ever talk to this interface.
type commandRunner interface {
	// Run executes the program, streaming output to the console while capturing it.
	Run(ctx context.Context, program string, args ...string) (*executor.Result, error)
	// RunQuiet executes the program capturing output without console echo.
	RunQuiet(ctx context.Context, program string, args ...string) (*executor.Result, error)
}

// toolRunner runs commands through the executor library.
type toolRunner struct{}

func (toolRunner) Run(ctx context.Context, program string, args ...string) (*executor.Result, error) {
	return executor.New(program, args...).Execute(ctx, executor.CaptureAll())
}

func (toolRunner) RunQuiet(ctx context.Context, program string, args ...string) (*executor.Result, error) {
	return executor.New(program, args...).Execute(ctx, executor.SilentMode())
}
