package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/tse-options/analyzer-bundler/internal/logger"
)

// invokeTool runs the packaging tool with the serialized bundle manifest and
// waits for it to finish. The wait is intentionally unbounded: packaging
// duration is unpredictable and the tool gives no partial-progress signal.
// Failures are never retried; they are deterministic operator problems.
func (b *builder) invokeTool(ctx context.Context) error {
	if !exists(b.fsys, b.cfg.EntryPoint) {
		return fmt.Errorf("%w: %s", ErrEntryPointMissing, b.cfg.EntryPoint)
	}

	args := b.manifest.Args()

	logger.InfoKV(ctx, "Invoking packaging tool",
		"tool", b.cfg.Tool,
		"args", strings.Join(args, " "))

	res, err := b.runner.Run(ctx, b.cfg.Tool, args...)
	if err != nil {
		exitCode := -1
		if res != nil {
			exitCode = res.ExitCode
		}

		return fmt.Errorf("%w: exit code %d, check the tool output above", ErrPackagingFailed, exitCode)
	}

	logger.Info(ctx, "Packaging tool finished")

	return nil
}
