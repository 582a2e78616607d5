package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/tse-options/analyzer-bundler/internal/logger"
)

// checkTool verifies the packaging tool is installed and invocable by asking
// it for its version. The introspection call captures output silently so a
// passing check leaves nothing behind on the console.
func (b *builder) checkTool(ctx context.Context) error {
	res, err := b.runner.RunQuiet(ctx, b.cfg.Tool, "--version")
	if err != nil {
		return fmt.Errorf(
			"%w: %s is not installed or not on PATH; install it with `pip install %s`",
			ErrToolMissing, b.cfg.Tool, b.cfg.Tool,
		)
	}

	logger.InfoKV(ctx, "Packaging tool available",
		"tool", b.cfg.Tool,
		"tool_version", strings.TrimSpace(res.Stdout))

	return nil
}
