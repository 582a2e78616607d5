package builder

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/tse-options/analyzer-bundler/internal/logger"
)

// probe verifies the host architecture width before any expensive work begins.
// The check is read-only; a mismatched toolchain would freeze a broken
// artifact without any error from the packaging tool.
func (b *builder) probe(ctx context.Context) error {
	actual := bits.UintSize
	if actual != b.cfg.RequiredArchBits {
		return fmt.Errorf(
			"%w: required %d-bit, running %d-bit; install a %d-bit toolchain from https://www.python.org/downloads/",
			ErrEnvironmentMismatch, b.cfg.RequiredArchBits, actual, b.cfg.RequiredArchBits,
		)
	}

	logger.InfoKV(ctx, "Host environment verified", "arch_bits", actual)

	return nil
}
