package builder

import (
	"context"

	"github.com/tse-options/analyzer-bundler/internal/domain/build"
	"github.com/tse-options/analyzer-bundler/internal/logger"
)

// resolveResources locates the optional icon and freezes the bundle manifest.
// A missing icon degrades to packaging without one: this is the only stage
// whose failure mode is recoverable by design.
func (b *builder) resolveResources(ctx context.Context) error {
	icon := ""

	switch {
	case b.cfg.IconPath == "":
		logger.Info(ctx, "No icon configured, packaging without one")
	case exists(b.fsys, b.cfg.IconPath):
		icon = b.cfg.IconPath

		logger.InfoKV(ctx, "Icon resolved", "icon_path", icon)
	default:
		logger.WarnKV(ctx, "Icon not found, packaging without one", "icon_path", b.cfg.IconPath)
	}

	b.manifest = build.NewManifest(b.cfg.AppName, b.cfg.EntryPoint, icon)

	return nil
}
