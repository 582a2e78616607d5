package build

import (
	"encoding/base64"
	"time"

	"github.com/tse-options/analyzer-bundler/internal/version"
)

// Record describes the artifact last staged into the release directory.
type Record struct {
	// VersionNumber is the bundler version that produced the artifact.
	VersionNumber string `yaml:"version"`
	// Artifact is the staged executable filename.
	Artifact string `yaml:"artifact"`
	// Checksum is the base64-encoded checksum of the staged artifact.
	Checksum string `yaml:"checksum"`
	// BuiltAt is when the artifact was staged.
	BuiltAt time.Time `yaml:"built_at"`
}

// NewRecord produces a Record for a freshly staged artifact.
func NewRecord(artifact string, checksum []byte) *Record {
	return &Record{
		VersionNumber: version.Short(),
		Artifact:      artifact,
		Checksum:      base64.StdEncoding.EncodeToString(checksum),
		BuiltAt:       time.Now().UTC(),
	}
}
