package build

import (
	"runtime"
	"strings"
)

// ExecutableExtension returns ".exe" on Windows and "" elsewhere.
func ExecutableExtension() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return ".exe"
	}

	return ""
}

// ArtifactName returns the artifact filename produced for the application
// on the current platform.
func ArtifactName(appName string) string {
	return appName + ExecutableExtension()
}
