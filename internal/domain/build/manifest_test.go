package build

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestManifestArgsWithIcon ensures the icon argument appears exactly once
// with the resolved path.
func TestManifestArgsWithIcon(t *testing.T) {
	t.Parallel()

	m := NewManifest("Analyzer", "run.py", "static/favicon.ico")
	args := m.Args()

	count := 0
	for i, a := range args {
		if a == "--icon" {
			count++
			require.Equal(t, "static/favicon.ico", args[i+1])
		}
	}

	require.Equal(t, 1, count)
	require.Equal(t, "run.py", args[len(args)-1])
}

// TestManifestArgsWithoutIcon ensures no icon argument is constructed
// when the resolver found none.
func TestManifestArgsWithoutIcon(t *testing.T) {
	t.Parallel()

	m := NewManifest("Analyzer", "run.py", "")

	require.NotContains(t, m.Args(), "--icon")
}

// TestManifestArgsShape checks output mode, naming and per-entry arguments.
func TestManifestArgsShape(t *testing.T) {
	t.Parallel()

	m := NewManifest("Analyzer", "run.py", "")
	args := m.Args()

	require.Contains(t, args, "--onefile")
	require.Contains(t, args, "--noconsole")
	require.Contains(t, args, "--name")
	require.Contains(t, args, "Analyzer")

	counts := map[string]int{}
	for _, a := range args {
		counts[a]++
	}

	require.Equal(t, len(m.Data), counts["--add-data"])
	require.Equal(t, len(m.HiddenImports), counts["--hidden-import"])
	require.Equal(t, len(m.CollectAll), counts["--collect-all"])

	// Data directories keep their declared order.
	sep := dataSeparator()
	var dataArgs []string

	for i, a := range args {
		if a == "--add-data" {
			dataArgs = append(dataArgs, args[i+1])
		}
	}

	for i, d := range m.Data {
		require.Equal(t, d.Source+sep+d.Name, dataArgs[i])
	}
}

// TestArtifactName checks platform-specific artifact naming.
func TestArtifactName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Analyzer"+ExecutableExtension(), ArtifactName("Analyzer"))
}
