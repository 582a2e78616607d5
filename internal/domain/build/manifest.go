package build

import "runtime"

// DataDir designates a directory whose contents are embedded alongside
// the executable under a logical name.
type DataDir struct {
	// Name is the logical path of the directory inside the bundle.
	Name string
	// Source is the directory in the workspace to embed.
	Source string
}

// Manifest declares everything the packaging tool bundles into the artifact:
// the entry point, resource directories, dependency modules the tool cannot
// discover by static analysis, and packages requiring full resource collection.
type Manifest struct {
	// EntryPoint is the application script handed to the packaging tool.
	EntryPoint string
	// Name is the output base name of the artifact.
	Name string
	// Icon is the icon file to embed. Empty means no icon argument at all.
	Icon string
	// Data lists the resource directories to embed, in order.
	Data []DataDir
	// HiddenImports lists modules invisible to the tool's import scanner.
	HiddenImports []string
	// CollectAll lists packages whose non-code resources must be collected.
	CollectAll []string
}

// NewManifest returns the fixed bundle manifest for the analyzer application.
// The icon may be empty when the resolver found none.
func NewManifest(appName, entryPoint, icon string) *Manifest {
	return &Manifest{
		EntryPoint: entryPoint,
		Name:       appName,
		Icon:       icon,
		Data: []DataDir{
			{Name: "server", Source: "server"},
			{Name: "Scripts", Source: "Scripts"},
			{Name: "templates", Source: "templates"},
			{Name: "static", Source: "static"},
			{Name: "output", Source: "output"},
		},
		// jdatetime and tqdm are loaded dynamically by the analyzer scripts;
		// the scipy submodules hide behind `from scipy.optimize import brentq`.
		HiddenImports: []string{
			"jdatetime",
			"tqdm",
			"scipy.optimize",
			"scipy.stats",
		},
		// jdatetime ships locale data files the import scanner never sees.
		CollectAll: []string{"jdatetime"},
	}
}

// Args serializes the manifest into the packaging tool's argument list.
// This is the single boundary between the declarative manifest and the
// subprocess invocation.
func (m *Manifest) Args() []string {
	args := []string{
		"--onefile",
		"--noconsole",
		"--name", m.Name,
	}

	if m.Icon != "" {
		args = append(args, "--icon", m.Icon)
	}

	for _, d := range m.Data {
		args = append(args, "--add-data", d.Source+dataSeparator()+d.Name)
	}

	for _, name := range m.HiddenImports {
		args = append(args, "--hidden-import", name)
	}

	for _, name := range m.CollectAll {
		args = append(args, "--collect-all", name)
	}

	return append(args, m.EntryPoint)
}

// dataSeparator returns the source/destination separator the packaging tool
// expects in --add-data arguments for the current platform.
func dataSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}

	return ":"
}
