package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds the build settings for a single packaging run.
// It is constructed once at pipeline start and never mutated afterwards.
type Config struct {
	// AppName is the base name of the produced artifact.
	AppName string `yaml:"app_name"`
	// EntryPoint is the application script handed to the packaging tool.
	EntryPoint string `yaml:"entry_point"`
	// IconPath is an optional icon file; packaging proceeds without it if absent.
	IconPath string `yaml:"icon_path"`
	// ReleaseDir is the persistent directory where finished artifacts are staged.
	ReleaseDir string `yaml:"release_dir"`
	// ScratchDir is the transient working directory created by the packaging tool.
	ScratchDir string `yaml:"scratch_dir"`
	// DistDir is the transient directory where the packaging tool drops its output.
	DistDir string `yaml:"dist_dir"`
	// SpecFile is the generated tool spec file left behind after a run.
	SpecFile string `yaml:"spec_file"`
	// Tool is the packaging tool executable name.
	Tool string `yaml:"tool"`
	// RequiredArchBits is the pointer width the host toolchain must have.
	RequiredArchBits int `yaml:"required_arch_bits"`
}

const (
	// DefaultConfigFilename is the default filename for build settings overrides.
	DefaultConfigFilename = "analyzer-bundler.yaml"

	// DefaultAppName is the base name of the distributable executable.
	DefaultAppName = "TSE_Options_Analyzer"

	// DefaultTool is the packaging tool invoked to freeze the application.
	DefaultTool = "pyinstaller"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errAppNameRequired is returned when the application name is missing.
	errAppNameRequired = errors.New("application name must be provided")
	// errEntryPointRequired is returned when the entry point is missing.
	errEntryPointRequired = errors.New("entry point must be provided")
	// errBadArchBits is returned when the required architecture width is not 32 or 64.
	errBadArchBits = errors.New("required architecture width must be 32 or 64")
)

// Default returns the compiled-in build settings for the analyzer.
// The YAML file loaded by Load only overrides these values.
func Default() *Config {
	return &Config{
		AppName:          DefaultAppName,
		EntryPoint:       "run.py",
		IconPath:         filepath.Join("static", "favicon.ico"),
		ReleaseDir:       "release",
		ScratchDir:       "build",
		DistDir:          "dist",
		SpecFile:         DefaultAppName + ".spec",
		Tool:             DefaultTool,
		RequiredArchBits: 64,
	}
}

// DefaultPath resolves the settings file location: a file in the working
// directory wins, otherwise the per-user config directory is used.
func DefaultPath() string {
	if _, err := os.Stat(DefaultConfigFilename); err == nil {
		return DefaultConfigFilename
	}

	path, err := xdg.ConfigFile(filepath.Join("analyzer-bundler", DefaultConfigFilename))
	if err != nil {
		return DefaultConfigFilename
	}

	return path
}

// Load reads configuration from the provided path and validates essential fields.
// A missing file is not an error: the compiled-in defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults
// for the optional ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.AppName == "" {
		return errAppNameRequired
	}

	if cfg.EntryPoint == "" {
		return errEntryPointRequired
	}

	if cfg.RequiredArchBits != 32 && cfg.RequiredArchBits != 64 {
		return errBadArchBits
	}

	if cfg.ReleaseDir == "" {
		cfg.ReleaseDir = "release"
	}

	if cfg.ScratchDir == "" {
		cfg.ScratchDir = "build"
	}

	if cfg.DistDir == "" {
		cfg.DistDir = "dist"
	}

	if cfg.SpecFile == "" {
		cfg.SpecFile = cfg.AppName + ".spec"
	}

	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}

	return nil
}
