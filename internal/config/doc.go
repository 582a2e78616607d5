// Package config defines the build settings shared by the bundler pipeline.
//
// The settings are compiled in (Default) and may be overridden by an optional
// YAML file resolved from the working directory or the user config directory.
package config
