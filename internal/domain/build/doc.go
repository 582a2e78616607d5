// Package build holds the data model of the bundler: the bundle manifest
// serialized into packaging tool arguments, artifact naming helpers, and
// the release record written next to staged artifacts.
package build
