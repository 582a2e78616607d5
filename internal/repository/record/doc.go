// Package record implements persistence for the release Record.
//
// The FileRepository stores and loads the record as YAML in the release
// directory and exposes a Repository interface the builder depends on.
package record
