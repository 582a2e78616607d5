package record

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/tse-options/analyzer-bundler/internal/domain/build"
)

// Filename is the release record file kept next to staged artifacts.
const Filename = "analyzer-bundler-release.yaml"

// fileMode matches the permissions used for distributed artifacts.
const fileMode os.FileMode = 0o644

// Repository defines persistence operations for the release record.
type Repository interface {
	Load(ctx context.Context) (*build.Record, error)
	Save(ctx context.Context, rec *build.Record) error
}

// FileRepository persists the release record as YAML in the release directory.
type FileRepository struct {
	// fsys is the filesystem the record is stored on.
	fsys billy.Filesystem
	// path is the location of the YAML record file.
	path string
	// mu protects concurrent access to the record file.
	mu sync.Mutex
}

// ErrNotFound is returned when no record has been written yet.
var ErrNotFound = errors.New("release record not found")

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(fsys billy.Filesystem, path string) *FileRepository {
	return &FileRepository{
		fsys: fsys,
		path: filepath.Clean(path),
	}
}

// Load reads the record from disk.
func (r *FileRepository) Load(_ context.Context) (*build.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := util.ReadFile(r.fsys, r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read release record: %w", err)
	}

	var rec build.Record
	if err = yaml.Unmarshal(contents, &rec); err != nil {
		return nil, fmt.Errorf("decode release record: %w", err)
	}

	return &rec, nil
}

// Save writes the record to disk, replacing any previous one.
func (r *FileRepository) Save(_ context.Context, rec *build.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode release record: %w", err)
	}

	if err = util.WriteFile(r.fsys, r.path, data, fileMode); err != nil {
		return fmt.Errorf("write release record: %w", err)
	}

	return nil
}
