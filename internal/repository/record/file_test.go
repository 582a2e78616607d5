package record

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/tse-options/analyzer-bundler/internal/domain/build"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(memfs.New(), Filename)

	rec, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, rec)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns an equal record.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	repo := NewFileRepository(fsys, "release/"+Filename)

	want := build.NewRecord("Analyzer"+build.ExecutableExtension(), []byte("checksum"))

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.Artifact, got.Artifact)
	require.Equal(t, want.Checksum, got.Checksum)
	require.Equal(t, want.VersionNumber, got.VersionNumber)
	require.Equal(t, want.BuiltAt.Unix(), got.BuiltAt.Unix())
}

// TestFileRepository_SaveOverwrites ensures a second save replaces the first record.
func TestFileRepository_SaveOverwrites(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	repo := NewFileRepository(fsys, Filename)

	first := build.NewRecord("Analyzer", []byte("one"))
	second := build.NewRecord("Analyzer", []byte("two"))

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, second.Checksum, got.Checksum)
}
