//go:build unit

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/filesystem"
)

func TestOSFileStoreRepository(t *testing.T) {
	t.Parallel()

	t.Run("should replace content and keep permissions", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "App.csproj")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o640))
		store := filesystem.NewOSFileStoreRepository()

		// when
		err := store.Write(path, []byte("new"))

		// then
		require.NoError(t, err)
		data, readErr := store.Read(path)
		require.NoError(t, readErr)
		assert.Equal(t, []byte("new"), data)
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
		entries, dirErr := os.ReadDir(filepath.Dir(path))
		require.NoError(t, dirErr)
		assert.Len(t, entries, 1)
	})

	t.Run("should report missing files as not found", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.cs")
		store := filesystem.NewOSFileStoreRepository()

		// when
		_, statErr := store.Stat(path)
		_, readErr := store.Read(path)
		writeErr := store.Write(path, []byte("x"))

		// then
		require.ErrorIs(t, statErr, entities.ErrFileNotFound)
		require.ErrorIs(t, readErr, entities.ErrFileNotFound)
		require.ErrorIs(t, writeErr, entities.ErrFileNotFound)
	})
}
