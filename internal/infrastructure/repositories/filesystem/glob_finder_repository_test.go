//go:build unit

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/filesystem"
)

func TestGlobFinderRepositoryFind(t *testing.T) {
	t.Parallel()

	t.Run("should match recursively and order by pattern then path", func(t *testing.T) {
		t.Parallel()

		// given
		root := createTree(t, "b/B.csproj", "a/A.csproj", "a/Properties/AssemblyInfo.cs", "a/readme.md")
		finder := filesystem.NewGlobFinderRepository()

		// when
		files, err := finder.Find(root, []string{"**/AssemblyInfo.cs", "**/*.csproj"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a", "Properties", "AssemblyInfo.cs"),
			filepath.Join(root, "a", "A.csproj"),
			filepath.Join(root, "b", "B.csproj"),
		}, files)
	})

	t.Run("should not repeat files matched by several patterns", func(t *testing.T) {
		t.Parallel()

		// given
		root := createTree(t, "src/App.csproj")
		finder := filesystem.NewGlobFinderRepository()

		// when
		files, err := finder.Find(root, []string{"**/*.csproj", "src/App.csproj"})

		// then
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("should drop files matched by an exclude pattern", func(t *testing.T) {
		t.Parallel()

		// given
		root := createTree(t, "src/App.csproj", "tests/App.Tests.csproj")
		finder := filesystem.NewGlobFinderRepository()

		// when
		files, err := finder.Find(root, []string{"**/*.csproj", "!tests/**"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "src", "App.csproj")}, files)
	})

	t.Run("should return nothing when no file matches", func(t *testing.T) {
		t.Parallel()

		// given
		root := createTree(t, "src/App.csproj")
		finder := filesystem.NewGlobFinderRepository()

		// when
		files, err := finder.Find(root, []string{"**/*.vbproj"})

		// then
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("should reject malformed patterns", func(t *testing.T) {
		t.Parallel()

		// given
		root := createTree(t, "src/App.csproj")
		finder := filesystem.NewGlobFinderRepository()

		// when
		_, err := finder.Find(root, []string{"src/[.csproj"})

		// then
		require.Error(t, err)
	})
}

func createTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, file := range files {
		full := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o600))
	}
	return root
}
