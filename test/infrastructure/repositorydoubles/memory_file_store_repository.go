//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing/fstest"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

// MemoryFileStoreRepository implements repositories.FileStoreRepository over an
// in-memory file system. Paths use forward slashes without a leading "./".
type MemoryFileStoreRepository struct {
	Files    fstest.MapFS
	WriteErr error
	Written  []string
}

var _ repositories.FileStoreRepository = (*MemoryFileStoreRepository)(nil)

// NewMemoryFileStoreRepository creates a store holding the given path -> content pairs.
func NewMemoryFileStoreRepository(files map[string]string) *MemoryFileStoreRepository {
	store := &MemoryFileStoreRepository{Files: fstest.MapFS{}}
	for path, content := range files {
		store.Files[path] = &fstest.MapFile{Data: []byte(content), Mode: 0o644}
	}
	return store
}

func (s *MemoryFileStoreRepository) Stat(path string) (os.FileInfo, error) {
	info, err := fs.Stat(s.Files, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", entities.ErrFileNotFound, path)
	}
	return info, err
}

func (s *MemoryFileStoreRepository) Read(path string) ([]byte, error) {
	data, err := fs.ReadFile(s.Files, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", entities.ErrFileNotFound, path)
	}
	return data, err
}

func (s *MemoryFileStoreRepository) Write(path string, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Files[path] = &fstest.MapFile{Data: data, Mode: 0o644}
	s.Written = append(s.Written, path)
	return nil
}

// Content returns the current content of path, or an empty string.
func (s *MemoryFileStoreRepository) Content(path string) string {
	if file, ok := s.Files[path]; ok {
		return string(file.Data)
	}
	return ""
}
