package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

// OSFileStoreRepository implements repositories.FileStoreRepository on the local disk.
// Writes go to a temporary sibling first and are renamed over the target, so a
// failed write never leaves a half-written file behind.
type OSFileStoreRepository struct{}

var _ repositories.FileStoreRepository = (*OSFileStoreRepository)(nil)

// NewOSFileStoreRepository creates a new file store.
func NewOSFileStoreRepository() *OSFileStoreRepository {
	return &OSFileStoreRepository{}
}

func (r *OSFileStoreRepository) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", entities.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	return info, nil
}

func (r *OSFileStoreRepository) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", entities.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return data, nil
}

func (r *OSFileStoreRepository) Write(path string, data []byte) error {
	info, err := r.Stat(path)
	if err != nil {
		return err
	}

	temp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %q: %w", path, err)
	}
	tempPath := temp.Name()
	defer os.Remove(tempPath) //nolint:errcheck // already renamed on success

	if _, writeErr := temp.Write(data); writeErr != nil {
		_ = temp.Close()
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	if closeErr := temp.Close(); closeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, closeErr)
	}
	if chmodErr := os.Chmod(tempPath, info.Mode().Perm()); chmodErr != nil {
		return fmt.Errorf("failed to keep permissions of %q: %w", path, chmodErr)
	}
	if renameErr := os.Rename(tempPath, path); renameErr != nil {
		return fmt.Errorf("failed to replace %q: %w", path, renameErr)
	}

	return nil
}
