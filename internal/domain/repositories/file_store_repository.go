package repositories

import "os"

// FileStoreRepository reads and writes target files.
type FileStoreRepository interface {
	// Stat returns file information, or an error wrapping entities.ErrFileNotFound.
	Stat(path string) (os.FileInfo, error)

	// Read returns the raw bytes of path.
	Read(path string) ([]byte, error)

	// Write replaces the content of path while keeping its permissions.
	Write(path string, data []byte) error
}
