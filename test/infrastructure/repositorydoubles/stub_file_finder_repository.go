//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

// StubFileFinderRepository implements repositories.FileFinderRepository with a fixed answer.
type StubFileFinderRepository struct {
	Files   []string
	FindErr error

	LastRoot     string
	LastPatterns []string
}

var _ repositories.FileFinderRepository = (*StubFileFinderRepository)(nil)

func (f *StubFileFinderRepository) Find(root string, patterns []string) ([]string, error) {
	f.LastRoot = root
	f.LastPatterns = patterns
	return f.Files, f.FindErr
}
