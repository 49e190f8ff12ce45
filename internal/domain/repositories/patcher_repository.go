package repositories

import (
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

// PatcherRepository rewrites the stampable fields of one file family.
// Implementations work on decoded text only: reading, decoding, encoding and
// writing the file is the caller's job, so a failed patch never touches disk.
type PatcherRepository interface {
	// Name returns the patcher identifier (e.g. "msbuild", "attributes").
	Name() string

	// Supports returns true if the patcher handles the given file kind.
	Supports(kind entities.FileKind) bool

	// Patch applies the run's directives to text and returns the rewritten text
	// together with every field it wrote.
	Patch(text string, target entities.ManifestTarget, config *entities.RunConfig) (*entities.PatchResult, error)
}
