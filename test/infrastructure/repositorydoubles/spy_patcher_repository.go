//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

// SpyPatcherRepository implements repositories.PatcherRepository as a configurable spy.
type SpyPatcherRepository struct {
	// --- identity ---
	PatcherName string
	Kinds       []entities.FileKind

	// --- Patch ---
	Transform  func(text string) string
	Changes    []entities.FieldChange
	PatchErr   error
	PatchCalls []PatchCall
}

// PatchCall records a single invocation of Patch.
type PatchCall struct {
	Text   string
	Target entities.ManifestTarget
	Config *entities.RunConfig
}

var _ repositories.PatcherRepository = (*SpyPatcherRepository)(nil)

func (p *SpyPatcherRepository) Name() string { return p.PatcherName }

func (p *SpyPatcherRepository) Supports(kind entities.FileKind) bool {
	return slices.Contains(p.Kinds, kind)
}

func (p *SpyPatcherRepository) Patch(
	text string,
	target entities.ManifestTarget,
	config *entities.RunConfig,
) (*entities.PatchResult, error) {
	p.PatchCalls = append(p.PatchCalls, PatchCall{Text: text, Target: target, Config: config})
	if p.PatchErr != nil {
		return nil, p.PatchErr
	}

	result := &entities.PatchResult{Text: text, Changes: p.Changes}
	if p.Transform != nil {
		result.Text = p.Transform(text)
	}
	return result, nil
}
