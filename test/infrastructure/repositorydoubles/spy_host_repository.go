//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

// SpyHostRepository implements repositories.HostRepository and records every side effect.
type SpyHostRepository struct {
	HostName string

	Variables      map[string]string
	VariableOrder  []string
	SetVariableErr error

	BuildNumbers         []string
	UpdateBuildNumberErr error

	Tags           []string
	AddBuildTagErr error
}

var _ repositories.HostRepository = (*SpyHostRepository)(nil)

// NewSpyHostRepository creates a spy reporting the given name.
func NewSpyHostRepository(name string) *SpyHostRepository {
	return &SpyHostRepository{HostName: name, Variables: make(map[string]string)}
}

func (h *SpyHostRepository) Name() string { return h.HostName }

func (h *SpyHostRepository) SetVariable(name, value string) error {
	if h.SetVariableErr != nil {
		return h.SetVariableErr
	}
	h.Variables[name] = value
	h.VariableOrder = append(h.VariableOrder, name)
	return nil
}

func (h *SpyHostRepository) UpdateBuildNumber(value string) error {
	if h.UpdateBuildNumberErr != nil {
		return h.UpdateBuildNumberErr
	}
	h.BuildNumbers = append(h.BuildNumbers, value)
	return nil
}

func (h *SpyHostRepository) AddBuildTag(value string) error {
	if h.AddBuildTagErr != nil {
		return h.AddBuildTagErr
	}
	h.Tags = append(h.Tags, value)
	return nil
}
