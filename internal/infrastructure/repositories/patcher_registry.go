package repositories

import (
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	domainRepos "github.com/rios0rios0/assemblystamp/internal/domain/repositories"
)

// PatcherRegistry manages all registered file patcher implementations.
type PatcherRegistry struct {
	order    []domainRepos.PatcherRepository
	patchers map[string]domainRepos.PatcherRepository
}

// NewPatcherRegistry creates an empty patcher registry.
func NewPatcherRegistry() *PatcherRegistry {
	return &PatcherRegistry{
		patchers: make(map[string]domainRepos.PatcherRepository),
	}
}

// Register adds a patcher under its name, replacing any patcher with the same name.
func (r *PatcherRegistry) Register(p domainRepos.PatcherRepository) {
	if _, exists := r.patchers[p.Name()]; exists {
		for i, registered := range r.order {
			if registered.Name() == p.Name() {
				r.order[i] = p
			}
		}
	} else {
		r.order = append(r.order, p)
	}
	r.patchers[p.Name()] = p
}

// Get returns the patcher with the given name, or nil if not registered.
func (r *PatcherRegistry) Get(name string) domainRepos.PatcherRepository {
	return r.patchers[name]
}

// ForKind returns the first registered patcher supporting kind, or nil.
func (r *PatcherRegistry) ForKind(kind entities.FileKind) domainRepos.PatcherRepository {
	for _, p := range r.order {
		if p.Supports(kind) {
			return p
		}
	}
	return nil
}

// All returns every registered patcher in registration order.
func (r *PatcherRegistry) All() []domainRepos.PatcherRepository {
	result := make([]domainRepos.PatcherRepository, len(r.order))
	copy(result, r.order)
	return result
}

// Names returns the list of registered patcher names in registration order.
func (r *PatcherRegistry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, p := range r.order {
		names = append(names, p.Name())
	}
	return names
}
