package repositories

import (
	"fmt"
	"os"
	"sort"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	domainRepos "github.com/rios0rios0/assemblystamp/internal/domain/repositories"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories/azurepipelines"
)

const consoleHost = "console"

// HostFactory is a constructor function that creates a HostRepository.
type HostFactory func() domainRepos.HostRepository

// HostRegistry manages all registered CI host implementations.
type HostRegistry struct {
	hosts     map[string]HostFactory
	lookupEnv func(string) (string, bool)
}

// NewHostRegistry creates an empty host registry reading the process environment.
func NewHostRegistry() *HostRegistry {
	return NewHostRegistryWithEnv(os.LookupEnv)
}

// NewHostRegistryWithEnv creates an empty host registry using lookupEnv for auto detection.
func NewHostRegistryWithEnv(lookupEnv func(string) (string, bool)) *HostRegistry {
	return &HostRegistry{
		hosts:     make(map[string]HostFactory),
		lookupEnv: lookupEnv,
	}
}

// Register adds a host factory under the given name (e.g. "azurepipelines").
func (r *HostRegistry) Register(name string, factory HostFactory) {
	r.hosts[name] = factory
}

// Get returns a host instance for the given name.
func (r *HostRegistry) Get(name string) (domainRepos.HostRepository, error) {
	factory, ok := r.hosts[name]
	if !ok {
		return nil, fmt.Errorf("unknown host type: %q", name)
	}
	return factory(), nil
}

// Resolve returns the host for name, detecting it from the environment when name is "auto" or empty.
func (r *HostRegistry) Resolve(name string) (domainRepos.HostRepository, error) {
	if name == "" || name == entities.HostAuto {
		name = consoleHost
		if value, ok := r.lookupEnv(azurepipelines.DetectionVariable); ok && value != "" {
			name = "azurepipelines"
		}
	}
	return r.Get(name)
}

// Names returns the sorted list of registered host names.
func (r *HostRegistry) Names() []string {
	names := make([]string, 0, len(r.hosts))
	for name := range r.hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
