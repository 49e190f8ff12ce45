// Package internal assembles the assemblystamp object graph: file discovery,
// codecs, patchers and CI hosts feed the stamp and tag commands, which the
// cobra controllers expose on the command line.
package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/assemblystamp/internal/domain/commands"
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/controllers"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories"
)

// layers lists each package registrar in dependency order; a layer may only
// depend on types provided by the ones before it.
//
//nolint:gochecknoglobals // fixed registration order
var layers = []func(*dig.Container) error{
	repositories.RegisterProviders,
	entities.RegisterProviders,
	commands.RegisterProviders,
	controllers.RegisterProviders,
}

// RegisterProviders wires patchers, hosts, commands and controllers into container,
// then the AppInternal that lists the subcommands.
func RegisterProviders(container *dig.Container) error {
	for _, register := range layers {
		if err := register(container); err != nil {
			return err
		}
	}
	return container.Provide(NewAppInternal)
}
