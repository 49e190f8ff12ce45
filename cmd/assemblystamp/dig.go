package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/assemblystamp/internal"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/controllers"
)

// application is everything main needs from the graph: the stamp controller
// backs the bare root command and the app lists the named subcommands.
type application struct {
	dig.In

	Stamp *controllers.StampController
	App   *internal.AppInternal
}

// injectApplication builds one graph so the root command and the stamp
// subcommand share the same stamp command and host registry.
func injectApplication() application {
	container := dig.New()
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var resolved application
	if err := container.Invoke(func(deps application) { resolved = deps }); err != nil {
		panic(err)
	}
	return resolved
}
