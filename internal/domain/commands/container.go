package commands

import (
	"time"

	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() Clock {
		return time.Now
	}); err != nil {
		return err
	}

	// Register command constructors
	if err := container.Provide(NewStampCommand); err != nil {
		return err
	}
	if err := container.Provide(NewTagCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *StampCommand) Stamp {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *TagCommand) Tag {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
