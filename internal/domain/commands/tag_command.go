package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories"
)

// Tag is the interface for the tag command (build rename and tag only).
type Tag interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.RunReport, error)
}

// TagCommand renames and tags the current build without touching any file.
type TagCommand struct {
	hostRegistry *infraRepos.HostRegistry
	clock        Clock
}

// NewTagCommand creates a new TagCommand with the given host registry.
func NewTagCommand(hostRegistry *infraRepos.HostRegistry, clock Clock) *TagCommand {
	return &TagCommand{
		hostRegistry: hostRegistry,
		clock:        clock,
	}
}

// Execute applies the build number and build tag templates of settings.
func (it *TagCommand) Execute(ctx context.Context, settings *entities.Settings) (*entities.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	host, err := it.hostRegistry.Resolve(settings.Host)
	if err != nil {
		return nil, err
	}

	config := entities.NewRunConfig(settings, it.clock())
	report := entities.NewRunReport(config.FailOnWarning)
	logger.Infof("Host: %s", host.Name())
	logger.Infof("Build components: %s", config.Components)

	if config.BuildNumber == "" && config.BuildTag == "" {
		report.AddWarning("Neither a build number nor a build tag was given")
		return report, nil
	}

	applyBuildEffects(host, config, report)
	return report, nil
}

// applyBuildEffects renames and tags the build when the run asks for it.
func applyBuildEffects(host repositories.HostRepository, config *entities.RunConfig, report *entities.RunReport) {
	if config.BuildNumber != "" {
		if err := host.UpdateBuildNumber(config.BuildNumber); err != nil {
			report.AddError(fmt.Sprintf("Failed to update build number: %v", err))
		}
	}
	if config.BuildTag != "" {
		if err := host.AddBuildTag(config.BuildTag); err != nil {
			report.AddError(fmt.Sprintf("Failed to add build tag: %v", err))
		}
	}
}
