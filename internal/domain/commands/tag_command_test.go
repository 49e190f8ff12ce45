//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/assemblystamp/internal/domain/commands"
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/assemblystamp/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/assemblystamp/test/infrastructure/repositorydoubles"
)

func newTagCommand(host *doubles.SpyHostRepository) *commands.TagCommand {
	hosts := infraRepos.NewHostRegistryWithEnv(func(string) (string, bool) { return "", false })
	hosts.Register("spy", func() repositories.HostRepository { return host })
	return commands.NewTagCommand(hosts, fixedClock)
}

func TestTagCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should rename and tag the build with expanded templates", func(t *testing.T) {
		t.Parallel()

		// given
		host := doubles.NewSpyHostRepository("spy")
		settings := newStampSettings()
		settings.UpdateBuildNumber = "Nightly_$(date:YYYY)_1.*.*"
		settings.AddBuildTag = "nightly"

		// when
		report, err := newTagCommand(host).Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.True(t, report.Succeeded())
		assert.Equal(t, []string{"Nightly_2000_1.10.20"}, host.BuildNumbers)
		assert.Equal(t, []string{"nightly"}, host.Tags)
	})

	t.Run("should warn when there is nothing to do", func(t *testing.T) {
		t.Parallel()

		// given
		host := doubles.NewSpyHostRepository("spy")

		// when
		report, err := newTagCommand(host).Execute(context.Background(), newStampSettings())

		// then
		require.NoError(t, err)
		assert.Len(t, report.Warnings, 1)
		assert.Empty(t, host.BuildNumbers)
		assert.Empty(t, host.Tags)
	})

	t.Run("should record host failures as errors", func(t *testing.T) {
		t.Parallel()

		// given
		host := doubles.NewSpyHostRepository("spy")
		host.AddBuildTagErr = errors.New("agent unavailable")
		settings := newStampSettings()
		settings.AddBuildTag = "nightly"

		// when
		report, err := newTagCommand(host).Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.False(t, report.Succeeded())
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "agent unavailable")
	})

	t.Run("should reject an unknown host", func(t *testing.T) {
		t.Parallel()

		// given
		host := doubles.NewSpyHostRepository("spy")
		settings := newStampSettings()
		settings.Host = "teamcity"

		// when
		report, err := newTagCommand(host).Execute(context.Background(), settings)

		// then
		require.Error(t, err)
		assert.Nil(t, report)
	})
}

func TestApplyBuildEffects(t *testing.T) {
	t.Parallel()

	t.Run("should only call the host for non-empty values", func(t *testing.T) {
		t.Parallel()

		// given
		host := doubles.NewSpyHostRepository("spy")
		config := &entities.RunConfig{BuildTag: "release"}
		report := entities.NewRunReport(false)

		// when
		commands.ApplyBuildEffects(host, config, report)

		// then
		assert.Empty(t, host.BuildNumbers)
		assert.Equal(t, []string{"release"}, host.Tags)
		assert.Empty(t, report.Errors)
	})
}
