//go:build unit

package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/controllers"
	"github.com/rios0rios0/assemblystamp/test/domain/commanddoubles"
)

// newCobraCommand wires a controller the way main does, including the global flags.
func newCobraCommand(controller entities.Controller, args ...string) *cobra.Command {
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		RunE:          controller.Execute,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	cmd.SetArgs(args)
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".assemblystamp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStampControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should let explicit flags override the config file", func(t *testing.T) {
		t.Parallel()

		// given
		config := writeConfig(t, `
path: ./from-file
insert_attributes: true
fields:
  version_number: 1.0.*.*
  company: File Corp
`)
		stub := &commanddoubles.StubStampCommand{}
		cmd := newCobraCommand(controllers.NewStampController(stub),
			"--config", config, "--company", "Flag Corp", "--file-names", "**/*.csproj,**/AssemblyInfo.cs", "--dry-run")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "./from-file", stub.LastSettings.Path)
		assert.True(t, stub.LastSettings.InsertAttributes)
		assert.Equal(t, "1.0.*.*", stub.LastSettings.Fields.VersionNumber)
		assert.Equal(t, "Flag Corp", stub.LastSettings.Fields.Company)
		assert.Equal(t, []string{"**/*.csproj", "**/AssemblyInfo.cs"}, stub.LastSettings.FileNames)
		assert.True(t, stub.LastOpts.DryRun)
	})

	t.Run("should take the scan folder from the positional argument", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStampCommand{}
		cmd := newCobraCommand(controllers.NewStampController(stub),
			"--config", writeConfig(t, "log_level: normal\n"), "./src")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "./src", stub.LastSettings.Path)
		assert.Equal(t, entities.DefaultSettings().FileNames, stub.LastSettings.FileNames)
	})

	t.Run("should reject invalid picklist values before running", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStampCommand{}
		cmd := newCobraCommand(controllers.NewStampController(stub),
			"--config", writeConfig(t, "log_level: normal\n"), "--generate-package-on-build", "maybe")

		// when
		err := cmd.Execute()

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should fail when the report did not succeed", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewRunReport(true)
		report.AddWarning("Detected file encoding differs")
		stub := &commanddoubles.StubStampCommand{Report: report}
		cmd := newCobraCommand(controllers.NewStampController(stub),
			"--config", writeConfig(t, "log_level: normal\n"), "--fail-on-warning")

		// when
		err := cmd.Execute()

		// then
		require.Error(t, err)
		assert.True(t, stub.LastSettings.FailOnWarning)
	})

	t.Run("should propagate fatal errors", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStampCommand{ExecuteErr: entities.ErrSourceDirNotFound}
		cmd := newCobraCommand(controllers.NewStampController(stub),
			"--config", writeConfig(t, "log_level: normal\n"))

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrSourceDirNotFound)
	})

	t.Run("should report a missing config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubStampCommand{}
		cmd := newCobraCommand(controllers.NewStampController(stub),
			"--config", filepath.Join(t.TempDir(), "missing.yaml"))

		// when
		err := cmd.Execute()

		// then
		require.Error(t, err)
		assert.False(t, errors.Is(err, entities.ErrSourceDirNotFound))
		assert.Zero(t, stub.ExecuteCallCount)
	})
}
