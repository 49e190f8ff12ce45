package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/assemblystamp/internal/domain/commands"
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

// StampController handles the "stamp" subcommand and the root command with a path argument.
type StampController struct {
	command commands.Stamp
}

// NewStampController creates a new StampController.
func NewStampController(command commands.Stamp) *StampController {
	return &StampController{command: command}
}

// GetBind returns the Cobra command metadata for the stamp controller.
func (it *StampController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "stamp [path]",
		Short: "Stamp version and package metadata into .NET projects",
		Long: `Find MSBuild projects and AssemblyInfo sources below a folder and
write the configured version and package fields into them.

Version values accept wildcards: ".*" becomes the build number (days since
2000-01-01) and ".*.*" the build and release numbers (half-seconds since
midnight). A "#" component keeps the value already present in the file.`,
	}
}

// AddFlags adds the stamp-specific flags to the given Cobra command.
func (it *StampController) AddFlags(cmd *cobra.Command) {
	addStampFlags(cmd)
}

// Execute runs a stamping pass and fails when the report did not succeed.
func (it *StampController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	report, err := it.command.Execute(cmd.Context(), settings, commands.StampOptions{DryRun: dryRun})
	if err != nil {
		return err
	}

	return printSummary(report)
}
