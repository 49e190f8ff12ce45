package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/assemblystamp/internal/domain/commands"
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

// TagController handles the "tag" subcommand.
type TagController struct {
	command commands.Tag
}

// NewTagController creates a new TagController.
func NewTagController(command commands.Tag) *TagController {
	return &TagController{command: command}
}

// GetBind returns the Cobra command metadata for the tag controller.
func (it *TagController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "tag",
		Short: "Rename and tag the current build",
		Long: `Rename and/or tag the current CI build without touching any file.
Both values accept $(date:FORMAT) tokens and version wildcards.`,
	}
}

// AddFlags adds the tag-specific flags to the given Cobra command.
func (it *TagController) AddFlags(cmd *cobra.Command) {
	addRunFlags(cmd)
}

// Execute renames and tags the build.
func (it *TagController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(cmd.Context(), settings)
	if err != nil {
		return err
	}

	return printSummary(report)
}
