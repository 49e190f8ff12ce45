package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/assemblystamp/internal"
	"github.com/rios0rios0/assemblystamp/internal/infrastructure/controllers"
)

func buildRootCommand(stampController *controllers.StampController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "assemblystamp [path]",
		Short: "Version and package metadata stamper for .NET projects",
		Long: `Writes version numbers and package metadata into MSBuild project files
(.csproj, .vbproj, .fsproj, Directory.Build.props) and AssemblyInfo sources
(.cs, .vb, .cpp) before a build.

Usage modes:
  assemblystamp .                Stamp everything below the current folder
  assemblystamp stamp ./src      Same as above, for a specific folder
  assemblystamp tag              Only rename and tag the current CI build`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			return stampController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	stampController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:           bind.Use,
			Short:         bind.Short,
			Long:          bind.Long,
			Args:          cobra.MaximumNArgs(1),
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE:          controller.Execute,
		}

		// Add controller-specific flags
		controller.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	resolved := injectApplication()
	cobraRoot := buildRootCommand(resolved.Stamp)
	addSubcommands(cobraRoot, resolved.App)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'assemblystamp': %s", err)
	}
}
