package controllers

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

var errRunFailed = errors.New("run failed")

// fieldFlag binds one field value to its command-line flag.
type fieldFlag struct {
	name  string
	key   entities.FieldKey
	usage string
}

//nolint:gochecknoglobals // fixed flag table
var fieldFlags = []fieldFlag{
	{"version-number", entities.FieldVersion, "AssemblyVersion, e.g. 1.0.*.* or #.#.*"},
	{"file-version-number", entities.FieldFileVersion, "AssemblyFileVersion / FileVersion"},
	{"informational-version", entities.FieldInformationalVersion, "AssemblyInformationalVersion / InformationalVersion"},
	{"package-version", entities.FieldPackageVersion, "NuGet package version (project <Version>)"},
	{"package-id", entities.FieldPackageID, "NuGet package id"},
	{"title", entities.FieldTitle, "AssemblyTitle"},
	{"authors", entities.FieldAuthors, "package authors"},
	{"company", entities.FieldCompany, "AssemblyCompany / Company"},
	{"product", entities.FieldProduct, "AssemblyProduct / Product"},
	{"description", entities.FieldDescription, "AssemblyDescription / Description"},
	{"copyright", entities.FieldCopyright, "AssemblyCopyright / Copyright"},
	{"trademark", entities.FieldTrademark, "AssemblyTrademark"},
	{"culture", entities.FieldCulture, "AssemblyCulture / NeutralLanguage"},
	{"configuration", entities.FieldConfiguration, "AssemblyConfiguration"},
	{"package-license-url", entities.FieldPackageLicenseURL, "PackageLicenseUrl"},
	{"package-project-url", entities.FieldPackageProjectURL, "PackageProjectUrl"},
	{"package-icon-url", entities.FieldPackageIconURL, "PackageIconUrl"},
	{"repository-url", entities.FieldRepositoryURL, "RepositoryUrl"},
	{"repository-type", entities.FieldRepositoryType, "RepositoryType"},
	{"package-tags", entities.FieldPackageTags, "PackageTags"},
	{"package-release-notes", entities.FieldPackageReleaseNotes, "PackageReleaseNotes"},
	{"generate-package-on-build", entities.FieldGeneratePackageOnBuild, "true, false or ignore"},
	{"package-require-license-acceptance", entities.FieldPackageRequireLicenseAcceptance, "true, false or ignore"},
	{"generate-documentation-file", entities.FieldGenerateDocumentationFile, "true, false or ignore"},
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", entities.HostAuto, "CI host to publish to (auto, azurepipelines, console)")
	cmd.Flags().String("log-level", entities.LogLevelNormal, "Log verbosity (normal, verbose, off)")
	cmd.Flags().Bool("fail-on-warning", false, "Fail the run when any warning is reported")
	cmd.Flags().String("update-build-number", "", "Rename the build, wildcards and $(date:...) allowed")
	cmd.Flags().String("add-build-tag", "", "Tag the build, wildcards and $(date:...) allowed")
}

func addStampFlags(cmd *cobra.Command) {
	addRunFlags(cmd)
	cmd.Flags().String("path", "", "Folder to scan (default: the [path] argument or .)")
	cmd.Flags().StringArray("file-names", nil, "File name patterns, comma or newline separated, ! to exclude")
	cmd.Flags().Bool("insert-attributes", false, "Add fields missing from a file")
	cmd.Flags().String("file-encoding", entities.EncodingAuto, "File encoding, or auto to detect it per file")
	cmd.Flags().Bool("write-bom", false, "Write a unicode byte order mark")
	cmd.Flags().Bool("ignore-netframework-projects", false, "Skip projects declaring TargetFrameworkVersion")
	for _, flag := range fieldFlags {
		cmd.Flags().String(flag.name, "", flag.usage)
	}
}

// loadSettings layers defaults, the configuration file and explicitly set flags.
func loadSettings(cmd *cobra.Command, args []string) (*entities.Settings, error) {
	settings, err := readSettingsFile(cmd)
	if err != nil {
		return nil, err
	}

	overrideString(cmd, "host", &settings.Host)
	overrideString(cmd, "log-level", &settings.LogLevel)
	overrideBool(cmd, "fail-on-warning", &settings.FailOnWarning)
	overrideString(cmd, "update-build-number", &settings.UpdateBuildNumber)
	overrideString(cmd, "add-build-tag", &settings.AddBuildTag)
	overrideString(cmd, "path", &settings.Path)
	overrideBool(cmd, "insert-attributes", &settings.InsertAttributes)
	overrideString(cmd, "file-encoding", &settings.FileEncoding)
	overrideBool(cmd, "write-bom", &settings.WriteBOM)
	overrideBool(cmd, "ignore-netframework-projects", &settings.IgnoreNetFrameworkProjects)
	for _, flag := range fieldFlags {
		overrideString(cmd, flag.name, settings.Fields.Slot(flag.key))
	}
	if cmd.Flags().Changed("file-names") {
		settings.FileNames, _ = cmd.Flags().GetStringArray("file-names")
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		settings.LogLevel = entities.LogLevelVerbose
	}
	if len(args) > 0 && !cmd.Flags().Changed("path") {
		settings.Path = args[0]
	}
	settings.FileNames = entities.SplitFileNames(settings.FileNames)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid settings: %w", validateErr)
	}
	applyLogLevel(settings.LogLevel)

	return settings, nil
}

func readSettingsFile(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file: %v", err)
			return entities.DefaultSettings(), nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

func overrideString(cmd *cobra.Command, name string, target *string) {
	if cmd.Flags().Changed(name) {
		*target, _ = cmd.Flags().GetString(name)
	}
}

func overrideBool(cmd *cobra.Command, name string, target *bool) {
	if cmd.Flags().Changed(name) {
		*target, _ = cmd.Flags().GetBool(name)
	}
}

// applyLogLevel maps the configured verbosity onto logrus. Warnings and errors
// always stay visible because they decide the outcome of the run.
func applyLogLevel(level string) {
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
		return
	}

	switch level {
	case entities.LogLevelVerbose:
		logger.SetLevel(logger.DebugLevel)
	case entities.LogLevelOff:
		logger.SetLevel(logger.WarnLevel)
	default:
		logger.SetLevel(logger.InfoLevel)
	}
}
