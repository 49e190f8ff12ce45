package repositories

// HostRepository publishes run results to the CI host running the tool.
type HostRepository interface {
	// Name returns the host identifier (e.g. "azurepipelines", "console").
	Name() string

	// SetVariable publishes an output variable.
	SetVariable(name, value string) error

	// UpdateBuildNumber renames the current build.
	UpdateBuildNumber(value string) error

	// AddBuildTag tags the current build.
	AddBuildTag(value string) error
}
