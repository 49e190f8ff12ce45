//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RunConfigBuilder helps create test run configurations with a fluent interface.
type RunConfigBuilder struct {
	*testkit.BaseBuilder
	rootPath      string
	fileNames     []string
	values        entities.FieldValues
	insert        bool
	encoding      string
	writeBOM      bool
	failOnWarning bool
	ignoreLegacy  bool
	components    entities.VersionComponents
	buildNumber   string
	buildTag      string
}

// NewRunConfigBuilder creates a new run config builder with sensible defaults.
func NewRunConfigBuilder() *RunConfigBuilder {
	return &RunConfigBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		rootPath:    ".",
		fileNames:   []string{"**/*.csproj"},
		encoding:    entities.EncodingAuto,
		components:  entities.VersionComponents{BuildNumber: 6880, ReleaseNumber: 2018},
	}
}

// WithRootPath sets the scan root.
func (b *RunConfigBuilder) WithRootPath(path string) *RunConfigBuilder {
	b.rootPath = path
	return b
}

// WithFileNames sets the file name patterns.
func (b *RunConfigBuilder) WithFileNames(patterns ...string) *RunConfigBuilder {
	b.fileNames = patterns
	return b
}

// WithField sets the desired value of a single field.
func (b *RunConfigBuilder) WithField(key entities.FieldKey, value string) *RunConfigBuilder {
	*b.values.Slot(key) = value
	return b
}

// WithInsertAttributes enables or disables insertion of missing fields.
func (b *RunConfigBuilder) WithInsertAttributes(insert bool) *RunConfigBuilder {
	b.insert = insert
	return b
}

// WithEncoding sets the configured file encoding.
func (b *RunConfigBuilder) WithEncoding(encoding string) *RunConfigBuilder {
	b.encoding = encoding
	return b
}

// WithWriteBOM sets the byte order mark policy.
func (b *RunConfigBuilder) WithWriteBOM(writeBOM bool) *RunConfigBuilder {
	b.writeBOM = writeBOM
	return b
}

// WithFailOnWarning makes warnings fail the run.
func (b *RunConfigBuilder) WithFailOnWarning(failOnWarning bool) *RunConfigBuilder {
	b.failOnWarning = failOnWarning
	return b
}

// WithIgnoreNetFrameworkProjects skips legacy framework projects.
func (b *RunConfigBuilder) WithIgnoreNetFrameworkProjects(ignore bool) *RunConfigBuilder {
	b.ignoreLegacy = ignore
	return b
}

// WithComponents sets the run's build and release numbers.
func (b *RunConfigBuilder) WithComponents(build, release int) *RunConfigBuilder {
	b.components = entities.VersionComponents{BuildNumber: build, ReleaseNumber: release}
	return b
}

// WithBuildNumber sets the already expanded build name.
func (b *RunConfigBuilder) WithBuildNumber(buildNumber string) *RunConfigBuilder {
	b.buildNumber = buildNumber
	return b
}

// WithBuildTag sets the already expanded build tag.
func (b *RunConfigBuilder) WithBuildTag(buildTag string) *RunConfigBuilder {
	b.buildTag = buildTag
	return b
}

// Build creates the run config (satisfies testkit.Builder interface).
func (b *RunConfigBuilder) Build() interface{} {
	return b.BuildRunConfig()
}

// BuildRunConfig creates the run config with a concrete return type.
func (b *RunConfigBuilder) BuildRunConfig() *entities.RunConfig {
	return &entities.RunConfig{
		RootPath:                   b.rootPath,
		FileNames:                  append([]string(nil), b.fileNames...),
		InsertAttributes:           b.insert,
		FileEncoding:               b.encoding,
		WriteBOM:                   b.writeBOM,
		FailOnWarning:              b.failOnWarning,
		IgnoreNetFrameworkProjects: b.ignoreLegacy,
		Directives:                 entities.NewFieldDirectives(b.values, b.insert),
		Components:                 b.components,
		BuildNumber:                b.buildNumber,
		BuildTag:                   b.buildTag,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RunConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.rootPath = "."
	b.fileNames = []string{"**/*.csproj"}
	b.values = entities.FieldValues{}
	b.insert = false
	b.encoding = entities.EncodingAuto
	b.writeBOM = false
	b.failOnWarning = false
	b.ignoreLegacy = false
	b.components = entities.VersionComponents{BuildNumber: 6880, ReleaseNumber: 2018}
	b.buildNumber = ""
	b.buildTag = ""
	return b
}

// Clone creates a deep copy of the RunConfigBuilder.
func (b *RunConfigBuilder) Clone() testkit.Builder {
	return &RunConfigBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		rootPath:      b.rootPath,
		fileNames:     append([]string(nil), b.fileNames...),
		values:        b.values,
		insert:        b.insert,
		encoding:      b.encoding,
		writeBOM:      b.writeBOM,
		failOnWarning: b.failOnWarning,
		ignoreLegacy:  b.ignoreLegacy,
		components:    b.components,
		buildNumber:   b.buildNumber,
		buildTag:      b.buildTag,
	}
}
