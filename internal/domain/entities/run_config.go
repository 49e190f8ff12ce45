package entities

import (
	"strings"
	"time"
)

// RunConfig is the immutable context shared by every file of a run.
type RunConfig struct {
	RootPath                   string
	FileNames                  []string
	InsertAttributes           bool
	FileEncoding               string
	WriteBOM                   bool
	FailOnWarning              bool
	IgnoreNetFrameworkProjects bool
	Directives                 []FieldDirective
	Components                 VersionComponents
	BuildNumber                string
	BuildTag                   string
}

// NewRunConfig resolves settings against the run instant: date tokens are
// rendered, version inputs reduced to their numeric run, and the build
// number and tag templates expanded with the run's components.
func NewRunConfig(settings *Settings, now time.Time) *RunConfig {
	components := NewVersionComponents(now)

	values := settings.Fields
	for _, definition := range FieldDefinitions() {
		slot := values.Slot(definition.Key)
		*slot = TransformDates(*slot, now)
	}

	encoding := strings.ToLower(strings.TrimSpace(settings.FileEncoding))
	if encoding == "" {
		encoding = EncodingAuto
	}

	return &RunConfig{
		RootPath:                   settings.Path,
		FileNames:                  SplitFileNames(settings.FileNames),
		InsertAttributes:           settings.InsertAttributes,
		FileEncoding:               encoding,
		WriteBOM:                   settings.WriteBOM,
		FailOnWarning:              settings.FailOnWarning,
		IgnoreNetFrameworkProjects: settings.IgnoreNetFrameworkProjects,
		Directives:                 NewFieldDirectives(values, settings.InsertAttributes),
		Components:                 components,
		BuildNumber:                ExpandWildcards(TransformDates(settings.UpdateBuildNumber, now), components),
		BuildTag:                   ExpandWildcards(TransformDates(settings.AddBuildTag, now), components),
	}
}

// DirectivesFor returns the non-empty directives that exist in the given file family, in table order.
func (c *RunConfig) DirectivesFor(kind FileKind) []FieldDirective {
	var result []FieldDirective
	for _, directive := range c.Directives {
		if directive.AppliesTo(kind) {
			result = append(result, directive)
		}
	}
	return result
}

// Directive looks up the directive for key.
func (c *RunConfig) Directive(key FieldKey) (FieldDirective, bool) {
	for _, directive := range c.Directives {
		if directive.Key == key {
			return directive, true
		}
	}
	return FieldDirective{}, false
}

// AutoDetectEncoding reports whether the detected encoding of each file is authoritative.
func (c *RunConfig) AutoDetectEncoding() bool {
	return c.FileEncoding == EncodingAuto
}
