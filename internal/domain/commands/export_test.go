package commands

// ApplyBuildEffects exports applyBuildEffects for testing.
var ApplyBuildEffects = applyBuildEffects //nolint:gochecknoglobals // test export

// ResolveVersions exports resolveVersions for testing.
var ResolveVersions = resolveVersions //nolint:gochecknoglobals // test export
