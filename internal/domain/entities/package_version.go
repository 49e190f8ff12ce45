package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// PackageVersionClass tells how a resolved package version reads as SemVer.
type PackageVersionClass string

const (
	PackageRelease    PackageVersionClass = "release"
	PackagePrerelease PackageVersionClass = "prerelease"
	PackageNonSemVer  PackageVersionClass = "non-semver"
)

// ClassifyPackageVersion reports whether value is a SemVer release, a SemVer
// prerelease (e.g. "9.8.7-beta65") or something else such as a four-part
// assembly version.
func ClassifyPackageVersion(value string) PackageVersionClass {
	canonical := "v" + strings.TrimPrefix(strings.TrimSpace(value), "v")

	// semver accepts "v1" and "v1.2" as shorthands; a package version needs all three numbers
	core, _, _ := strings.Cut(canonical, "+")
	core, _, _ = strings.Cut(core, "-")

	switch {
	case strings.Count(core, ".") != 2 || !semver.IsValid(canonical): //nolint:mnd // MAJOR.MINOR.PATCH
		return PackageNonSemVer
	case semver.Prerelease(canonical) != "":
		return PackagePrerelease
	default:
		return PackageRelease
	}
}
