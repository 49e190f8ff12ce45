package entities

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	pinToken       = "#"
	doubleWildcard = ".*.*"
	singleWildcard = ".*"
	componentSplit = "."
)

// versionNumberPattern finds the first dotted version run inside free text,
// e.g. "Nightly_2018.11.*" yields "2018.11.*".
var versionNumberPattern = regexp.MustCompile(`(\d+|#)(\.(\d+|#|\*))+`)

// ExpandWildcards replaces the first ".*.*" with ".<build>.<release>" or, failing that,
// the first ".*" with ".<build>". At most one rewrite is applied.
func ExpandWildcards(value string, components VersionComponents) string {
	build := strconv.Itoa(components.BuildNumber)
	release := strconv.Itoa(components.ReleaseNumber)

	switch {
	case strings.Contains(value, doubleWildcard):
		return strings.Replace(value, doubleWildcard, "."+build+"."+release, 1)
	case strings.Contains(value, singleWildcard):
		return strings.Replace(value, singleWildcard, "."+build, 1)
	default:
		return value
	}
}

// MergeVersion reconciles a desired version with the value already present in a file.
//
// An empty desired value leaves the existing one untouched. Otherwise wildcards are
// expanded and, when the file already carries a value, every pinned component ("#" or
// anything starting with "#") keeps the existing component at the same position while
// the remaining components are overwritten. Without an existing value the expanded
// desired string is used as-is, pins included.
func MergeVersion(existing string, hasExisting bool, desired string, components VersionComponents) string {
	if desired == "" {
		return existing
	}

	expanded := ExpandWildcards(desired, components)
	if !hasExisting || !HasPinToken(expanded) {
		return expanded
	}

	current := strings.Split(existing, componentSplit)
	wanted := strings.Split(expanded, componentSplit)

	merged := make([]string, 0, max(len(current), len(wanted)))
	for i := range max(len(current), len(wanted)) {
		switch {
		case i >= len(wanted):
			merged = append(merged, current[i])
		case isPin(wanted[i]) && i < len(current):
			merged = append(merged, current[i])
		default:
			merged = append(merged, wanted[i])
		}
	}

	return strings.Join(merged, componentSplit)
}

// HasPinToken reports whether any dot-separated component of value is a pin.
func HasPinToken(value string) bool {
	for _, part := range strings.Split(value, componentSplit) {
		if isPin(part) {
			return true
		}
	}
	return false
}

// ExtractVersionNumber returns the first dotted version run found in value,
// or an empty string when there is none.
func ExtractVersionNumber(value string) string {
	return versionNumberPattern.FindString(value)
}

func isPin(component string) bool {
	return strings.HasPrefix(component, pinToken)
}
