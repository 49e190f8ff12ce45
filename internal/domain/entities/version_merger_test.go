//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

func TestExpandWildcards(t *testing.T) {
	t.Parallel()

	components := entities.VersionComponents{BuildNumber: 11, ReleaseNumber: 2018}

	t.Run("should replace double wildcard with build and release numbers", func(t *testing.T) {
		t.Parallel()

		// given
		value := "2.*.*-beta5"

		// when
		result := entities.ExpandWildcards(value, components)

		// then
		assert.Equal(t, "2.11.2018-beta5", result)
	})

	t.Run("should replace single wildcard with build number", func(t *testing.T) {
		t.Parallel()

		// given
		value := "1.2.*"

		// when
		result := entities.ExpandWildcards(value, components)

		// then
		assert.Equal(t, "1.2.11", result)
	})

	t.Run("should rewrite only the first occurrence", func(t *testing.T) {
		t.Parallel()

		// given
		value := "1.*.*.*.*"

		// when
		result := entities.ExpandWildcards(value, components)

		// then
		assert.Equal(t, "1.11.2018.*.*", result)
	})

	t.Run("should leave values without wildcards unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		value := "1.2.3.4"

		// when
		result := entities.ExpandWildcards(value, components)

		// then
		assert.Equal(t, "1.2.3.4", result)
	})
}

func TestMergeVersion(t *testing.T) {
	t.Parallel()

	components := entities.VersionComponents{BuildNumber: 7000, ReleaseNumber: 120}

	t.Run("should return existing value when desired is empty", func(t *testing.T) {
		t.Parallel()

		// given
		existing := "1.2.3.4"

		// when
		result := entities.MergeVersion(existing, true, "", components)

		// then
		assert.Equal(t, "1.2.3.4", result)
	})

	t.Run("should keep pinned components of the existing value", func(t *testing.T) {
		t.Parallel()

		// given
		existing := "1.2.3.4"

		// when
		result := entities.MergeVersion(existing, true, "#.15.#.98", components)

		// then
		assert.Equal(t, "1.15.3.98", result)
	})

	t.Run("should keep the whole existing component when the pin carries a suffix", func(t *testing.T) {
		t.Parallel()

		// given
		existing := "1.3.4-prerelease"

		// when
		result := entities.MergeVersion(existing, true, "2.#.#-fail", components)

		// then
		assert.Equal(t, "2.3.4-prerelease", result)
	})

	t.Run("should keep trailing existing components beyond the desired length", func(t *testing.T) {
		t.Parallel()

		// given
		existing := "1.2.3.4"

		// when
		result := entities.MergeVersion(existing, true, "#.9", components)

		// then
		assert.Equal(t, "1.9.3.4", result)
	})

	t.Run("should append desired components beyond the existing length", func(t *testing.T) {
		t.Parallel()

		// given
		existing := "1.2"

		// when
		result := entities.MergeVersion(existing, true, "#.#.5.#", components)

		// then
		assert.Equal(t, "1.2.5.#", result)
	})

	t.Run("should use desired value literally when nothing exists", func(t *testing.T) {
		t.Parallel()

		// given
		desired := "#.15.#.98"

		// when
		result := entities.MergeVersion("", false, desired, components)

		// then
		assert.Equal(t, "#.15.#.98", result)
	})

	t.Run("should expand wildcards before merging pins", func(t *testing.T) {
		t.Parallel()

		// given
		existing := "3.1.0.0"

		// when
		result := entities.MergeVersion(existing, true, "#.#.*.*", components)

		// then
		assert.Equal(t, "3.1.7000.120", result)
	})

	t.Run("should replace the existing value when no pin is present", func(t *testing.T) {
		t.Parallel()

		// given
		existing := "1.0.0.0"

		// when
		result := entities.MergeVersion(existing, true, "2.0.*", components)

		// then
		assert.Equal(t, "2.0.7000", result)
	})

	t.Run("should be idempotent for a fixed desired value", func(t *testing.T) {
		t.Parallel()

		// given
		first := entities.MergeVersion("1.0.0.0", true, "#.15.#.98", components)

		// when
		second := entities.MergeVersion(first, true, "#.15.#.98", components)

		// then
		assert.Equal(t, first, second)
	})
}

func TestExtractVersionNumber(t *testing.T) {
	t.Parallel()

	t.Run("should extract the dotted run from free text", func(t *testing.T) {
		t.Parallel()

		// given
		value := "TS Extension Test Build_2018.11.*"

		// when
		result := entities.ExtractVersionNumber(value)

		// then
		assert.Equal(t, "2018.11.*", result)
	})

	t.Run("should keep pin tokens", func(t *testing.T) {
		t.Parallel()

		// given
		value := "TS Extension Test Build_#.15.#.98"

		// when
		result := entities.ExtractVersionNumber(value)

		// then
		assert.Equal(t, "#.15.#.98", result)
	})

	t.Run("should return empty when no version is present", func(t *testing.T) {
		t.Parallel()

		// given
		value := "no version here"

		// when
		result := entities.ExtractVersionNumber(value)

		// then
		assert.Empty(t, result)
	})
}

func TestHasPinToken(t *testing.T) {
	t.Parallel()

	t.Run("should detect pinned components", func(t *testing.T) {
		t.Parallel()

		// given
		value := "1.#.3"

		// when
		result := entities.HasPinToken(value)

		// then
		assert.True(t, result)
	})

	t.Run("should ignore hashes that do not start a component", func(t *testing.T) {
		t.Parallel()

		// given
		value := "1.2.3-build#4"

		// when
		result := entities.HasPinToken(value)

		// then
		assert.False(t, result)
	})
}
