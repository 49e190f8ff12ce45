//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

func TestRunReportSucceeded(t *testing.T) {
	t.Parallel()

	t.Run("should succeed with warnings when fail on warning is disabled", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewRunReport(false)
		report.AddWarning("no files matched")

		// when
		succeeded := report.Succeeded()

		// then
		assert.True(t, succeeded)
	})

	t.Run("should fail with warnings when fail on warning is enabled", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewRunReport(true)
		report.AddWarning("encoding mismatch")

		// when
		succeeded := report.Succeeded()

		// then
		assert.False(t, succeeded)
	})

	t.Run("should fail when any file error occurred", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewRunReport(false)
		report.RecordFile("a.csproj", entities.FileFailed, errors.New("boom"))
		report.AddError("a.csproj: boom")

		// when
		succeeded := report.Succeeded()

		// then
		assert.False(t, succeeded)
		assert.Equal(t, 1, report.Count(entities.FileFailed))
	})

	t.Run("should summarize outcomes", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewRunReport(false)
		report.RecordFile("a.csproj", entities.FileUpdated, nil)
		report.RecordFile("b.cs", entities.FileUnchanged, nil)

		// when
		summary := report.Summary()

		// then
		assert.Equal(t, "1 updated, 1 unchanged, 0 skipped, 0 failed, 0 warnings, 0 errors", summary)
	})

	t.Run("should classify the resolved package version in the summary", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewRunReport(false)
		report.RecordFile("a.csproj", entities.FileUpdated, nil)
		report.SetResolved(entities.FieldPackageVersion, "9.8.7-beta65")

		// when
		summary := report.Summary()

		// then
		assert.Equal(t,
			"1 updated, 0 unchanged, 0 skipped, 0 failed, 0 warnings, 0 errors, package 9.8.7-beta65 (prerelease)",
			summary,
		)
	})
}
