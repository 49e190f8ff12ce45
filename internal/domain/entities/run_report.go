package entities

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// FileStatus is the terminal state of a single file within a run.
type FileStatus string

const (
	FileUpdated   FileStatus = "updated"
	FileUnchanged FileStatus = "unchanged"
	FileSkipped   FileStatus = "skipped"
	FileFailed    FileStatus = "failed"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	Path   string
	Status FileStatus
	Err    error
}

// RunReport aggregates per-file outcomes, warnings, errors and the resolved
// version values of a run.
type RunReport struct {
	FailOnWarning bool
	Files         []FileOutcome
	Warnings      []string
	Errors        []string
	resolved      map[FieldKey]string
}

// NewRunReport creates an empty report.
func NewRunReport(failOnWarning bool) *RunReport {
	return &RunReport{
		FailOnWarning: failOnWarning,
		resolved:      make(map[FieldKey]string),
	}
}

// AddWarning logs and records a non-blocking problem.
func (r *RunReport) AddWarning(message string) {
	logger.Warn(message)
	r.Warnings = append(r.Warnings, message)
}

// AddError logs and records a file-local failure.
func (r *RunReport) AddError(message string) {
	logger.Error(message)
	r.Errors = append(r.Errors, message)
}

// RecordFile stores the outcome of one file.
func (r *RunReport) RecordFile(path string, status FileStatus, err error) {
	r.Files = append(r.Files, FileOutcome{Path: path, Status: status, Err: err})
}

// SetResolved stores the final value of a version field.
func (r *RunReport) SetResolved(key FieldKey, value string) {
	r.resolved[key] = value
}

// Resolved returns the final value recorded for key.
func (r *RunReport) Resolved(key FieldKey) (string, bool) {
	value, ok := r.resolved[key]
	return value, ok
}

// Count returns how many files ended in the given status.
func (r *RunReport) Count(status FileStatus) int {
	total := 0
	for _, file := range r.Files {
		if file.Status == status {
			total++
		}
	}
	return total
}

// Succeeded is false when any error occurred, or when warnings occurred and
// the run was configured to fail on warnings.
func (r *RunReport) Succeeded() bool {
	if len(r.Errors) > 0 {
		return false
	}
	return !r.FailOnWarning || len(r.Warnings) == 0
}

// Summary renders a one-line description of the run.
func (r *RunReport) Summary() string {
	parts := []string{
		fmt.Sprintf("%d updated", r.Count(FileUpdated)),
		fmt.Sprintf("%d unchanged", r.Count(FileUnchanged)),
		fmt.Sprintf("%d skipped", r.Count(FileSkipped)),
		fmt.Sprintf("%d failed", r.Count(FileFailed)),
		fmt.Sprintf("%d warnings", len(r.Warnings)),
		fmt.Sprintf("%d errors", len(r.Errors)),
	}
	if version, ok := r.resolved[FieldPackageVersion]; ok {
		parts = append(parts, fmt.Sprintf("package %s (%s)", version, ClassifyPackageVersion(version)))
	}
	return strings.Join(parts, ", ")
}
