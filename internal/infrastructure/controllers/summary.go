package controllers

import (
	"github.com/fatih/color"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

// printSummary writes the coloured end-of-run line and returns errRunFailed
// when the run did not succeed.
func printSummary(report *entities.RunReport) error {
	if report.Succeeded() {
		color.Green("Complete. %s", report.Summary())
		return nil
	}

	color.Red("Failed: %s", report.Summary())
	return errRunFailed
}
