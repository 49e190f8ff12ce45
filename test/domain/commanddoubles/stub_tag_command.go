//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/assemblystamp/internal/domain/commands"
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

// StubTagCommand is a stub implementation of commands.Tag.
type StubTagCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.RunReport
	LastSettings     *entities.Settings
}

var _ commands.Tag = (*StubTagCommand)(nil)

func (s *StubTagCommand) Execute(_ context.Context, settings *entities.Settings) (*entities.RunReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Report == nil {
		return entities.NewRunReport(settings.FailOnWarning), nil
	}
	return s.Report, nil
}
