//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/assemblystamp/internal/domain/commands"
	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

// StubStampCommand is a stub implementation of commands.Stamp.
type StubStampCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.RunReport
	LastSettings     *entities.Settings
	LastOpts         commands.StampOptions
}

var _ commands.Stamp = (*StubStampCommand)(nil)

func (s *StubStampCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.StampOptions,
) (*entities.RunReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Report == nil {
		return entities.NewRunReport(settings.FailOnWarning), nil
	}
	return s.Report, nil
}
