package entities

import (
	"fmt"
	"time"
)

const releaseTick = 500 * time.Millisecond

// VersionComponents holds the two run-scoped numbers used to expand version wildcards.
// They are computed once per run and shared read-only by every file.
type VersionComponents struct {
	BuildNumber   int
	ReleaseNumber int
}

// NewVersionComponents derives the components from the given instant:
// BuildNumber is the count of whole days since 2000-01-01 and ReleaseNumber
// is the count of whole half-seconds since local midnight.
func NewVersionComponents(now time.Time) VersionComponents {
	// calendar days are counted on UTC dates so DST shifts never lose or add a day
	reference := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return VersionComponents{
		BuildNumber:   int(today.Sub(reference).Hours() / 24), //nolint:mnd // hours per day
		ReleaseNumber: int(now.Sub(midnight) / releaseTick),
	}
}

func (c VersionComponents) String() string {
	return fmt.Sprintf("build=%d release=%d", c.BuildNumber, c.ReleaseNumber)
}
