//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/assemblystamp/internal/domain/entities"
)

func TestTransformDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	t.Run("should render the year token", func(t *testing.T) {
		t.Parallel()

		// given
		value := "Copyright © $(date:YYYY) Example Ltd"

		// when
		result := entities.TransformDates(value, now)

		// then
		assert.Equal(t, "Copyright © 2024 Example Ltd", result)
	})

	t.Run("should render every token in the value", func(t *testing.T) {
		t.Parallel()

		// given
		value := "$(date:DD.MM.YYYY) $(date:HH:mm:ss)"

		// when
		result := entities.TransformDates(value, now)

		// then
		assert.Equal(t, "05.03.2024 14:07:09", result)
	})

	t.Run("should leave values without tokens unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		value := "Bleddyn Richards Inc"

		// when
		result := entities.TransformDates(value, now)

		// then
		assert.Equal(t, "Bleddyn Richards Inc", result)
	})
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	t.Run("should render month and weekday names", func(t *testing.T) {
		t.Parallel()

		// given
		format := "dddd, MMMM Do YY"

		// when
		result := entities.FormatDate(now, format)

		// then
		assert.Equal(t, "Tuesday, March 5th 24", result)
	})

	t.Run("should render twelve hour clock with meridiem", func(t *testing.T) {
		t.Parallel()

		// given
		format := "h:mm A"

		// when
		result := entities.FormatDate(now, format)

		// then
		assert.Equal(t, "2:07 PM", result)
	})

	t.Run("should copy bracketed text literally", func(t *testing.T) {
		t.Parallel()

		// given
		format := "[Build] YYYY"

		// when
		result := entities.FormatDate(now, format)

		// then
		assert.Equal(t, "Build 2024", result)
	})

	t.Run("should render unpadded tokens", func(t *testing.T) {
		t.Parallel()

		// given
		format := "D/M H"

		// when
		result := entities.FormatDate(now, format)

		// then
		assert.Equal(t, "5/3 14", result)
	})
}
