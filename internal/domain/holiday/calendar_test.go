package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar(t *testing.T) {
	t.Run("2026 list is sorted and complete", func(t *testing.T) {
		holidays := Calendar(2026)
		require.Len(t, holidays, 13)

		for i := 1; i < len(holidays); i++ {
			assert.True(t, holidays[i-1].Date.Before(holidays[i].Date),
				"%s should come before %s", holidays[i-1].Name, holidays[i].Name)
		}

		assert.Equal(t, "New Year's Day", holidays[0].Name)
		assert.Equal(t, TypeOptional, holidays[0].Type)
		assert.Equal(t, "Christmas", holidays[len(holidays)-1].Name)

		for _, h := range holidays {
			assert.NotEmpty(t, h.Description, "%s should carry a description", h.Name)
		}
	})

	t.Run("unmaintained year is empty", func(t *testing.T) {
		assert.Empty(t, Calendar(2025))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := Calendar(2026)
		first[0].Name = "overwritten"
		assert.Equal(t, "New Year's Day", Calendar(2026)[0].Name)
	})
}

func TestIsHoliday(t *testing.T) {
	h, ok := IsHoliday(time.Date(2026, time.August, 15, 13, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "Independence Day", h.Name)
	assert.Equal(t, TypePublic, h.Type)

	_, ok = IsHoliday(time.Date(2026, time.August, 16, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestUpcoming(t *testing.T) {
	t.Run("includes same-day holiday", func(t *testing.T) {
		upcoming := Upcoming(time.Date(2026, time.October, 2, 23, 0, 0, 0, time.UTC), 0)
		require.NotEmpty(t, upcoming)
		assert.Equal(t, "Gandhi Jayanti", upcoming[0].Name)
	})

	t.Run("respects limit", func(t *testing.T) {
		upcoming := Upcoming(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 3)
		require.Len(t, upcoming, 3)
		assert.Equal(t, "Republic Day", upcoming[2].Name)
	})

	t.Run("empty after last holiday", func(t *testing.T) {
		assert.Empty(t, Upcoming(time.Date(2026, time.December, 26, 0, 0, 0, 0, time.UTC), 0))
	})
}

func TestToResponse(t *testing.T) {
	resp := ToResponse(Holiday{
		Name:        "Republic Day",
		Description: "National holiday",
		Date:        date(2026, time.January, 26),
		Type:        TypePublic,
	})
	assert.Equal(t, "2026-01-26", resp.Date)
	assert.Equal(t, "Monday", resp.Day)
	assert.Equal(t, "National holiday", resp.Description)
}
