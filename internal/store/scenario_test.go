package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/hebdo/internal/model"
	"github.com/Makepad-fr/hebdo/internal/store"
	"github.com/Makepad-fr/hebdo/internal/week"
)

// Creating an activity, paging the week away and back must leave both the
// collection and the week anchor exactly where they started.
func TestCreateThenNavigateRoundTrip(t *testing.T) {
	s := store.New(nil)
	now := func() time.Time {
		return time.Date(2024, time.June, 12, 10, 0, 0, 0, time.Local)
	}
	nav := week.New(now)
	origin := nav.Anchor()

	a, err := s.Create(model.Draft{
		Title:      "Design review",
		Date:       "2024-06-10",
		StartTime:  "09:00",
		EndTime:    "10:00",
		Color:      model.Colors[0],
		Importance: 2,
	})
	require.NoError(t, err)

	nav.Next()
	nav.Prev()

	require.True(t, nav.Anchor().Equal(origin))
	require.Equal(t, []model.Activity{a}, s.ByDate("2024-06-10"))
}
