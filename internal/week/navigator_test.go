package week

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/hebdo/internal/timeutil"
)

// Wednesday, June 12 2024; its week runs Sunday June 9 through Saturday 15.
func fixedNow() time.Time {
	return time.Date(2024, time.June, 12, 14, 30, 0, 0, time.Local)
}

func TestNewAnchorsToSunday(t *testing.T) {
	n := New(fixedNow)
	require.Equal(t, time.Sunday, n.Anchor().Weekday())
	require.Equal(t, "2024-06-09", timeutil.KeyOf(n.Anchor()))
}

func TestDaysAreSevenContiguousDates(t *testing.T) {
	n := New(fixedNow)
	days := n.Days()
	for i, d := range days {
		require.Equal(t, fmt.Sprintf("2024-06-%02d", 9+i), timeutil.KeyOf(d))
	}
}

func TestPrevNextReset(t *testing.T) {
	n := New(fixedNow)

	require.Equal(t, "2024-06-16", timeutil.KeyOf(n.Next()))
	require.Equal(t, "2024-06-23", timeutil.KeyOf(n.Next()))
	require.Equal(t, "2024-06-16", timeutil.KeyOf(n.Prev()))
	require.Equal(t, "2024-06-09", timeutil.KeyOf(n.Reset()))
	require.Equal(t, time.Sunday, n.Anchor().Weekday())
}

func TestRangeCollapsesSharedMonth(t *testing.T) {
	n := New(fixedNow)
	require.Equal(t, "Jun 9 - 15, 2024", n.Range())

	// Week of June 30 spills into July.
	n.Next()
	n.Next()
	n.Next()
	require.Equal(t, "2024-06-30", timeutil.KeyOf(n.Anchor()))
	require.Equal(t, "Jun 30 - Jul 6, 2024", n.Range())
}

func TestLabelsMarkToday(t *testing.T) {
	n := New(fixedNow)
	labels := n.Labels()

	require.Equal(t, "Sun", labels[0].Short)
	require.Equal(t, "Sunday", labels[0].Full)
	require.Equal(t, "2024-06-09", labels[0].Key)

	for i, l := range labels {
		require.Equal(t, l.Key == "2024-06-12", l.Today, i)
	}

	// Paging away clears the today flag everywhere.
	n.Next()
	for _, l := range n.Labels() {
		require.False(t, l.Today)
	}
}
