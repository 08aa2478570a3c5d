package roster_test

import (
	"testing"
	"time"

	"github.com/mediai-platform/mediai/roster"
	"github.com/stretchr/testify/require"
)

// fixedNow pins "this month" to January 2024, the month the sample data
// clusters in.
func fixedNow() time.Time {
	return time.Date(2024, time.January, 28, 12, 0, 0, 0, time.UTC)
}

func TestSearch(t *testing.T) {
	s := roster.NewStore(roster.WithNowTime(fixedNow))

	t.Run("by name, case-insensitive", func(t *testing.T) {
		got := s.Search("john d", roster.FilterAll)
		require.Len(t, got, 1)
		require.Equal(t, "John Doe", got[0].Name)
	})

	t.Run("by condition", func(t *testing.T) {
		got := s.Search("diabetes", roster.FilterAll)
		require.Len(t, got, 1)
		require.Equal(t, "Sarah Miller", got[0].Name)
	})

	t.Run("by email", func(t *testing.T) {
		got := s.Search("robert.c@", roster.FilterAll)
		require.Len(t, got, 1)
		require.Equal(t, "Robert Chen", got[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		require.Empty(t, s.Search("zzzz", roster.FilterAll))
	})

	t.Run("search composes with filter", func(t *testing.T) {
		got := s.Search("", roster.FilterInactive)
		require.Len(t, got, 1)
		require.Equal(t, "Maria Garcia", got[0].Name)
	})
}

func TestFilters(t *testing.T) {
	s := roster.NewStore(roster.WithNowTime(fixedNow))

	require.Len(t, s.Search("", roster.FilterActive), 5)
	require.Len(t, s.Search("", roster.FilterInactive), 1)

	highPriority := s.Search("", roster.FilterHighPriority)
	require.Len(t, highPriority, 1)
	require.Equal(t, "David Wilson", highPriority[0].Name)

	// "New" means last visit within the current month.
	require.Len(t, s.Search("", roster.FilterNew), 5)
}

func TestStats(t *testing.T) {
	s := roster.NewStore(roster.WithNowTime(fixedNow))
	st := s.Stats()
	require.Equal(t, 6, st.Total)
	require.Equal(t, 5, st.Active)
	require.Equal(t, 5, st.NewThisMonth)
	require.Equal(t, 3, st.PendingReviews)
}

func TestGet(t *testing.T) {
	s := roster.NewStore()
	p, ok := s.Get(5)
	require.True(t, ok)
	require.Equal(t, "Coronary Artery Disease", p.Condition)

	_, ok = s.Get(99)
	require.False(t, ok)
}
