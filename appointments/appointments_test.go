package appointments_test

import (
	"testing"
	"time"

	"github.com/mediai-platform/mediai/appointments"
	"github.com/stretchr/testify/require"
)

func TestBook_AllSorted(t *testing.T) {
	b := appointments.NewBook()
	all := b.All()
	require.Len(t, all, 7)
	for i := 1; i < len(all); i++ {
		require.False(t, all[i].Date.Before(all[i-1].Date))
	}
}

func TestBook_ByStatusAndToday(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.February, 20, 8, 0, 0, 0, time.UTC) }
	b := appointments.NewBook(appointments.WithNowTime(now))

	require.Len(t, b.ByStatus(appointments.StatusConfirmed), 4)
	require.Len(t, b.ByStatus(appointments.StatusPending), 2)

	today := b.Today()
	require.Len(t, today, 2)
	for _, a := range today {
		require.Equal(t, time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC), a.Date)
	}
}

func TestBook_Search(t *testing.T) {
	b := appointments.NewBook()
	require.Len(t, b.Search("john doe"), 2)
	require.Len(t, b.Search("medication"), 1)
	require.Empty(t, b.Search("nobody"))
}

func TestBook_Schedule(t *testing.T) {
	b := appointments.NewBook()

	t.Run("valid draft is appended as pending", func(t *testing.T) {
		appt, err := b.Schedule(appointments.Draft{
			PatientName: "Robert Chen",
			Type:        "Inhaler technique review",
			Date:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			TimeOfDay:   "9:30 AM",
		})
		require.NoError(t, err)
		require.NotEmpty(t, appt.ID)
		require.Equal(t, appointments.StatusPending, appt.Status)
		require.Len(t, b.All(), 8)
	})

	t.Run("invalid draft is discarded", func(t *testing.T) {
		before := len(b.All())
		_, err := b.Schedule(appointments.Draft{Type: "Follow-up"})
		require.Error(t, err)
		require.Len(t, b.All(), before)
	})
}

func TestBook_Cancel(t *testing.T) {
	b := appointments.NewBook()
	require.NoError(t, b.Cancel("apt-2"))
	require.Len(t, b.ByStatus(appointments.StatusCancelled), 1)

	err := b.Cancel("missing")
	require.ErrorIs(t, err, appointments.ErrNotFound)
}
