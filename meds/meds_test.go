package meds_test

import (
	"testing"

	"github.com/mediai-platform/mediai/meds"
	"github.com/stretchr/testify/require"
)

func TestSupplyBands(t *testing.T) {
	cases := []struct {
		name      string
		remaining int
		total     int
		want      meds.SupplyLevel
	}{
		{"above half", 60, 90, meds.SupplyOK},
		{"half exactly is low", 15, 30, meds.SupplyLow},
		{"below quarter", 8, 40, meds.SupplyCritical},
		{"empty bottle", 0, 20, meds.SupplyCritical},
		{"zero total", 0, 0, meds.SupplyCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := meds.Medication{Remaining: tc.remaining, Total: tc.total}
			require.Equal(t, tc.want, m.Supply())
		})
	}
}

func TestCabinet_ToggleAndActive(t *testing.T) {
	c := meds.NewCabinet()
	require.Len(t, c.Active(), 4)

	require.NoError(t, c.Toggle("med-2"))
	require.Len(t, c.Active(), 3)

	require.NoError(t, c.Toggle("med-2"))
	require.Len(t, c.Active(), 4)

	require.ErrorIs(t, c.Toggle("med-99"), meds.ErrMedicationNotFound)
}

func TestCabinet_MarkTaken(t *testing.T) {
	c := meds.NewCabinet()

	m, err := c.MarkTaken("med-4")
	require.NoError(t, err)
	require.Equal(t, 7, m.Remaining)

	// Never goes negative.
	for i := 0; i < 10; i++ {
		m, err = c.MarkTaken("med-4")
		require.NoError(t, err)
	}
	require.Equal(t, 0, m.Remaining)

	_, err = c.MarkTaken("med-99")
	require.ErrorIs(t, err, meds.ErrMedicationNotFound)
}

func TestCabinet_RequestRefill(t *testing.T) {
	c := meds.NewCabinet()

	m, err := c.RequestRefill("med-1")
	require.NoError(t, err)
	require.Equal(t, m.Total, m.Remaining)
	require.Equal(t, meds.SupplyOK, m.Supply())
}

func TestCabinet_Summarize(t *testing.T) {
	c := meds.NewCabinet()
	require.NoError(t, c.Toggle("med-3"))

	s := c.Summarize()
	require.Equal(t, 3, s.Active)
	require.Equal(t, 1, s.Paused)
	// med-1 and med-3 sit at exactly 50%, med-4 at 40%; all below the ok band.
	require.Equal(t, 3, s.NeedsRefill)
}
