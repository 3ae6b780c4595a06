package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanz-dev/bilanz/internal/model"
)

func TestJournalRoundTrip(t *testing.T) {
	bookings := []model.Booking{
		{
			ID:            "jan-row-1",
			Date:          "15.01.2024",
			Year:          2024,
			Text:          "Miete Januar",
			Reference:     "R-100",
			Account:       "6310",
			ContraAccount: "1600",
			Debit:         dec("950.00"),
			Credit:        dec("0"),
		},
		{
			ID:            "jan-row-1-mirror",
			Date:          "15.01.2024",
			Year:          2024,
			Text:          "Miete Januar",
			Reference:     "R-100",
			Account:       "1600",
			ContraAccount: "6310",
			Debit:         dec("0"),
			Credit:        dec("950.00"),
		},
	}

	var buf bytes.Buffer
	err := WriteBookings(&buf, bookings)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "id,"))

	got, err := ReadBookings(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range bookings {
		assert.Equal(t, bookings[i].ID, got[i].ID)
		assert.Equal(t, bookings[i].Date, got[i].Date)
		assert.Equal(t, bookings[i].Year, got[i].Year)
		assert.Equal(t, bookings[i].Text, got[i].Text)
		assert.Equal(t, bookings[i].Reference, got[i].Reference)
		assert.Equal(t, bookings[i].Account, got[i].Account)
		assert.Equal(t, bookings[i].ContraAccount, got[i].ContraAccount)
		assert.True(t, bookings[i].Debit.Equal(got[i].Debit), "debit mismatch row %d", i)
		assert.True(t, bookings[i].Credit.Equal(got[i].Credit), "credit mismatch row %d", i)
	}
}

func TestReadBookingsEmpty(t *testing.T) {
	got, err := ReadBookings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
