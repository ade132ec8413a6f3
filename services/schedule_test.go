package services

import (
	"testing"
	"time"

	"interview-reminder-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tashkent(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tashkent")
	require.NoError(t, err)
	return loc
}

func TestParseAppointmentTime(t *testing.T) {
	loc := tashkent(t)

	at, err := ParseAppointmentTime("2025-03-10", "14:00:00", loc)
	require.NoError(t, err)
	assert.True(t, at.Equal(time.Date(2025, 3, 10, 14, 0, 0, 0, loc)))

	// Without seconds
	at, err = ParseAppointmentTime("2025-03-10", "14:00", loc)
	require.NoError(t, err)
	assert.True(t, at.Equal(time.Date(2025, 3, 10, 14, 0, 0, 0, loc)))
}

func TestParseAppointmentTimeMalformed(t *testing.T) {
	loc := tashkent(t)

	for _, tc := range [][2]string{
		{"", ""},
		{"2025-03-10", ""},
		{"", "14:00"},
		{"10.03.2025", "14:00"},
		{"2025-03-10", "2pm"},
	} {
		_, err := ParseAppointmentTime(tc[0], tc[1], loc)
		assert.ErrorIsf(t, err, ErrMalformedAppointmentTime, "date=%q time=%q", tc[0], tc[1])
	}
}

func TestComputeReminderSchedule(t *testing.T) {
	loc := tashkent(t)
	at := time.Date(2025, 3, 10, 14, 0, 0, 0, loc)

	schedule := ComputeReminderSchedule(at)

	require.Len(t, schedule, 3)
	assert.True(t, schedule[models.KindDayBefore].Equal(at.Add(-24*time.Hour)))
	assert.True(t, schedule[models.KindHourBefore].Equal(at.Add(-time.Hour)))
	assert.True(t, schedule[models.KindAtTime].Equal(at))
}

func TestComputeReminderScheduleAllowsPastInstants(t *testing.T) {
	loc := tashkent(t)
	// Appointment in 5 seconds: day-before and hour-before are long gone.
	at := time.Now().In(loc).Add(5 * time.Second)

	schedule := ComputeReminderSchedule(at)

	assert.True(t, schedule[models.KindDayBefore].Before(time.Now()))
	assert.True(t, schedule[models.KindHourBefore].Before(time.Now()))
}
