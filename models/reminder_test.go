package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderScheduleRoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tashkent")
	require.NoError(t, err)

	dayBefore := time.Date(2025, 3, 9, 14, 0, 0, 0, loc)
	atTime := time.Date(2025, 3, 10, 14, 0, 0, 0, loc)

	schedule := ReminderSchedule{
		KindDayBefore:  &dayBefore,
		KindHourBefore: nil, // already dispatched
		KindAtTime:     &atTime,
	}

	value, err := schedule.Value()
	require.NoError(t, err)

	var restored ReminderSchedule
	require.NoError(t, restored.Scan(value))

	require.Len(t, restored, 3)
	require.NotNil(t, restored[KindDayBefore])
	assert.True(t, restored[KindDayBefore].Equal(dayBefore))
	assert.Nil(t, restored[KindHourBefore])
	require.NotNil(t, restored[KindAtTime])
	assert.True(t, restored[KindAtTime].Equal(atTime))
}

func TestReminderScheduleScanNil(t *testing.T) {
	schedule := ReminderSchedule{KindAtTime: nil}
	require.NoError(t, schedule.Scan(nil))
	assert.Nil(t, map[ReminderKind]*time.Time(schedule))
}

func TestReminderSchedulePending(t *testing.T) {
	now := time.Now()

	assert.False(t, ReminderSchedule(nil).Pending())
	assert.False(t, ReminderSchedule{KindDayBefore: nil}.Pending())
	assert.True(t, ReminderSchedule{KindDayBefore: nil, KindAtTime: &now}.Pending())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ReminderOutcome
		ok       bool
	}{
		{OutcomeUnset, OutcomeSent, true},
		{OutcomeSent, OutcomeConfirmed, true},
		{OutcomeSent, OutcomeDeclined, true},
		{OutcomeUnset, OutcomeConfirmed, false},
		{OutcomeConfirmed, OutcomeDeclined, false},
		{OutcomeDeclined, OutcomeSent, false},
		{OutcomeSent, OutcomeSent, false},
		{OutcomeConfirmed, OutcomeUnset, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.ok, CanTransition(tc.from, tc.to), "%q -> %q", tc.from, tc.to)
	}
}

func TestOutcomeAccessors(t *testing.T) {
	a := Appointment{
		DayBeforeStatus:  OutcomeSent,
		HourBeforeStatus: OutcomeConfirmed,
	}
	assert.Equal(t, OutcomeSent, a.Outcome(KindDayBefore))
	assert.Equal(t, OutcomeConfirmed, a.Outcome(KindHourBefore))
	assert.Equal(t, OutcomeUnset, a.Outcome(KindAtTime))

	assert.Equal(t, "day_before_status", OutcomeColumn(KindDayBefore))
	assert.Equal(t, "hour_before_status", OutcomeColumn(KindHourBefore))
	assert.Equal(t, "at_time_status", OutcomeColumn(KindAtTime))
	assert.Equal(t, "", OutcomeColumn(ReminderKind("bogus")))
}
