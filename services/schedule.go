// services/schedule.go
package services

import (
	"fmt"
	"time"

	"interview-reminder-backend/models"
)

const (
	layoutWithSeconds = "2006-01-02 15:04:05"
	layoutNoSeconds   = "2006-01-02 15:04"
)

// ParseAppointmentTime combines the record's date and time cells into one
// instant in the configured zone. Both "HH:MM:SS" and "HH:MM" are accepted.
func ParseAppointmentTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	combined := dateStr + " " + timeStr

	at, err := time.ParseInLocation(layoutWithSeconds, combined, loc)
	if err == nil {
		return at, nil
	}
	at, err = time.ParseInLocation(layoutNoSeconds, combined, loc)
	if err == nil {
		return at, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedAppointmentTime, combined)
}

// ComputeReminderSchedule derives the three reminder instants from the
// appointment time. Entries may lie in the past (intake can happen after
// the day-before mark); the poller's due window decides whether a past
// entry still fires.
func ComputeReminderSchedule(appointmentAt time.Time) models.ReminderSchedule {
	dayBefore := appointmentAt.Add(-24 * time.Hour)
	hourBefore := appointmentAt.Add(-time.Hour)
	atTime := appointmentAt

	return models.ReminderSchedule{
		models.KindDayBefore:  &dayBefore,
		models.KindHourBefore: &hourBefore,
		models.KindAtTime:     &atTime,
	}
}
