// models/reminder.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type ReminderKind string

const (
	KindDayBefore  ReminderKind = "day_before"
	KindHourBefore ReminderKind = "hour_before"
	KindAtTime     ReminderKind = "at_time"
)

// ReminderKinds lists the kinds in dispatch priority order. The poller
// evaluates them in this order and stops at the first due kind.
var ReminderKinds = []ReminderKind{KindDayBefore, KindHourBefore, KindAtTime}

func (k ReminderKind) Valid() bool {
	switch k {
	case KindDayBefore, KindHourBefore, KindAtTime:
		return true
	}
	return false
}

type ReminderOutcome string

const (
	OutcomeUnset     ReminderOutcome = ""
	OutcomeSent      ReminderOutcome = "sent"
	OutcomeConfirmed ReminderOutcome = "confirmed"
	OutcomeDeclined  ReminderOutcome = "declined"
)

// CanTransition reports whether moving from one outcome to another follows
// the forward-only lifecycle: unset -> sent -> confirmed|declined.
func CanTransition(from, to ReminderOutcome) bool {
	switch to {
	case OutcomeSent:
		return from == OutcomeUnset
	case OutcomeConfirmed, OutcomeDeclined:
		return from == OutcomeSent
	}
	return false
}

// ReminderSchedule maps each reminder kind to its scheduled send time.
// A nil entry means the kind has been dispatched (or never computed);
// a non-nil entry means it is still waiting to be sent.
type ReminderSchedule map[ReminderKind]*time.Time

func (s ReminderSchedule) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *ReminderSchedule) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, s)
}

// Pending reports whether any reminder kind is still waiting to be sent.
func (s ReminderSchedule) Pending() bool {
	for _, t := range s {
		if t != nil {
			return true
		}
	}
	return false
}
