package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index"`

	CandidateName string `gorm:"not null"`
	Phone         string `gorm:"not null;uniqueIndex"` // normalized, digits only
	InterviewDate string `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	InterviewTime string `gorm:"type:varchar(8);not null"`  // HH:MM or HH:MM:SS
	Location      string `gorm:"type:text"`                 // meeting link or street address
	HRContact     string

	// ChatID is the recipient's messaging channel, bound when the candidate
	// completes intake. Reminders are only scheduled for bound appointments.
	ChatID *string `gorm:"index"`

	ReminderSchedule ReminderSchedule `gorm:"type:jsonb"`

	// One column per reminder kind so each outcome is written as a single
	// cell, never as part of a multi-column update.
	DayBeforeStatus  ReminderOutcome `gorm:"type:varchar(20);default:''"`
	HourBeforeStatus ReminderOutcome `gorm:"type:varchar(20);default:''"`
	AtTimeStatus     ReminderOutcome `gorm:"type:varchar(20);default:''"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Outcome returns the persisted outcome for the given reminder kind.
func (a *Appointment) Outcome(kind ReminderKind) ReminderOutcome {
	switch kind {
	case KindDayBefore:
		return a.DayBeforeStatus
	case KindHourBefore:
		return a.HourBeforeStatus
	case KindAtTime:
		return a.AtTimeStatus
	}
	return OutcomeUnset
}

// OutcomeColumn maps a reminder kind to its database column name.
func OutcomeColumn(kind ReminderKind) string {
	switch kind {
	case KindDayBefore:
		return "day_before_status"
	case KindHourBefore:
		return "hour_before_status"
	case KindAtTime:
		return "at_time_status"
	}
	return ""
}
