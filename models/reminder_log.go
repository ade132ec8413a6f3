// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderLog struct {
	ID            uuid.UUID    `gorm:"type:uuid;primary_key"`
	AppointmentID uuid.UUID    `gorm:"type:uuid;index;not null"`
	Kind          ReminderKind `gorm:"type:varchar(20)"` // day_before, hour_before, at_time
	ChatID        string       `gorm:"type:varchar(64)"`
	Message       string       `gorm:"type:text"`
	Status        string       `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage  string       `gorm:"type:text"`
	SentAt        time.Time
	gorm.Model
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
