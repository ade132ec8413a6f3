package services

import (
	"context"
	"errors"
	"time"

	"interview-reminder-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const storeTimeout = 10 * time.Second

// AppointmentStore is the record-store contract the reminder core runs
// against. Every mutation writes a single column so each update is atomic
// at cell granularity; the store never promises multi-cell atomicity.
type AppointmentStore interface {
	// ListBound returns appointments whose recipient channel is set.
	ListBound() ([]models.Appointment, error)
	FindByChatID(chatID string) (*models.Appointment, error)
	FindByPhone(normalizedPhone string) (*models.Appointment, error)
	BindChannel(id uuid.UUID, chatID string) error
	SaveSchedule(id uuid.UUID, schedule models.ReminderSchedule) error
	SetOutcome(id uuid.UUID, kind models.ReminderKind, outcome models.ReminderOutcome) error
	LogDispatch(entry *models.ReminderLog) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) AppointmentStore {
	return &gormStore{db: db}
}

func (s *gormStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}

func (s *gormStore) ListBound() ([]models.Appointment, error) {
	ctx, cancel := s.ctx()
	defer cancel()

	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Where("chat_id IS NOT NULL").
		Find(&appointments).Error
	return appointments, err
}

func (s *gormStore) FindByChatID(chatID string) (*models.Appointment, error) {
	ctx, cancel := s.ctx()
	defer cancel()

	var appointment models.Appointment
	err := s.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownRecipient
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *gormStore) FindByPhone(normalizedPhone string) (*models.Appointment, error) {
	ctx, cancel := s.ctx()
	defer cancel()

	var appointment models.Appointment
	err := s.db.WithContext(ctx).
		Where("phone = ?", normalizedPhone).
		First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownRecipient
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *gormStore) BindChannel(id uuid.UUID, chatID string) error {
	ctx, cancel := s.ctx()
	defer cancel()

	return s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("chat_id", chatID).Error
}

func (s *gormStore) SaveSchedule(id uuid.UUID, schedule models.ReminderSchedule) error {
	ctx, cancel := s.ctx()
	defer cancel()

	return s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("reminder_schedule", schedule).Error
}

func (s *gormStore) SetOutcome(id uuid.UUID, kind models.ReminderKind, outcome models.ReminderOutcome) error {
	column := models.OutcomeColumn(kind)
	if column == "" {
		return errors.New("invalid reminder kind")
	}

	ctx, cancel := s.ctx()
	defer cancel()

	return s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update(column, outcome).Error
}

func (s *gormStore) LogDispatch(entry *models.ReminderLog) error {
	ctx, cancel := s.ctx()
	defer cancel()

	return s.db.WithContext(ctx).Create(entry).Error
}
