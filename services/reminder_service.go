// services/reminder_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"interview-reminder-backend/models"

	"github.com/robfig/cron/v3"
)

const (
	msgAckConfirmed = "Thank you for your reply! We look forward to seeing you at the interview."
	msgAckDeclined  = "Thank you for your reply. Please contact HR to reschedule the interview."
	msgAckFailed    = "Something went wrong while recording your reply. Please contact support."
)

type ReminderService struct {
	store     AppointmentStore
	messenger Messenger

	tolerance time.Duration
	interval  time.Duration
	loc       *time.Location

	cron *cron.Cron
	now  func() time.Time
}

func NewReminderService(store AppointmentStore, messenger Messenger, interval, tolerance time.Duration, loc *time.Location) *ReminderService {
	s := &ReminderService{
		store:     store,
		messenger: messenger,
		tolerance: tolerance,
		interval:  interval,
		loc:       loc,
	}
	s.now = func() time.Time { return time.Now().In(loc) }
	return s
}

// StartScheduler begins the poll loop. Ticks are serialized: if a scan is
// still running when the next tick fires, that tick is skipped so two scans
// never race on the same record's sent/clear transition.
func (s *ReminderService) StartScheduler() {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := c.AddFunc(spec, func() {
		s.CheckReminders(s.now())
	}); err != nil {
		log.Printf("Failed to schedule reminder checks: %v", err)
		return
	}

	c.Start()
	s.cron = c
	log.Printf("Reminder scheduler started (every %s, window +/-%s)", s.interval, s.tolerance)
}

func (s *ReminderService) StopScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// CheckReminders scans all bound appointments and dispatches whichever
// reminder is due for each. A failure on one record never aborts the scan.
func (s *ReminderService) CheckReminders(now time.Time) {
	appointments, err := s.store.ListBound()
	if err != nil {
		log.Printf("Failed to list appointments: %v", err)
		return
	}

	for i := range appointments {
		if err := s.processAppointment(now, &appointments[i]); err != nil {
			log.Printf("Appointment %s: %v", appointments[i].ID, err)
		}
	}
}

// processAppointment dispatches at most one reminder kind per tick, in
// fixed priority order. If two kinds are somehow due at once the second
// waits for the next tick; the window is wide enough that it stays due.
func (s *ReminderService) processAppointment(now time.Time, appointment *models.Appointment) error {
	if appointment.ChatID == nil || !appointment.ReminderSchedule.Pending() {
		return nil
	}

	for _, kind := range models.ReminderKinds {
		scheduledAt := appointment.ReminderSchedule[kind]
		if scheduledAt == nil {
			continue
		}

		diff := now.Sub(*scheduledAt)
		if diff < 0 {
			diff = -diff
		}
		if diff > s.tolerance {
			continue
		}

		return s.dispatch(appointment, kind)
	}
	return nil
}

// dispatch sends the reminder, then marks the outcome sent, then clears the
// schedule entry. The two store writes are separate single-cell updates; a
// crash between them leaves the entry in place and the reminder is sent
// again on a later tick.
func (s *ReminderService) dispatch(appointment *models.Appointment, kind models.ReminderKind) error {
	chatID := *appointment.ChatID
	text := reminderText(appointment)
	affordances := []ResponseToken{
		{Answer: AnswerYes, Kind: kind},
		{Answer: AnswerNo, Kind: kind},
	}

	sendErr := s.messenger.SendReminder(chatID, text, affordances)

	entry := &models.ReminderLog{
		AppointmentID: appointment.ID,
		Kind:          kind,
		ChatID:        chatID,
		Message:       text,
		Status:        "sent",
		SentAt:        s.now(),
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.ErrorMessage = sendErr.Error()
	}
	if err := s.store.LogDispatch(entry); err != nil {
		log.Printf("Failed to log %s reminder for appointment %s: %v", kind, appointment.ID, err)
	}

	if sendErr != nil {
		// Schedule entry stays in place; retried while inside the window.
		return fmt.Errorf("failed to send %s reminder: %w", kind, sendErr)
	}

	log.Printf("Sent %s reminder for appointment %s", kind, appointment.ID)

	if err := s.store.SetOutcome(appointment.ID, kind, models.OutcomeSent); err != nil {
		return fmt.Errorf("failed to mark %s reminder sent: %w", kind, err)
	}

	updated := models.ReminderSchedule{}
	for k, t := range appointment.ReminderSchedule {
		updated[k] = t
	}
	updated[kind] = nil
	if err := s.store.SaveSchedule(appointment.ID, updated); err != nil {
		return fmt.Errorf("failed to clear %s schedule entry: %w", kind, err)
	}
	return nil
}

func reminderText(appointment *models.Appointment) string {
	if strings.Contains(strings.ToLower(appointment.Location), "http") {
		return fmt.Sprintf(
			"Hello! A reminder about your upcoming interview.\n\nDate: %s\nTime: %s\nLink: %s\n\nAre you planning to join the interview?",
			appointment.InterviewDate, appointment.InterviewTime, appointment.Location)
	}
	return fmt.Sprintf(
		"Hello! A reminder about your upcoming interview.\n\nDate: %s\nTime: %s\nAddress: %s\n\nWill you be attending the interview?",
		appointment.InterviewDate, appointment.InterviewTime, appointment.Location)
}

// HandleResponse records a recipient's confirm/decline answer against the
// reminder kind carried in the token, last write wins, and acknowledges it.
func (s *ReminderService) HandleResponse(chatID, rawToken string) error {
	token, err := ParseToken(rawToken)
	if err != nil {
		return err
	}

	appointment, err := s.store.FindByChatID(chatID)
	if err != nil {
		if errors.Is(err, ErrUnknownRecipient) {
			// Event dropped, nothing to acknowledge.
			return err
		}
		s.sendSupportFallback(chatID)
		return err
	}

	outcome := models.OutcomeConfirmed
	ack := msgAckConfirmed
	if token.Answer == AnswerNo {
		outcome = models.OutcomeDeclined
		ack = msgAckDeclined
	}

	if current := appointment.Outcome(token.Kind); !models.CanTransition(current, outcome) {
		log.Printf("Stale outcome transition for appointment %s: %s %q -> %q",
			appointment.ID, token.Kind, current, outcome)
	}

	if err := s.store.SetOutcome(appointment.ID, token.Kind, outcome); err != nil {
		s.sendSupportFallback(chatID)
		return fmt.Errorf("failed to record %s response: %w", token.Kind, err)
	}

	if err := s.messenger.SendAck(chatID, ack); err != nil {
		log.Printf("Failed to acknowledge response from %s: %v", chatID, err)
	}
	return nil
}

func (s *ReminderService) sendSupportFallback(chatID string) {
	if err := s.messenger.SendAck(chatID, msgAckFailed); err != nil {
		log.Printf("Failed to send fallback message to %s: %v", chatID, err)
	}
}

// BindChannel completes intake for a candidate: matches the phone number to
// an appointment, binds the channel, computes the reminder schedule (done
// exactly once, here) and sends the welcome message listing the reminders.
func (s *ReminderService) BindChannel(normalizedPhone, chatID string) (*models.Appointment, error) {
	appointment, err := s.store.FindByPhone(normalizedPhone)
	if err != nil {
		return nil, err
	}
	if appointment.ChatID != nil {
		return nil, ErrChannelAlreadyBound
	}

	appointmentAt, err := ParseAppointmentTime(appointment.InterviewDate, appointment.InterviewTime, s.loc)
	if err != nil {
		return nil, err
	}

	if err := s.store.BindChannel(appointment.ID, chatID); err != nil {
		return nil, err
	}

	schedule := ComputeReminderSchedule(appointmentAt)
	if err := s.store.SaveSchedule(appointment.ID, schedule); err != nil {
		return nil, err
	}
	appointment.ChatID = &chatID
	appointment.ReminderSchedule = schedule

	welcome := welcomeText(appointment, schedule)
	if err := s.messenger.SendAck(chatID, welcome); err != nil {
		log.Printf("Failed to send welcome message to %s: %v", chatID, err)
	}

	return appointment, nil
}

func welcomeText(appointment *models.Appointment, schedule models.ReminderSchedule) string {
	greeting := "Hello!"
	if appointment.CandidateName != "" {
		greeting = fmt.Sprintf("Hello, %s!", appointment.CandidateName)
	}
	return fmt.Sprintf(
		"%s\n\nYou are scheduled for an interview.\n\nDate: %s\nTime: %s\nLocation: %s\nHR contact: %s\n\nYou will receive reminders:\n- One day before (%s)\n- One hour before (%s)\n- At the interview time (%s)",
		greeting,
		appointment.InterviewDate,
		appointment.InterviewTime,
		appointment.Location,
		appointment.HRContact,
		schedule[models.KindDayBefore].Format(layoutNoSeconds),
		schedule[models.KindHourBefore].Format(layoutNoSeconds),
		schedule[models.KindAtTime].Format(layoutNoSeconds),
	)
}
