// services/messenger.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Messenger delivers outbound messages to a recipient channel. Reminder
// messages carry response affordances the recipient replies with; the
// provider echoes the chosen token back on the response webhook.
type Messenger interface {
	SendReminder(chatID, text string, affordances []ResponseToken) error
	SendAck(chatID, text string) error
}

type twilioMessenger struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioMessenger(from string) Messenger {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	// Sends must never hold up a poll tick indefinitely.
	client.SetTimeout(15 * time.Second)

	return &twilioMessenger{client: client, from: from}
}

func (m *twilioMessenger) SendReminder(chatID, text string, affordances []ResponseToken) error {
	body := text
	if len(affordances) > 0 {
		lines := make([]string, 0, len(affordances))
		for _, t := range affordances {
			lines = append(lines, t.Encode())
		}
		body = text + "\n\nReply with one of:\n" + strings.Join(lines, "\n")
	}
	return m.send(chatID, body)
}

func (m *twilioMessenger) SendAck(chatID, text string) error {
	return m.send(chatID, text)
}

func (m *twilioMessenger) send(chatID, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(chatID)
	params.SetFrom(m.from)
	params.SetBody(body)

	if _, err := m.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return nil
}
