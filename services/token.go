package services

import (
	"fmt"
	"strings"

	"interview-reminder-backend/models"
)

type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

// ResponseToken identifies which reminder a recipient is answering and how.
// On the wire it is the opaque callback payload "confirm_<yes|no>_<kind>",
// e.g. "confirm_yes_day_before". Inside the service it is always this struct;
// the raw string only exists at the webhook boundary.
type ResponseToken struct {
	Answer Answer
	Kind   models.ReminderKind
}

func (t ResponseToken) Encode() string {
	return fmt.Sprintf("confirm_%s_%s", t.Answer, t.Kind)
}

func ParseToken(raw string) (ResponseToken, error) {
	parts := strings.SplitN(raw, "_", 3)
	if len(parts) != 3 || parts[0] != "confirm" {
		return ResponseToken{}, fmt.Errorf("%w: %q", ErrBadToken, raw)
	}

	answer := Answer(parts[1])
	if answer != AnswerYes && answer != AnswerNo {
		return ResponseToken{}, fmt.Errorf("%w: unknown answer %q", ErrBadToken, parts[1])
	}

	kind := models.ReminderKind(parts[2])
	if !kind.Valid() {
		return ResponseToken{}, fmt.Errorf("%w: unknown reminder kind %q", ErrBadToken, parts[2])
	}

	return ResponseToken{Answer: answer, Kind: kind}, nil
}
