package services

import "errors"

var (
	// ErrMalformedAppointmentTime means the record's date/time cells could
	// not be parsed in any accepted format. Fatal for that record's
	// schedule; the record is skipped.
	ErrMalformedAppointmentTime = errors.New("malformed appointment date/time")

	// ErrUnknownRecipient means no appointment matches the given channel
	// or phone number.
	ErrUnknownRecipient = errors.New("unknown recipient")

	// ErrChannelAlreadyBound means intake already completed for the record.
	ErrChannelAlreadyBound = errors.New("channel already bound")

	// ErrBadToken means an inbound response payload could not be decoded.
	ErrBadToken = errors.New("malformed response token")

	// ErrTransport wraps messaging failures. A reminder whose send failed
	// keeps its schedule entry and is retried on the next tick.
	ErrTransport = errors.New("transport error")
)
