package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither HTML nor text content was provided.
	ErrNoContent = errors.New("email must have HTML or text content")

	// ErrNoSender indicates no From address was set and no default is configured.
	ErrNoSender = errors.New("email must have a sender address")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrUnknownProvider indicates an unsupported MAILER_PROVIDER value.
	ErrUnknownProvider = errors.New("unknown mail provider")
)
