package contact

import (
	"errors"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("contact: invalid submission")

	// ErrDeliveryFailed matches every *DeliveryError.
	ErrDeliveryFailed = errors.New("contact: failed to send message")

	// ErrCompose indicates the email templates failed to execute.
	ErrCompose = errors.New("contact: failed to compose email")
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports why a submission was rejected.
// Summary is the message shown to API clients; Fields carries per-field detail.
type ValidationError struct {
	Summary string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	return e.Summary
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Field returns the message for the named field, or an empty string.
func (e *ValidationError) Field(name string) string {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message
		}
	}
	return ""
}

// Map returns field messages keyed by field name.
func (e *ValidationError) Map() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// DeliveryError wraps an email dispatch failure.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return ErrDeliveryFailed.Error() + ": " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}

// Detail returns the upstream error text on a single line.
func (e *DeliveryError) Detail() string {
	return strings.Join(strings.Fields(e.Err.Error()), " ")
}

// AsDeliveryError extracts a *DeliveryError from err.
func AsDeliveryError(err error) (*DeliveryError, bool) {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
