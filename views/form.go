package views

import (
	"errors"

	"github.com/charlieallen/portfolio/pkg/contact"
)

// Messages shown in the form's error banner.
const (
	FailedDelivery = "Please try again later, or email me directly."
	FailedUnknown  = "Something went wrong. Please try again."
)

// ContactForm is the complete state of the contact form.
// The zero value is an empty form with no banners.
type ContactForm struct {
	Values contact.Submission `json:"values"`
	Errors map[string]string  `json:"errors,omitempty"`
	Sent   bool               `json:"sent"`
	Failed string             `json:"failed,omitempty"`
}

// Error returns the message for field, or an empty string.
func (f ContactForm) Error(field string) string {
	return f.Errors[field]
}

// Valid reports whether the form carries no field errors.
func (f ContactForm) Valid() bool {
	return len(f.Errors) == 0
}

// SentForm is the cleared form with the success banner shown.
func SentForm() ContactForm {
	return ContactForm{Sent: true}
}

// FormFromError keeps the submitted values and maps err onto form state.
// Field problems become inline errors; anything else becomes the banner.
func FormFromError(values contact.Submission, err error) ContactForm {
	form := ContactForm{Values: values}

	if ve, ok := contact.AsValidationError(err); ok && len(ve.Fields) > 0 {
		form.Errors = ve.Map()
		return form
	}

	switch {
	case errors.Is(err, contact.ErrValidation):
		form.Failed = err.Error()
	case errors.Is(err, contact.ErrDeliveryFailed):
		form.Failed = FailedDelivery
	case err != nil:
		form.Failed = FailedUnknown
	}
	return form
}
