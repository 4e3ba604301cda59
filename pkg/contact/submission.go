package contact

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field names as they appear in JSON payloads and form posts.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Submission is a single contact-form payload.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize returns s in Unicode NFC with surrounding whitespace removed.
// Inner whitespace and line breaks of the message are preserved.
func Normalize(s Submission) Submission {
	return Submission{
		Name:    strings.TrimSpace(norm.NFC.String(s.Name)),
		Email:   strings.TrimSpace(norm.NFC.String(s.Email)),
		Message: strings.TrimSpace(norm.NFC.String(s.Message)),
	}
}
