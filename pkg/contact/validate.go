package contact

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// emailPattern accepts anything shaped local@domain.tld without whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rules bounds field lengths, counted in Unicode code points.
// A zero MessageMin disables the minimum check.
type Rules struct {
	NameMax    int
	MessageMin int
	MessageMax int
}

// RelayRules are the limits enforced before any email is sent.
func RelayRules() Rules {
	return Rules{NameMax: 100, MessageMax: 5000}
}

// FormRules add the browser-side minimum message length to RelayRules.
func FormRules() Rules {
	r := RelayRules()
	r.MessageMin = 10
	return r
}

const (
	msgMissingFields = "Missing required fields"
	msgInvalidEmail  = "Invalid email address"
	msgFormInvalid   = "Please correct the highlighted fields"

	msgNameRequired    = "Name is required"
	msgEmailRequired   = "Email is required"
	msgEmailMalformed  = "Please enter a valid email address"
	msgMessageRequired = "Message is required"
)

func nameTooLong(max int) string {
	return fmt.Sprintf("Name is too long (max %d characters)", max)
}

func messageTooLong(max int) string {
	return fmt.Sprintf("Message is too long (max %d characters)", max)
}

func messageTooShort(min int) string {
	return fmt.Sprintf("Message must be at least %d characters long", min)
}

// ValidEmail reports whether s is shaped like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// rawLen counts the code points of v in NFC without trimming, so surrounding
// whitespace still counts toward the maximum.
func rawLen(v string) int {
	return utf8.RuneCountInString(norm.NFC.String(v))
}

// Validate checks s against r and returns the first failure as a *ValidationError.
// Presence and email shape are checked on the normalised values; maximum
// lengths on the input as received.
func Validate(raw Submission, r Rules) error {
	s := Normalize(raw)

	var missing []FieldError
	if s.Name == "" {
		missing = append(missing, FieldError{FieldName, msgNameRequired})
	}
	if s.Email == "" {
		missing = append(missing, FieldError{FieldEmail, msgEmailRequired})
	}
	if s.Message == "" {
		missing = append(missing, FieldError{FieldMessage, msgMessageRequired})
	}
	if len(missing) > 0 {
		return &ValidationError{Summary: msgMissingFields, Fields: missing}
	}

	if r.NameMax > 0 && rawLen(raw.Name) > r.NameMax {
		return single(FieldName, nameTooLong(r.NameMax))
	}
	if r.MessageMax > 0 && rawLen(raw.Message) > r.MessageMax {
		return single(FieldMessage, messageTooLong(r.MessageMax))
	}
	if r.MessageMin > 0 && utf8.RuneCountInString(s.Message) < r.MessageMin {
		return single(FieldMessage, messageTooShort(r.MessageMin))
	}
	if !ValidEmail(s.Email) {
		return single(FieldEmail, msgInvalidEmail)
	}
	return nil
}

// ValidateForm checks every field of s against r and reports all failures together,
// using the wording shown next to form inputs. Lengths are counted as in Validate.
func ValidateForm(raw Submission, r Rules) error {
	s := Normalize(raw)
	var fields []FieldError

	switch {
	case s.Name == "":
		fields = append(fields, FieldError{FieldName, msgNameRequired})
	case r.NameMax > 0 && rawLen(raw.Name) > r.NameMax:
		fields = append(fields, FieldError{FieldName, nameTooLong(r.NameMax)})
	}

	switch {
	case s.Email == "":
		fields = append(fields, FieldError{FieldEmail, msgEmailRequired})
	case !ValidEmail(s.Email):
		fields = append(fields, FieldError{FieldEmail, msgEmailMalformed})
	}

	switch {
	case s.Message == "":
		fields = append(fields, FieldError{FieldMessage, msgMessageRequired})
	case r.MessageMin > 0 && utf8.RuneCountInString(s.Message) < r.MessageMin:
		fields = append(fields, FieldError{FieldMessage, messageTooShort(r.MessageMin)})
	case r.MessageMax > 0 && rawLen(raw.Message) > r.MessageMax:
		fields = append(fields, FieldError{FieldMessage, messageTooLong(r.MessageMax)})
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Summary: msgFormInvalid, Fields: fields}
}

func single(field, msg string) *ValidationError {
	return &ValidationError{Summary: msg, Fields: []FieldError{{field, msg}}}
}
