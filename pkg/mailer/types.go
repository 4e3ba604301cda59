package mailer

import (
	"fmt"
	"maps"
	"slices"
)

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
//   - SES: message tags (presence-only tags become value "true")
//   - Postmark: a single tag name
//   - Resend: name-value pairs
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Names returns tag names in sorted order.
func (t Tags) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Value returns the tag value rendered as a string.
// Presence-only tags render as "true".
func (t Tags) Value(name string) string {
	switch v := t[name].(type) {
	case nil, struct{}:
		return "true"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags/categories
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text alternative
	From    string            // Sender; Mailer fills the configured default when empty
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
	CC      []string          // Carbon copy recipients
	BCC     []string          // Blind carbon copy recipients
}

// Validate reports whether the email carries everything a provider needs.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.HTML == "" && e.Text == "":
		return ErrNoContent
	case e.From == "":
		return ErrNoSender
	}
	return nil
}
