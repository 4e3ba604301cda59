package contact

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/charlieallen/portfolio/pkg/mailer"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Values in the HTML body are escaped by EscapeHTML, not by the template engine.
var templates = template.Must(
	template.New("contact").
		Funcs(template.FuncMap{"escape": EscapeHTML, "nl2br": nl2br}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// HeaderSubmissionID carries the submission ID on outgoing notifications.
const HeaderSubmissionID = "X-Submission-ID"

// Envelope addresses the notification email.
type Envelope struct {
	To           string
	From         string
	SubmissionID string
}

// Subject returns the notification subject for a submitter name.
// Line breaks are folded to spaces so the name cannot inject headers.
func Subject(name string) string {
	name = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(name)
	return "New Contact Form Submission from " + name
}

// Compose builds the notification for s.
// The plain-text body carries values verbatim; the HTML body escapes them.
func Compose(s Submission, env Envelope) (*mailer.Email, error) {
	text, err := execute("notification.txt.tmpl", s)
	if err != nil {
		return nil, err
	}
	html, err := execute("notification.html.tmpl", s)
	if err != nil {
		return nil, err
	}

	email := &mailer.Email{
		From:    env.From,
		To:      []string{env.To},
		ReplyTo: s.Email,
		Subject: Subject(s.Name),
		Text:    strings.TrimSpace(text),
		HTML:    strings.TrimSpace(html),
		Tags:    mailer.Tags{"source": "contact-form"},
	}
	if env.SubmissionID != "" {
		email.Headers = map[string]string{HeaderSubmissionID: env.SubmissionID}
	}
	return email, nil
}

func execute(name string, s Submission) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, s); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCompose, name, err)
	}
	return buf.String(), nil
}
