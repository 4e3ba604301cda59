package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// LogSender writes messages to a logger instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a development sender that logs each message.
func NewLogSender(l *slog.Logger) *LogSender {
	return &LogSender{logger: l}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, email *Email) error {
	s.logger.InfoContext(ctx, "email captured",
		slog.String("from", email.From),
		slog.Any("to", email.To),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
		slog.String("text", email.Text),
	)
	return nil
}

// DirSender saves messages as HTML and JSON files in a directory.
type DirSender struct {
	dir string
	now func() time.Time
}

// NewDirSender creates a development sender that writes messages to dir.
// The directory is created on first send.
func NewDirSender(dir string) *DirSender {
	return &DirSender{dir: dir, now: time.Now}
}

type emailMetadata struct {
	Timestamp string            `json:"timestamp"`
	From      string            `json:"from"`
	To        []string          `json:"to"`
	ReplyTo   string            `json:"reply_to,omitempty"`
	Subject   string            `json:"subject"`
	Headers   map[string]string `json:"headers,omitempty"`
	Text      string            `json:"text,omitempty"`
}

// Send implements Sender.
func (s *DirSender) Send(_ context.Context, email *Email) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create outbox: %w", err)
	}

	now := s.now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000000"), sanitizeFilename(email.Subject))

	if err := os.WriteFile(filepath.Join(s.dir, base+".html"), []byte(email.HTML), 0o644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	meta, err := json.MarshalIndent(emailMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      email.From,
		To:        email.To,
		ReplyTo:   email.ReplyTo,
		Subject:   email.Subject,
		Headers:   email.Headers,
		Text:      email.Text,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, base+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
