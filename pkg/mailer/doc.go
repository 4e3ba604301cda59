// Package mailer defines the outbound email boundary used by the contact relay.
//
// A Sender delivers one fully prepared Email. Provider adapters live in
// sub-packages:
//
//   - ses: Amazon Simple Email Service (aws-sdk-go-v2)
//   - resend: Resend API
//   - postmark: Postmark API
//
// LogSender and DirSender are development senders that never leave the machine.
//
// Mailer decorates any Sender with the configured default From address,
// message validation and error wrapping:
//
//	sender, err := ses.New(ctx, ses.Config{Region: "eu-west-2"})
//	if err != nil {
//		return err
//	}
//	m := mailer.New(sender, mailer.Config{SenderEmail: "no-reply@charlieallen.dev"})
//
//	err = m.Send(ctx, &mailer.Email{
//		To:      []string{"hello@charlieallen.dev"},
//		ReplyTo: "jo@example.com",
//		Subject: "New Contact Form Submission from Jo",
//		Text:    "...",
//		HTML:    "...",
//	})
//
// Mailer makes exactly one Send call per message. Retries are left to the caller.
package mailer
