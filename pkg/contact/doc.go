// Package contact validates contact-form submissions and relays them by email.
//
// A Submission is transient: it is normalised, validated, composed into a
// single mailer.Email with the submitter as reply-to, and handed to a
// mailer.Sender exactly once. Nothing is stored.
//
// Two rule sets exist. Validate applies the relay rules and stops at the first
// failure, in a fixed order: required fields, name length, message length,
// email shape. ValidateForm mirrors the browser checks and reports every
// invalid field at once, including the minimum message length.
//
//	svc := contact.NewService(m, contact.Config{Recipient: "hello@charlieallen.dev"})
//	receipt, err := svc.Submit(ctx, contact.Submission{
//		Name:    "Jo",
//		Email:   "jo@example.com",
//		Message: "Hello there, this is a test message.",
//	})
//	switch {
//	case errors.Is(err, contact.ErrValidation):
//		// 400
//	case errors.Is(err, contact.ErrDeliveryFailed):
//		// 500
//	}
package contact
