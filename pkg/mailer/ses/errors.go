package ses

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

var (
	ErrInvalidConfig   = errors.New("ses: invalid configuration")
	ErrMessageRejected = errors.New("ses: message rejected")
	ErrNotVerified     = errors.New("ses: sender identity not verified")
	ErrThrottled       = errors.New("ses: sending rate exceeded")
	ErrSendingPaused   = errors.New("ses: sending paused for account")
	ErrSendFailed      = errors.New("ses: send failed")
)

// wrapSESError maps SES API error codes to sentinel errors.
// The original error text is kept in the message so callers can surface it.
func wrapSESError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "MessageRejected":
			return fmt.Errorf("%w: %v", ErrMessageRejected, err)
		case "MailFromDomainNotVerifiedException", "MailFromDomainNotVerified":
			return fmt.Errorf("%w: %v", ErrNotVerified, err)
		case "Throttling", "ThrottlingException":
			return fmt.Errorf("%w: %v", ErrThrottled, err)
		case "AccountSendingPausedException", "ConfigurationSetSendingPausedException":
			return fmt.Errorf("%w: %v", ErrSendingPaused, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrSendFailed, err)
}
