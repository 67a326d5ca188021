package notification

import "coachdesk/internal/pkg/errs"

var (
	ErrEmptyRecipientID    = errs.New("recipient id cannot be empty")
	ErrEmptyRecipientEmail = errs.New("recipient email cannot be empty")
	ErrInvalidKind         = errs.New("invalid notification kind")

	ErrInvalidProvider    = errs.New("invalid channel provider")
	ErrInvalidFromAddress = errs.New("invalid channel from address")
	ErrMissingEndpoint    = errs.New("channel endpoint is required for smtp")
)
