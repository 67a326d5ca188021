package notification

// Recipient is a resolved directory entry for a mentee.
type Recipient struct {
	ID          string
	Email       string
	DisplayName string
}
