package notification

import (
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MetaJobTitle    = "job_title"
	MetaCompanyName = "company_name"
	MetaFileName    = "file_name"
	MetaTaskTitle   = "task_title"
	MetaTaskCount   = "task_count"
)

// Content is the kind-specific headline and body fragment produced by the composer.
type Content struct {
	Kind     Kind
	Title    string
	Details  string
	Metadata map[string]string
}

// PendingEvent is one queued notification. Recipient fields are captured at
// intake and never re-resolved.
type PendingEvent struct {
	id             uuid.UUID
	recipientID    string
	recipientEmail string
	recipientName  string
	kind           Kind
	title          string
	details        string
	createdAt      time.Time
	metadata       map[string]string
}

func NewPendingEvent(id uuid.UUID, recipient Recipient, content Content, createdAt time.Time) (*PendingEvent, error) {
	if strings.TrimSpace(recipient.ID) == "" {
		return nil, ErrEmptyRecipientID
	}
	if strings.TrimSpace(recipient.Email) == "" {
		return nil, ErrEmptyRecipientEmail
	}
	if !content.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &PendingEvent{
		id:             id,
		recipientID:    recipient.ID,
		recipientEmail: recipient.Email,
		recipientName:  recipient.DisplayName,
		kind:           content.Kind,
		title:          content.Title,
		details:        content.Details,
		createdAt:      createdAt,
		metadata:       maps.Clone(content.Metadata),
	}, nil
}

func (e *PendingEvent) ID() uuid.UUID          { return e.id }
func (e *PendingEvent) RecipientID() string    { return e.recipientID }
func (e *PendingEvent) RecipientEmail() string { return e.recipientEmail }
func (e *PendingEvent) RecipientName() string  { return e.recipientName }
func (e *PendingEvent) Kind() Kind             { return e.kind }
func (e *PendingEvent) Title() string          { return e.title }
func (e *PendingEvent) Details() string        { return e.details }
func (e *PendingEvent) CreatedAt() time.Time   { return e.createdAt }

// Metadata returns a copy; the event itself stays immutable.
func (e *PendingEvent) Metadata() map[string]string {
	return maps.Clone(e.metadata)
}
