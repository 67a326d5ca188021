//go:build unit || e2e

package builder

import (
	"time"

	"coachdesk/internal/domain/notification"
	reqdto "coachdesk/internal/handler/dto/request"

	"github.com/google/uuid"
)

var DefaultEventTime = time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC)

type PendingEventBuilder struct {
	ID          uuid.UUID
	RecipientID string
	Email       string
	Name        string
	Content     notification.Content
	CreatedAt   time.Time
}

func NewPendingEventBuilder() *PendingEventBuilder {
	return &PendingEventBuilder{
		ID:          uuid.New(),
		RecipientID: "m1",
		Email:       "m1@example.com",
		Name:        "Jane Doe",
		Content:     notification.JobRecommendation("Senior Engineer", "Acme"),
		CreatedAt:   DefaultEventTime,
	}
}

func (b *PendingEventBuilder) With(mutate func(*PendingEventBuilder)) *PendingEventBuilder {
	mutate(b)
	return b
}

func (b *PendingEventBuilder) Recipient() notification.Recipient {
	return notification.Recipient{ID: b.RecipientID, Email: b.Email, DisplayName: b.Name}
}

func (b *PendingEventBuilder) BuildDomain() (*notification.PendingEvent, error) {
	return notification.NewPendingEvent(b.ID, b.Recipient(), b.Content, b.CreatedAt)
}

// MustBuild panics on invalid input; test fixtures only.
func (b *PendingEventBuilder) MustBuild() *notification.PendingEvent {
	ev, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return ev
}

// Fluent builder methods
func (b *PendingEventBuilder) ForRecipient(id, email, name string) *PendingEventBuilder {
	b.RecipientID = id
	b.Email = email
	b.Name = name
	return b
}

func (b *PendingEventBuilder) WithContent(c notification.Content) *PendingEventBuilder {
	b.Content = c
	return b
}

func (b *PendingEventBuilder) At(t time.Time) *PendingEventBuilder {
	b.CreatedAt = t
	return b
}

type RecipientBuilder struct {
	ID          string
	Email       string
	DisplayName string
}

func NewRecipientBuilder() *RecipientBuilder {
	return &RecipientBuilder{
		ID:          uuid.NewString(),
		Email:       "mentee@example.com",
		DisplayName: "Jane Doe",
	}
}

func (r *RecipientBuilder) With(mutate func(*RecipientBuilder)) *RecipientBuilder {
	mutate(r)
	return r
}

func (r *RecipientBuilder) Build() notification.Recipient {
	return notification.Recipient{ID: r.ID, Email: r.Email, DisplayName: r.DisplayName}
}

type ChannelBuilder struct {
	Provider    string
	FromAddress string
	FromName    string
	Endpoint    string
}

func NewChannelBuilder() *ChannelBuilder {
	return &ChannelBuilder{
		Provider:    "log",
		FromAddress: "noreply@coachdesk.test",
		FromName:    "Coachdesk",
	}
}

func (c *ChannelBuilder) With(mutate func(*ChannelBuilder)) *ChannelBuilder {
	mutate(c)
	return c
}

func (c *ChannelBuilder) BuildDomain() (notification.Channel, error) {
	return notification.NewChannel(c.Provider, c.FromAddress, c.FromName, c.Endpoint)
}

func (c *ChannelBuilder) MustBuild() notification.Channel {
	ch, err := c.BuildDomain()
	if err != nil {
		panic(err)
	}
	return ch
}

func (c *ChannelBuilder) BuildRequestDTO() reqdto.ConfigureChannelRequest {
	return reqdto.ConfigureChannelRequest{
		Provider:    c.Provider,
		FromAddress: c.FromAddress,
		FromName:    c.FromName,
		Endpoint:    c.Endpoint,
	}
}

// IntakeRequestBuilder produces request bodies for the intake endpoints.
type IntakeRequestBuilder struct {
	RecipientID string
	JobTitle    string
	CompanyName string
	FileName    string
	Message     string
	TaskTitle   *string
	Count       *int
}

func NewIntakeRequestBuilder() *IntakeRequestBuilder {
	title := "Update resume"
	return &IntakeRequestBuilder{
		RecipientID: "m1",
		JobTitle:    "Senior Engineer",
		CompanyName: "Acme",
		FileName:    "interview-guide.pdf",
		Message:     "See you Thursday",
		TaskTitle:   &title,
	}
}

func (b *IntakeRequestBuilder) With(mutate func(*IntakeRequestBuilder)) *IntakeRequestBuilder {
	mutate(b)
	return b
}

func (b *IntakeRequestBuilder) BuildJobRecommendation() reqdto.JobRecommendationRequest {
	return reqdto.JobRecommendationRequest{RecipientID: b.RecipientID, JobTitle: b.JobTitle, CompanyName: b.CompanyName}
}

func (b *IntakeRequestBuilder) BuildFileUpload() reqdto.FileUploadRequest {
	return reqdto.FileUploadRequest{RecipientID: b.RecipientID, FileName: b.FileName}
}

func (b *IntakeRequestBuilder) BuildMessage() reqdto.MessageRequest {
	return reqdto.MessageRequest{RecipientID: b.RecipientID, Message: b.Message}
}

func (b *IntakeRequestBuilder) BuildTaskAssignment(recipientIDs ...string) reqdto.TaskAssignmentRequest {
	if len(recipientIDs) == 0 {
		recipientIDs = []string{b.RecipientID}
	}
	return reqdto.TaskAssignmentRequest{RecipientIDs: recipientIDs, TaskTitle: b.TaskTitle, Count: b.Count}
}
