//go:build unit

package notification_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"coachdesk/internal/domain/notification"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestJobRecommendation(t *testing.T) {
	actual := notification.JobRecommendation("Senior Engineer", "Acme")

	expected := notification.Content{
		Kind:    notification.KindJobRecommendation,
		Title:   "New job recommendation: Senior Engineer",
		Details: "Your mentor recommended a role at Acme.",
		Metadata: map[string]string{
			notification.MetaJobTitle:    "Senior Engineer",
			notification.MetaCompanyName: "Acme",
		},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}

	t.Run("blank inputs still compose", func(t *testing.T) {
		c := notification.JobRecommendation("  ", "")
		assert.Equal(t, "New job recommendation", c.Title)
		assert.Equal(t, "Your mentor recommended a new role for you.", c.Details)
	})
}

func TestFileUpload(t *testing.T) {
	c := notification.FileUpload("resume-template.docx")

	assert.Equal(t, notification.KindFileUpload, c.Kind)
	assert.Equal(t, "New resource shared", c.Title)
	assert.Contains(t, c.Details, "resume-template.docx")
	assert.Equal(t, "resume-template.docx", c.Metadata[notification.MetaFileName])
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantDetails string
	}{
		{
			name:        "150 characters are cut to 100 plus marker",
			text:        strings.Repeat("a", 150),
			wantDetails: strings.Repeat("a", 100) + "...",
		},
		{
			name:        "90 characters are unchanged",
			text:        strings.Repeat("b", 90),
			wantDetails: strings.Repeat("b", 90),
		},
		{
			name:        "exactly 100 characters are unchanged",
			text:        strings.Repeat("c", 100),
			wantDetails: strings.Repeat("c", 100),
		},
		{
			name:        "multi-byte runes are counted as characters",
			text:        strings.Repeat("é", 101),
			wantDetails: strings.Repeat("é", 100) + "...",
		},
		{
			name:        "empty message",
			text:        "",
			wantDetails: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := notification.Message(tt.text)
			assert.Equal(t, notification.KindMessage, c.Kind)
			assert.Equal(t, "New message from your mentor", c.Title)
			assert.Equal(t, tt.wantDetails, c.Details)
			assert.True(t, utf8.ValidString(c.Details))
		})
	}
}

func TestTaskAssignment(t *testing.T) {
	tests := []struct {
		name        string
		taskTitle   *string
		count       int
		wantTitle   string
		wantDetails string
	}{
		{
			name:        "single task with title",
			taskTitle:   ptr("Update resume"),
			count:       1,
			wantTitle:   "New task assigned",
			wantDetails: "Task: Update resume",
		},
		{
			name:        "several tasks",
			taskTitle:   ptr("Mock interview prep"),
			count:       3,
			wantTitle:   "3 new tasks assigned",
			wantDetails: "Task: Mock interview prep",
		},
		{
			name:        "no title falls back",
			taskTitle:   nil,
			count:       0,
			wantTitle:   "New task assigned",
			wantDetails: "Your mentor assigned you a new task. Open your task board to see the details.",
		},
		{
			name:        "blank title falls back",
			taskTitle:   ptr("   "),
			count:       1,
			wantTitle:   "New task assigned",
			wantDetails: "Your mentor assigned you a new task. Open your task board to see the details.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := notification.TaskAssignment(tt.taskTitle, tt.count)
			assert.Equal(t, notification.KindTaskAssignment, c.Kind)
			assert.Equal(t, tt.wantTitle, c.Title)
			assert.Equal(t, tt.wantDetails, c.Details)
		})
	}
}
