package notification

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MaxMessagePreview = 100
	truncationMarker  = "..."

	fileUploadTitle  = "New resource shared"
	messageTitle     = "New message from your mentor"
	singleTaskTitle  = "New task assigned"
	taskFallbackText = "Your mentor assigned you a new task. Open your task board to see the details."
)

func JobRecommendation(jobTitle, companyName string) Content {
	jobTitle = strings.TrimSpace(jobTitle)
	companyName = strings.TrimSpace(companyName)

	title := "New job recommendation"
	if jobTitle != "" {
		title += ": " + jobTitle
	}
	details := "Your mentor recommended a new role for you."
	if companyName != "" {
		details = "Your mentor recommended a role at " + companyName + "."
	}

	return Content{
		Kind:    KindJobRecommendation,
		Title:   title,
		Details: details,
		Metadata: map[string]string{
			MetaJobTitle:    jobTitle,
			MetaCompanyName: companyName,
		},
	}
}

func FileUpload(fileName string) Content {
	fileName = strings.TrimSpace(fileName)

	details := "Your mentor shared a new resource with you."
	if fileName != "" {
		details = fmt.Sprintf("Your mentor shared %q with you.", fileName)
	}

	return Content{
		Kind:     KindFileUpload,
		Title:    fileUploadTitle,
		Details:  details,
		Metadata: map[string]string{MetaFileName: fileName},
	}
}

// Message truncates text longer than MaxMessagePreview runes and appends "...".
func Message(text string) Content {
	return Content{
		Kind:    KindMessage,
		Title:   messageTitle,
		Details: truncate(text, MaxMessagePreview),
	}
}

// TaskAssignment titles the event by count; a nil or blank taskTitle falls back
// to a generic sentence.
func TaskAssignment(taskTitle *string, count int) Content {
	title := singleTaskTitle
	if count > 1 {
		title = strconv.Itoa(count) + " new tasks assigned"
	}

	details := taskFallbackText
	meta := map[string]string{}
	if taskTitle != nil && strings.TrimSpace(*taskTitle) != "" {
		t := strings.TrimSpace(*taskTitle)
		details = "Task: " + t
		meta[MetaTaskTitle] = t
	}
	if count > 0 {
		meta[MetaTaskCount] = strconv.Itoa(count)
	}

	return Content{
		Kind:     KindTaskAssignment,
		Title:    title,
		Details:  details,
		Metadata: meta,
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + truncationMarker
}
