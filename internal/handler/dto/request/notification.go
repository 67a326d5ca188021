package request

import (
	"coachdesk/internal/usecase/commands"
)

type JobRecommendationRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,max=64"`
	JobTitle    string `json:"job_title" binding:"required,max=200"`
	CompanyName string `json:"company_name" binding:"required,max=200"`
}

type FileUploadRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,max=64"`
	FileName    string `json:"file_name" binding:"required,max=255"`
}

type MessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,max=64"`
	Message     string `json:"message" binding:"required,max=10000"`
}

type TaskAssignmentRequest struct {
	RecipientIDs []string `json:"recipient_ids" binding:"required,min=1,max=500,dive,required,max=64"`
	TaskTitle    *string  `json:"task_title" binding:"omitempty,max=200"`
	// Count defaults to 1.
	Count *int `json:"count" binding:"omitempty,min=1,max=1000"`
}

func (r *TaskAssignmentRequest) CountOrDefault() int {
	if r.Count == nil {
		return 1
	}
	return *r.Count
}

type ConfigureChannelRequest struct {
	Provider    string `json:"provider" binding:"required,oneof=ses smtp log"`
	FromAddress string `json:"from_address" binding:"required,email"`
	FromName    string `json:"from_name" binding:"max=100"`
	Endpoint    string `json:"endpoint" binding:"omitempty,hostname_port"`
}

func (r *ConfigureChannelRequest) ToInput() commands.ConfigureChannelInput {
	return commands.ConfigureChannelInput{
		Provider:    r.Provider,
		FromAddress: r.FromAddress,
		FromName:    r.FromName,
		Endpoint:    r.Endpoint,
	}
}
