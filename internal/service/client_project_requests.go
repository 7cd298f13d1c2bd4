package service

import (
	"io"
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// BudgetRequest is the budget of a new engagement
type BudgetRequest struct {
	Total    float64 `json:"total" validate:"gte=0" example:"75000"`
	Currency string  `json:"currency" validate:"omitempty,len=3" example:"USD"`
	Paid     float64 `json:"paid" validate:"gte=0" example:"0"`
}

// TimelineRequest is the planned timeline of a new engagement
type TimelineRequest struct {
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	EstimatedHours float64    `json:"estimatedHours" validate:"gte=0"`
}

// MilestoneRequest describes a milestone of a new engagement
type MilestoneRequest struct {
	Title        string                 `json:"title" validate:"required,max=200"`
	Description  string                 `json:"description" validate:"max=2000"`
	DueDate      *time.Time             `json:"dueDate"`
	Status       models.MilestoneStatus `json:"status" validate:"omitempty,oneof=pending in-progress completed overdue"`
	Deliverables []string               `json:"deliverables" validate:"dive,max=500"`
}

// TeamMemberRequest adds or updates one member of an engagement team.
// Permissions default to the role's permissions when omitted.
type TeamMemberRequest struct {
	UserID      uuid.UUID       `json:"userId" validate:"required"`
	Role        models.TeamRole `json:"role" validate:"required,oneof=project-manager developer designer qa client" example:"developer"`
	Permissions []string        `json:"permissions" validate:"dive,oneof=view comment edit approve manage"`
}

// CreateClientProjectRequest represents the data needed to open an engagement
type CreateClientProjectRequest struct {
	CatalogProjectID *uuid.UUID                 `json:"catalogProjectId"`
	ClientID         uuid.UUID                  `json:"clientId" validate:"required"`
	Title            string                     `json:"title" validate:"required,max=200"`
	Description      string                     `json:"description" validate:"max=5000"`
	Status           models.ClientProjectStatus `json:"status" validate:"omitempty,oneof=proposal approved in-progress review completed on-hold cancelled" example:"proposal"`
	Priority         models.Priority            `json:"priority" validate:"omitempty,oneof=low medium high urgent" example:"medium"`
	Budget           BudgetRequest              `json:"budget"`
	Timeline         TimelineRequest            `json:"timeline"`
	Milestones       []MilestoneRequest         `json:"milestones" validate:"dive"`
	Team             []TeamMemberRequest        `json:"team" validate:"dive"`
	Settings         *models.Settings           `json:"settings"`
}

// AddCommunicationRequest appends an entry to the communications log
type AddCommunicationRequest struct {
	Type        models.CommunicationType `json:"type" validate:"omitempty,oneof=message update milestone file meeting" example:"message"`
	Content     string                   `json:"content" validate:"required,max=5000"`
	Recipients  []uuid.UUID              `json:"recipients"`
	Attachments []string                 `json:"attachments" validate:"dive,max=500"`
}

// UpdateMilestoneRequest changes a milestone's status and, optionally, its notes
type UpdateMilestoneRequest struct {
	Status models.MilestoneStatus `json:"status" validate:"required,oneof=pending in-progress completed overdue" example:"completed"`
	Notes  *string                `json:"notes" validate:"omitempty,max=2000"`
}

// AddFeedbackRequest submits feedback on an engagement
type AddFeedbackRequest struct {
	Type    models.FeedbackType `json:"type" validate:"omitempty,oneof=general design functionality performance content bug" example:"general"`
	Content string              `json:"content" validate:"required,max=5000"`
	Rating  *int                `json:"rating" validate:"omitempty,min=1,max=5" example:"5"`
}

// UpdateFeedbackStatusRequest moves a feedback entry through its handling states
type UpdateFeedbackStatusRequest struct {
	Status models.FeedbackStatus `json:"status" validate:"required,oneof=pending acknowledged addressed" example:"acknowledged"`
}

// AddTimeEntryRequest records tracked hours. UserID defaults to the caller.
type AddTimeEntryRequest struct {
	Date        time.Time  `json:"date" validate:"required"`
	Hours       float64    `json:"hours" validate:"required,gt=0,lte=24" example:"3.5"`
	Description string     `json:"description" validate:"max=1000"`
	UserID      *uuid.UUID `json:"userId"`
}

// UpsertTeamMemberRequest adds a member to the team or updates an existing one
type UpsertTeamMemberRequest = TeamMemberRequest

// UpdateStatusRequest changes the lifecycle status of an engagement
type UpdateStatusRequest struct {
	Status models.ClientProjectStatus `json:"status" validate:"required,oneof=proposal approved in-progress review completed on-hold cancelled" example:"in-progress"`
}

// UploadFileRequest carries one multipart attachment
type UploadFileRequest struct {
	Name        string    `json:"name" validate:"required,max=255"`
	ContentType string    `json:"contentType" validate:"max=255"`
	Size        int64     `json:"size" validate:"gte=0"`
	Body        io.Reader `json:"-" validate:"required"`
}

// FileDownload is an opened attachment
type FileDownload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// TimesheetExport is a rendered timesheet workbook
type TimesheetExport struct {
	Filename    string
	ContentType string
	Data        []byte
}
