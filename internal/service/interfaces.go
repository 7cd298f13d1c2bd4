package service

import (
	"context"

	"client-portal-backend/internal/database/models"
	"client-portal-backend/internal/engagement"
	"client-portal-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ClientProjectServiceInterface defines the client portal operations on engagement records
type ClientProjectServiceInterface interface {
	GetDashboard(ctx context.Context, caller engagement.Caller) (*engagement.Dashboard, error)
	GetProject(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*models.ClientProject, error)
	CreateProject(ctx context.Context, caller engagement.Caller, req *CreateClientProjectRequest) (*models.ClientProject, error)
	AddCommunication(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *AddCommunicationRequest) ([]models.Communication, error)
	UpdateMilestone(ctx context.Context, caller engagement.Caller, id, milestoneID uuid.UUID, req *UpdateMilestoneRequest) (*models.Milestone, error)
	AddFeedback(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *AddFeedbackRequest) (*models.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, caller engagement.Caller, id, feedbackID uuid.UUID, req *UpdateFeedbackStatusRequest) (*models.Feedback, error)
	GetAnalytics(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*models.Analytics, error)
	ExportTimesheet(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*TimesheetExport, error)
	AddTimeEntry(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *AddTimeEntryRequest) (*models.Analytics, error)
	UpsertTeamMember(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *UpsertTeamMemberRequest) ([]models.TeamMember, error)
	RemoveTeamMember(ctx context.Context, caller engagement.Caller, id, userID uuid.UUID) ([]models.TeamMember, error)
	UpdateStatus(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *UpdateStatusRequest) (*models.ClientProject, error)
	UploadFile(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *UploadFileRequest) (*models.ProjectFile, error)
	DownloadFile(ctx context.Context, caller engagement.Caller, id, fileID uuid.UUID) (*FileDownload, error)
}

// CatalogServiceInterface defines the public portfolio catalog operations
type CatalogServiceInterface interface {
	List(ctx context.Context, req *CatalogListRequest) (*CatalogListResponse, error)
	GetFeatured(ctx context.Context, limit int) ([]models.CatalogProject, error)
	GetBySlug(ctx context.Context, slug string) (*models.CatalogProject, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetTechStack(ctx context.Context) ([]repository.TechUsage, error)
	GetStats(ctx context.Context) (*CatalogStats, error)
	Create(ctx context.Context, req *CatalogProjectRequest) (*models.CatalogProject, error)
	Update(ctx context.Context, id uuid.UUID, req *CatalogProjectRequest) (*models.CatalogProject, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Compile-time interface checks
var (
	_ ClientProjectServiceInterface = (*ClientProjectService)(nil)
	_ CatalogServiceInterface       = (*CatalogService)(nil)
)
