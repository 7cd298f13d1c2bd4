package repository

import (
	"context"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}

// ClientProjectRepositoryInterface defines the interface for client project repository operations
type ClientProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.ClientProject) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClientProject, error)
	GetByParticipant(ctx context.Context, userID uuid.UUID) ([]models.ClientProject, error)
	Update(ctx context.Context, project *models.ClientProject) error
}

// CatalogProjectRepositoryInterface defines the interface for catalog project repository operations
type CatalogProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.CatalogProject) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CatalogProject, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.CatalogProject, error)
	List(ctx context.Context, filter CatalogFilter, limit, offset int) ([]models.CatalogProject, int64, error)
	GetFeatured(ctx context.Context, limit int) ([]models.CatalogProject, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetTechStackUsage(ctx context.Context, limit int) ([]TechUsage, error)
	GetMetricsAverages(ctx context.Context) (*MetricsAverages, error)
	Update(ctx context.Context, project *models.CatalogProject) error
	Delete(ctx context.Context, id uuid.UUID) error
	CheckSlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}

// Compile-time interface checks
var (
	_ UserRepositoryInterface           = (*UserRepository)(nil)
	_ ClientProjectRepositoryInterface  = (*ClientProjectRepository)(nil)
	_ CatalogProjectRepositoryInterface = (*CatalogProjectRepository)(nil)
)
