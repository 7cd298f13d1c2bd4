package repository

import (
	"context"
	"encoding/json"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogFilter narrows a catalog listing. Only published entries are ever listed.
type CatalogFilter struct {
	Category string
	Tag      string
	Featured *bool
	Sort     models.CatalogSort
}

// TechUsage is how many published entries use one technology
type TechUsage struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// MetricsAverages are the raw metric averages over published entries
type MetricsAverages struct {
	Performance   float64 `json:"performance"`
	Accessibility float64 `json:"accessibility"`
	SEO           float64 `json:"seo" gorm:"column:seo"`
	UserRating    float64 `json:"userRating"`
	Total         int64   `json:"total"`
}

// CatalogProjectRepository handles database operations for portfolio entries
type CatalogProjectRepository struct {
	db *gorm.DB
}

// NewCatalogProjectRepository creates a new catalog project repository
func NewCatalogProjectRepository(db *gorm.DB) *CatalogProjectRepository {
	return &CatalogProjectRepository{db: db}
}

// Create creates a new catalog project
func (r *CatalogProjectRepository) Create(ctx context.Context, project *models.CatalogProject) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID retrieves a catalog project by ID
func (r *CatalogProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CatalogProject, error) {
	var project models.CatalogProject
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetPublishedBySlug retrieves a published catalog project by slug
func (r *CatalogProjectRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.CatalogProject, error) {
	var project models.CatalogProject
	err := r.db.WithContext(ctx).First(&project, "slug = ? AND published = ?", slug, true).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves published catalog projects matching the filter with pagination
func (r *CatalogProjectRepository) List(ctx context.Context, filter CatalogFilter, limit, offset int) ([]models.CatalogProject, int64, error) {
	var projects []models.CatalogProject
	var total int64

	query, err := r.filtered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err = query.Order(orderClause(filter.Sort)).Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// GetFeatured retrieves published featured entries in display order
func (r *CatalogProjectRepository) GetFeatured(ctx context.Context, limit int) ([]models.CatalogProject, error) {
	var projects []models.CatalogProject
	err := r.db.WithContext(ctx).
		Where("published = ? AND featured = ?", true, true).
		Order(orderClause(models.CatalogSortOrder)).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// GetCategories returns the distinct categories of published entries
func (r *CatalogProjectRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.CatalogProject{}).
		Where("published = ? AND category <> ''", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// GetTechStackUsage counts technology usage over published entries, most used first
func (r *CatalogProjectRepository) GetTechStackUsage(ctx context.Context, limit int) ([]TechUsage, error) {
	var usage []TechUsage
	err := r.db.WithContext(ctx).Raw(`
		SELECT tech AS name, COUNT(*) AS count
		FROM catalog_projects, jsonb_array_elements_text(tech_stack) AS tech
		WHERE published = true
		GROUP BY tech
		ORDER BY count DESC, name ASC
		LIMIT ?
	`, limit).Scan(&usage).Error
	return usage, err
}

// GetMetricsAverages averages the showcase metrics over published entries
func (r *CatalogProjectRepository) GetMetricsAverages(ctx context.Context) (*MetricsAverages, error) {
	var avg MetricsAverages
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(AVG(metrics_performance), 0) AS performance,
			COALESCE(AVG(metrics_accessibility), 0) AS accessibility,
			COALESCE(AVG(metrics_seo), 0) AS seo,
			COALESCE(AVG(metrics_user_rating), 0) AS user_rating,
			COUNT(*) AS total
		FROM catalog_projects
		WHERE published = true
	`).Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return &avg, nil
}

// Update updates a catalog project
func (r *CatalogProjectRepository) Update(ctx context.Context, project *models.CatalogProject) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete deletes a catalog project
func (r *CatalogProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CatalogProject{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CheckSlugExists checks if a slug is taken, optionally ignoring one entry
func (r *CatalogProjectRepository) CheckSlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.CatalogProject{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *CatalogProjectRepository) filtered(ctx context.Context, filter CatalogFilter) (*gorm.DB, error) {
	query := r.db.WithContext(ctx).Model(&models.CatalogProject{}).Where("published = ?", true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		tag, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return nil, err
		}
		query = query.Where("tags @> ?::jsonb", string(tag))
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	return query, nil
}

func orderClause(sort models.CatalogSort) string {
	switch sort {
	case models.CatalogSortOldest:
		return "created_at ASC"
	case models.CatalogSortOrder:
		return "sort_order ASC, created_at DESC"
	case models.CatalogSortName:
		return "title ASC"
	default:
		return "created_at DESC"
	}
}
