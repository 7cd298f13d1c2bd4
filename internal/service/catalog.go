package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"client-portal-backend/internal/cache"
	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/logger"
	"client-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultCatalogLimit  = 12
	maxCatalogLimit      = 100
	defaultFeaturedLimit = 6
	techStackLimit       = 20
)

// CatalogService provides the public portfolio catalog
type CatalogService struct {
	repo      repository.CatalogProjectRepositoryInterface
	cache     cache.Cache
	validator *validator.Validate
}

// NewCatalogService creates a new catalog service. A nil cache disables caching.
func NewCatalogService(repo repository.CatalogProjectRepositoryInterface, c cache.Cache, validator *validator.Validate) *CatalogService {
	if c == nil {
		c = cache.Nop{}
	}
	return &CatalogService{
		repo:      repo,
		cache:     c,
		validator: validator,
	}
}

// CatalogListRequest is the query of a catalog listing
type CatalogListRequest struct {
	Page     int                `form:"page" json:"page" validate:"gte=0"`
	Limit    int                `form:"limit" json:"limit" validate:"gte=0"`
	Category string             `form:"category" json:"category" validate:"max=100"`
	Tag      string             `form:"tag" json:"tag" validate:"max=100"`
	Featured *bool              `form:"featured" json:"featured"`
	Sort     models.CatalogSort `form:"sort" json:"sort" validate:"omitempty,oneof=newest oldest order name"`
}

// Pagination describes one page of a listing
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// CatalogListResponse is one page of published catalog entries
type CatalogListResponse struct {
	Projects   []models.CatalogProject `json:"projects"`
	Pagination Pagination              `json:"pagination"`
}

// CatalogStats are the metric averages over published entries, rounded to one decimal
type CatalogStats struct {
	TotalProjects int64   `json:"totalProjects"`
	Performance   float64 `json:"performance"`
	Accessibility float64 `json:"accessibility"`
	SEO           float64 `json:"seo"`
	UserRating    float64 `json:"userRating"`
}

// CatalogMetricsRequest are the showcase scores of an entry
type CatalogMetricsRequest struct {
	Performance   float64 `json:"performance" validate:"gte=0,lte=100"`
	Accessibility float64 `json:"accessibility" validate:"gte=0,lte=100"`
	SEO           float64 `json:"seo" validate:"gte=0,lte=100"`
	UserRating    float64 `json:"userRating" validate:"gte=0,lte=5"`
}

// CatalogProjectRequest creates or replaces a catalog entry. Slug is derived from the title when empty.
type CatalogProjectRequest struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Slug        string                `json:"slug" validate:"omitempty,max=200"`
	Description string                `json:"description" validate:"max=10000"`
	Category    string                `json:"category" validate:"required,max=100"`
	Tags        []string              `json:"tags" validate:"dive,max=50"`
	TechStack   []string              `json:"techStack" validate:"dive,max=50"`
	Images      []string              `json:"images" validate:"dive,url"`
	Metrics     CatalogMetricsRequest `json:"metrics"`
	ClientName  string                `json:"clientName" validate:"max=200"`
	LiveURL     string                `json:"liveUrl" validate:"omitempty,url,max=500"`
	Featured    bool                  `json:"featured"`
	Published   bool                  `json:"published"`
	SortOrder   int                   `json:"sortOrder"`
}

// List returns one page of published entries
func (s *CatalogService) List(ctx context.Context, req *CatalogListRequest) (*CatalogListResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultCatalogLimit
	}
	if limit > maxCatalogLimit {
		limit = maxCatalogLimit
	}
	sort := req.Sort
	if sort == "" {
		sort = models.CatalogSortNewest
	}

	offset := (page - 1) * limit
	projects, total, err := s.repo.List(ctx, repository.CatalogFilter{
		Category: req.Category,
		Tag:      req.Tag,
		Featured: req.Featured,
		Sort:     sort,
	}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog projects: %w", err)
	}
	if projects == nil {
		projects = []models.CatalogProject{}
	}

	return &CatalogListResponse{
		Projects: projects,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// GetFeatured returns featured published entries in display order
func (s *CatalogService) GetFeatured(ctx context.Context, limit int) ([]models.CatalogProject, error) {
	if limit < 1 || limit > maxCatalogLimit {
		limit = defaultFeaturedLimit
	}
	projects, err := s.repo.GetFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured projects: %w", err)
	}
	if projects == nil {
		projects = []models.CatalogProject{}
	}
	return projects, nil
}

// GetBySlug returns a published entry
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*models.CatalogProject, error) {
	project, err := s.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogProjectNotFound
		}
		return nil, fmt.Errorf("failed to get catalog project: %w", err)
	}
	return project, nil
}

// GetCategories returns the distinct categories of published entries
func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	return cached(ctx, s.cache, cache.KeyCategories, func() ([]string, error) {
		categories, err := s.repo.GetCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get categories: %w", err)
		}
		if categories == nil {
			categories = []string{}
		}
		return categories, nil
	})
}

// GetTechStack returns the most used technologies over published entries
func (s *CatalogService) GetTechStack(ctx context.Context) ([]repository.TechUsage, error) {
	return cached(ctx, s.cache, cache.KeyTechStack, func() ([]repository.TechUsage, error) {
		usage, err := s.repo.GetTechStackUsage(ctx, techStackLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to get tech stack usage: %w", err)
		}
		if usage == nil {
			usage = []repository.TechUsage{}
		}
		return usage, nil
	})
}

// GetStats returns the metric averages over published entries
func (s *CatalogService) GetStats(ctx context.Context) (*CatalogStats, error) {
	return cached(ctx, s.cache, cache.KeyStats, func() (*CatalogStats, error) {
		avg, err := s.repo.GetMetricsAverages(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get catalog stats: %w", err)
		}
		return &CatalogStats{
			TotalProjects: avg.Total,
			Performance:   round1(avg.Performance),
			Accessibility: round1(avg.Accessibility),
			SEO:           round1(avg.SEO),
			UserRating:    round1(avg.UserRating),
		}, nil
	})
}

// Create adds a catalog entry
func (s *CatalogService) Create(ctx context.Context, req *CatalogProjectRequest) (*models.CatalogProject, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	slug, err := s.uniqueSlug(ctx, req, nil)
	if err != nil {
		return nil, err
	}

	project := &models.CatalogProject{}
	applyCatalogRequest(project, req, slug)
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create catalog project: %w", err)
	}
	s.invalidate(ctx)
	return project, nil
}

// Update replaces a catalog entry
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req *CatalogProjectRequest) (*models.CatalogProject, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogProjectNotFound
		}
		return nil, fmt.Errorf("failed to get catalog project: %w", err)
	}
	slug, err := s.uniqueSlug(ctx, req, &id)
	if err != nil {
		return nil, err
	}

	applyCatalogRequest(project, req, slug)
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update catalog project: %w", err)
	}
	s.invalidate(ctx)
	return project, nil
}

// Delete removes a catalog entry
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCatalogProjectNotFound
		}
		return fmt.Errorf("failed to delete catalog project: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) uniqueSlug(ctx context.Context, req *CatalogProjectRequest, excludeID *uuid.UUID) (string, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return "", apperrors.ValidationErrors{{Field: "slug", Message: "cannot be derived from the title"}}
	}
	exists, err := s.repo.CheckSlugExists(ctx, slug, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return "", apperrors.ErrSlugExists
	}
	return slug, nil
}

// invalidate drops cached aggregates after a catalog write
func (s *CatalogService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.AggregateKeys...); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to invalidate catalog cache")
	}
}

func applyCatalogRequest(p *models.CatalogProject, req *CatalogProjectRequest, slug string) {
	p.Title = req.Title
	p.Slug = slug
	p.Description = req.Description
	p.Category = req.Category
	p.Tags = nonNil(req.Tags)
	p.TechStack = nonNil(req.TechStack)
	p.Images = nonNil(req.Images)
	p.Metrics = models.CatalogMetrics{
		Performance:   req.Metrics.Performance,
		Accessibility: req.Metrics.Accessibility,
		SEO:           req.Metrics.SEO,
		UserRating:    req.Metrics.UserRating,
	}
	p.ClientName = req.ClientName
	p.LiveURL = req.LiveURL
	p.Featured = req.Featured
	p.Published = req.Published
	p.SortOrder = req.SortOrder
}

// cached serves key from the cache, loading and storing it on a miss. Cache failures
// fall through to the loader.
func cached[T any](ctx context.Context, c cache.Cache, key string, load func() (T, error)) (T, error) {
	var value T
	ok, err := c.Get(ctx, key, &value)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("key", key).Warn("catalog cache read failed")
	}
	if ok {
		return value, nil
	}

	value, err = load()
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("key", key).Warn("catalog cache write failed")
	}
	return value, nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title and joins its alphanumeric runs with dashes
func Slugify(title string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
