package handlers

import (
	"net/http"
	"strconv"

	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/metrics"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public portfolio catalog
type CatalogHandler struct {
	service service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// List handles GET /projects
// @Summary List published catalog entries
// @Tags catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(12)
// @Param category query string false "Category filter"
// @Param tag query string false "Tag filter"
// @Param featured query bool false "Featured filter"
// @Param sort query string false "newest, oldest, order or name" default(order)
// @Success 200 {object} SuccessResponse{data=service.CatalogListResponse}
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Router /projects [get]
func (h *CatalogHandler) List(c *gin.Context) {
	const op = "catalog_list"
	var req service.CatalogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, op, apperrors.NewValidationError("", "invalid query: "+err.Error()))
		return
	}

	resp, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, resp)
}

// GetFeatured handles GET /projects/featured
// @Summary Featured catalog entries
// @Tags catalog
// @Produce json
// @Param limit query int false "Number of entries" default(6)
// @Success 200 {object} SuccessResponse{data=map[string][]models.CatalogProject}
// @Router /projects/featured [get]
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	const op = "catalog_featured"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	projects, err := h.service.GetFeatured(c.Request.Context(), limit)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"projects": projects})
}

// GetCategories handles GET /projects/categories
// @Summary Distinct categories of published entries
// @Tags catalog
// @Produce json
// @Success 200 {object} SuccessResponse{data=map[string][]string}
// @Router /projects/categories [get]
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	const op = "catalog_categories"
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"categories": categories})
}

// GetTechStack handles GET /projects/tech-stack
// @Summary Most used technologies
// @Tags catalog
// @Produce json
// @Success 200 {object} SuccessResponse{data=map[string][]repository.TechUsage}
// @Router /projects/tech-stack [get]
func (h *CatalogHandler) GetTechStack(c *gin.Context) {
	const op = "catalog_tech_stack"
	usage, err := h.service.GetTechStack(c.Request.Context())
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"techStack": usage})
}

// GetStats handles GET /projects/stats
// @Summary Average metrics over published entries
// @Tags catalog
// @Produce json
// @Success 200 {object} SuccessResponse{data=map[string]service.CatalogStats}
// @Router /projects/stats [get]
func (h *CatalogHandler) GetStats(c *gin.Context) {
	const op = "catalog_stats"
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"stats": stats})
}

// GetBySlug handles GET /projects/:slug
// @Summary Published catalog entry by slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Entry slug"
// @Success 200 {object} SuccessResponse{data=map[string]models.CatalogProject}
// @Failure 404 {object} ErrorResponse "Catalog project not found"
// @Router /projects/{slug} [get]
func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	const op = "catalog_get"
	project, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"project": project})
}

// Create handles POST /projects
// @Summary Create a catalog entry
// @Tags catalog
// @Accept json
// @Produce json
// @Param project body service.CatalogProjectRequest true "Catalog entry"
// @Success 201 {object} SuccessResponse{data=map[string]models.CatalogProject}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 409 {object} ErrorResponse "Slug already exists"
// @Security BearerAuth
// @Router /projects [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	const op = "catalog_create"
	var req service.CatalogProjectRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	project, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusCreated, gin.H{"project": project})
}

// Update handles PUT /projects/:id
// @Summary Replace a catalog entry
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Catalog project ID (UUID)"
// @Param project body service.CatalogProjectRequest true "Catalog entry"
// @Success 200 {object} SuccessResponse{data=map[string]models.CatalogProject}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Catalog project not found"
// @Failure 409 {object} ErrorResponse "Slug already exists"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	const op = "catalog_update"
	id, err := parseID(c, "id", "catalog project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	var req service.CatalogProjectRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	project, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"project": project})
}

// Delete handles DELETE /projects/:id
// @Summary Delete a catalog entry
// @Tags catalog
// @Param id path string true "Catalog project ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Catalog project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	const op = "catalog_delete"
	id, err := parseID(c, "id", "catalog project")
	if err != nil {
		respondError(c, op, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, op, err)
		return
	}
	metrics.IncrementPortalOperation(op, "success")
	c.Status(http.StatusNoContent)
}
