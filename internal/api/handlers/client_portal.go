package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"client-portal-backend/internal/auth"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/metrics"
	"client-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientPortalHandler serves the authenticated client portal
type ClientPortalHandler struct {
	service        service.ClientProjectServiceInterface
	maxUploadBytes int64
}

// NewClientPortalHandler creates a new client portal handler
func NewClientPortalHandler(svc service.ClientProjectServiceInterface, maxUploadBytes int64) *ClientPortalHandler {
	return &ClientPortalHandler{
		service:        svc,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetDashboard handles GET /client-portal/dashboard
// @Summary Caller dashboard
// @Description Records the caller participates in, with stats, recent activity and upcoming milestones
// @Tags client-portal
// @Produce json
// @Success 200 {object} SuccessResponse{data=engagement.Dashboard}
// @Failure 401 {object} ErrorResponse "Missing token"
// @Failure 403 {object} ErrorResponse "Invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /client-portal/dashboard [get]
func (h *ClientPortalHandler) GetDashboard(c *gin.Context) {
	const op = "dashboard"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}

	dashboard, err := h.service.GetDashboard(c.Request.Context(), caller)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, dashboard)
}

// CreateProject handles POST /client-portal/projects
// @Summary Create an engagement
// @Description Admin only. The creating admin joins the team as project manager.
// @Tags client-portal
// @Accept json
// @Produce json
// @Param project body service.CreateClientProjectRequest true "Engagement data"
// @Success 201 {object} SuccessResponse{data=map[string]models.ClientProject}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /client-portal/projects [post]
func (h *ClientPortalHandler) CreateProject(c *gin.Context) {
	const op = "create_project"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}

	var req service.CreateClientProjectRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusCreated, gin.H{"project": project})
}

// GetProject handles GET /client-portal/projects/:id
// @Summary Get an engagement
// @Tags client-portal
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} SuccessResponse{data=map[string]models.ClientProject}
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id} [get]
func (h *ClientPortalHandler) GetProject(c *gin.Context) {
	const op = "get_project"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}

	project, err := h.service.GetProject(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"project": project})
}

// AddCommunication handles POST /client-portal/projects/:id/communications
// @Summary Post a message on an engagement
// @Tags client-portal
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param communication body service.AddCommunicationRequest true "Message"
// @Success 200 {object} SuccessResponse{data=map[string][]models.Communication}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/communications [post]
func (h *ClientPortalHandler) AddCommunication(c *gin.Context) {
	const op = "add_communication"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	var req service.AddCommunicationRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	communications, err := h.service.AddCommunication(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"communications": communications})
}

// UpdateMilestone handles PATCH /client-portal/projects/:id/milestones/:milestoneId
// @Summary Change a milestone status
// @Description Requires edit permission or admin. Progress is recomputed.
// @Tags client-portal
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param milestoneId path string true "Milestone ID (UUID)"
// @Param milestone body service.UpdateMilestoneRequest true "New status"
// @Success 200 {object} SuccessResponse{data=map[string]models.Milestone}
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Project or milestone not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/milestones/{milestoneId} [patch]
func (h *ClientPortalHandler) UpdateMilestone(c *gin.Context) {
	const op = "update_milestone"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	milestoneID, err := parseID(c, "milestoneId", "milestone")
	if err != nil {
		respondError(c, op, err)
		return
	}
	var req service.UpdateMilestoneRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	milestone, err := h.service.UpdateMilestone(c.Request.Context(), caller, id, milestoneID, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"milestone": milestone})
}

// AddFeedback handles POST /client-portal/projects/:id/feedback
// @Summary Submit feedback
// @Tags client-portal
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param feedback body service.AddFeedbackRequest true "Feedback"
// @Success 200 {object} SuccessResponse{data=map[string]models.Feedback}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/feedback [post]
func (h *ClientPortalHandler) AddFeedback(c *gin.Context) {
	const op = "add_feedback"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	var req service.AddFeedbackRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	feedback, err := h.service.AddFeedback(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"feedback": feedback})
}

// UpdateFeedbackStatus handles PATCH /client-portal/projects/:id/feedback/:feedbackId
// @Summary Change a feedback status
// @Tags client-portal
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param feedbackId path string true "Feedback ID (UUID)"
// @Param status body service.UpdateFeedbackStatusRequest true "New status"
// @Success 200 {object} SuccessResponse{data=map[string]models.Feedback}
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Project or feedback not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/feedback/{feedbackId} [patch]
func (h *ClientPortalHandler) UpdateFeedbackStatus(c *gin.Context) {
	const op = "update_feedback_status"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	feedbackID, err := parseID(c, "feedbackId", "feedback")
	if err != nil {
		respondError(c, op, err)
		return
	}
	var req service.UpdateFeedbackStatusRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	feedback, err := h.service.UpdateFeedbackStatus(c.Request.Context(), caller, id, feedbackID, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"feedback": feedback})
}

// GetAnalytics handles GET /client-portal/projects/:id/analytics
// @Summary Engagement analytics
// @Tags client-portal
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} SuccessResponse{data=map[string]models.Analytics}
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/analytics [get]
func (h *ClientPortalHandler) GetAnalytics(c *gin.Context) {
	const op = "get_analytics"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}

	analytics, err := h.service.GetAnalytics(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"analytics": analytics})
}

// ExportTimesheet handles GET /client-portal/projects/:id/analytics/timesheet
// @Summary Download the time tracking workbook
// @Tags client-portal
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Project ID (UUID)"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/analytics/timesheet [get]
func (h *ClientPortalHandler) ExportTimesheet(c *gin.Context) {
	const op = "export_timesheet"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}

	export, err := h.service.ExportTimesheet(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	c.Header("Content-Length", strconv.Itoa(len(export.Data)))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

// AddTimeEntry handles POST /client-portal/projects/:id/time-entries
// @Summary Record tracked hours
// @Tags client-portal
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param entry body service.AddTimeEntryRequest true "Time entry"
// @Success 201 {object} SuccessResponse{data=map[string]models.Analytics}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/time-entries [post]
func (h *ClientPortalHandler) AddTimeEntry(c *gin.Context) {
	const op = "add_time_entry"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	var req service.AddTimeEntryRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	analytics, err := h.service.AddTimeEntry(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusCreated, gin.H{"analytics": analytics})
}

// UpsertTeamMember handles PUT /client-portal/projects/:id/team
// @Summary Add or update a team member
// @Description Admin only. An existing member keeps its place and gets the new role and permissions.
// @Tags client-portal
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param member body service.UpsertTeamMemberRequest true "Team member"
// @Success 200 {object} SuccessResponse{data=map[string][]models.TeamMember}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/team [put]
func (h *ClientPortalHandler) UpsertTeamMember(c *gin.Context) {
	const op = "upsert_team_member"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	var req service.UpsertTeamMemberRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	team, err := h.service.UpsertTeamMember(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"team": team})
}

// RemoveTeamMember handles DELETE /client-portal/projects/:id/team/:userId
// @Summary Remove a team member
// @Tags client-portal
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=map[string][]models.TeamMember}
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse "Project or team member not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/team/{userId} [delete]
func (h *ClientPortalHandler) RemoveTeamMember(c *gin.Context) {
	const op = "remove_team_member"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	userID, err := parseID(c, "userId", "team member")
	if err != nil {
		respondError(c, op, err)
		return
	}

	team, err := h.service.RemoveTeamMember(c.Request.Context(), caller, id, userID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"team": team})
}

// UpdateStatus handles PATCH /client-portal/projects/:id/status
// @Summary Change the engagement lifecycle status
// @Tags client-portal
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param status body service.UpdateStatusRequest true "New status"
// @Success 200 {object} SuccessResponse{data=map[string]models.ClientProject}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/status [patch]
func (h *ClientPortalHandler) UpdateStatus(c *gin.Context) {
	const op = "update_status"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	var req service.UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, op, err)
		return
	}

	project, err := h.service.UpdateStatus(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusOK, gin.H{"project": project})
}

// UploadFile handles POST /client-portal/projects/:id/files
// @Summary Attach a file to an engagement
// @Tags client-portal
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param file formData file true "Attachment"
// @Success 201 {object} SuccessResponse{data=map[string]models.ProjectFile}
// @Failure 400 {object} ErrorResponse "Missing or oversized file"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/files [post]
func (h *ClientPortalHandler) UploadFile(c *gin.Context) {
	const op = "upload_file"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, op, apperrors.NewValidationError("file", fmt.Sprintf("must be at most %d bytes", h.maxUploadBytes)))
			return
		}
		respondError(c, op, apperrors.NewValidationError("file", "is required"))
		return
	}

	body, err := header.Open()
	if err != nil {
		respondError(c, op, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer body.Close()

	file, err := h.service.UploadFile(c.Request.Context(), caller, id, &service.UploadFileRequest{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        body,
	})
	if err != nil {
		respondError(c, op, err)
		return
	}
	respond(c, op, http.StatusCreated, gin.H{"file": file})
}

// DownloadFile handles GET /client-portal/projects/:id/files/:fileId
// @Summary Download an attachment
// @Tags client-portal
// @Produce octet-stream
// @Param id path string true "Project ID (UUID)"
// @Param fileId path string true "File ID (UUID)"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Project or file not found"
// @Security BearerAuth
// @Router /client-portal/projects/{id}/files/{fileId} [get]
func (h *ClientPortalHandler) DownloadFile(c *gin.Context) {
	const op = "download_file"
	caller, err := auth.GetCaller(c)
	if err != nil {
		respondError(c, op, err)
		return
	}
	id, err := parseID(c, "id", "project")
	if err != nil {
		respondError(c, op, err)
		return
	}
	fileID, err := parseID(c, "fileId", "file")
	if err != nil {
		respondError(c, op, err)
		return
	}

	download, err := h.service.DownloadFile(c.Request.Context(), caller, id, fileID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	defer download.Body.Close()

	metrics.IncrementPortalOperation(op, "success")
	c.DataFromReader(http.StatusOK, download.Size, download.ContentType, download.Body, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": download.Filename}),
	})
}
