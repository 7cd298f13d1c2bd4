package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"client-portal-backend/internal/database/models"
	"client-portal-backend/internal/engagement"
	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/events"
	"client-portal-backend/internal/export"
	"client-portal-backend/internal/logger"
	"client-portal-backend/internal/repository"
	"client-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClientProjectService orchestrates the client portal: it loads a record, applies the
// access policy, computes the new value with the engagement rules and persists it.
type ClientProjectService struct {
	projects  repository.ClientProjectRepositoryInterface
	users     repository.UserRepositoryInterface
	publisher events.Publisher
	store     storage.Store
	validator *validator.Validate
	now       func() time.Time
}

// NewClientProjectService creates a new client project service
func NewClientProjectService(
	projects repository.ClientProjectRepositoryInterface,
	users repository.UserRepositoryInterface,
	publisher events.Publisher,
	store storage.Store,
	validator *validator.Validate,
) *ClientProjectService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &ClientProjectService{
		projects:  projects,
		users:     users,
		publisher: publisher,
		store:     store,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source
func (s *ClientProjectService) WithClock(now func() time.Time) *ClientProjectService {
	s.now = now
	return s
}

// GetDashboard builds the dashboard over every record the caller is client of or on the team of
func (s *ClientProjectService) GetDashboard(ctx context.Context, caller engagement.Caller) (*engagement.Dashboard, error) {
	records, err := s.projects.GetByParticipant(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	d := engagement.BuildDashboard(records, s.now())
	s.fillAuthors(ctx, d.RecentActivities)
	return &d, nil
}

// fillAuthors resolves display names of activity authors. A lookup failure leaves names empty.
func (s *ClientProjectService) fillAuthors(ctx context.Context, activities []engagement.Activity) {
	if len(activities) == 0 {
		return
	}
	ids := make([]uuid.UUID, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.AuthorID)
	}
	names, err := s.userNames(ctx, ids)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to resolve activity authors")
		return
	}
	for i := range activities {
		activities[i].Author = names[activities[i].AuthorID]
	}
}

func (s *ClientProjectService) userNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	names := make(map[uuid.UUID]string, len(unique))
	if len(unique) == 0 {
		return names, nil
	}
	users, err := s.users.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

// GetProject returns one record with its derived values
func (s *ClientProjectService) GetProject(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*models.ClientProject, error) {
	p, err := s.loadAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return engagement.Decorate(p, s.now()), nil
}

// CreateProject opens a new engagement. The creating admin is seeded as project manager.
func (s *ClientProjectService) CreateProject(ctx context.Context, caller engagement.Caller, req *CreateClientProjectRequest) (*models.ClientProject, error) {
	if !engagement.CanManage(caller, nil) {
		return nil, apperrors.ErrAdminRequired
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ValidationErrors{{Field: "clientId", Message: "client not found"}}
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if err := s.ensureTeamUsers(ctx, req.Team); err != nil {
		return nil, err
	}

	now := s.now()
	p := newClientProject(req, now)
	p, _ = engagement.UpsertTeamMember(p, models.TeamMember{
		UserID:      caller.ID,
		Role:        models.TeamRoleProjectManager,
		Permissions: models.FullPermissions(),
	}, now)
	for i, tm := range req.Team {
		member, err := teamMember(tm)
		if err != nil {
			return nil, apperrors.ValidationErrors{{Field: fmt.Sprintf("team[%d].permissions", i), Message: err.Error()}}
		}
		p, _ = engagement.UpsertTeamMember(p, member, now)
	}
	p = engagement.RecomputeProgress(p)

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": p.ID,
		"client_id":  p.ClientID,
	}).Info("client project created")
	return engagement.Decorate(p, now), nil
}

func newClientProject(req *CreateClientProjectRequest, now time.Time) *models.ClientProject {
	status := req.Status
	if status == "" {
		status = models.ClientProjectStatusProposal
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	currency := req.Budget.Currency
	if currency == "" {
		currency = "USD"
	}
	settings := models.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
		if settings.Privacy == "" {
			settings.Privacy = models.PrivacyLevelPrivate
		}
	}

	milestones := make([]models.Milestone, 0, len(req.Milestones))
	for _, mr := range req.Milestones {
		m := models.Milestone{
			ID:           uuid.New(),
			Title:        mr.Title,
			Description:  mr.Description,
			DueDate:      mr.DueDate,
			Status:       mr.Status,
			Deliverables: mr.Deliverables,
		}
		if m.Status == "" {
			m.Status = models.MilestoneStatusPending
		}
		if m.Status == models.MilestoneStatusCompleted {
			completedAt := now
			m.CompletedAt = &completedAt
		}
		if m.Deliverables == nil {
			m.Deliverables = []string{}
		}
		milestones = append(milestones, m)
	}

	return &models.ClientProject{
		CatalogProjectID: req.CatalogProjectID,
		ClientID:         req.ClientID,
		Title:            req.Title,
		Description:      req.Description,
		Status:           status,
		Priority:         priority,
		Budget:           models.Budget{Total: req.Budget.Total, Currency: strings.ToUpper(currency), Paid: req.Budget.Paid},
		Timeline: models.Timeline{
			StartDate:      req.Timeline.StartDate,
			EndDate:        req.Timeline.EndDate,
			EstimatedHours: req.Timeline.EstimatedHours,
		},
		Milestones:     milestones,
		Team:           []models.TeamMember{},
		Files:          []models.ProjectFile{},
		Communications: []models.Communication{},
		Feedback:       []models.Feedback{},
		Analytics:      datatypes.NewJSONType(models.Analytics{TimeTracking: []models.TimeEntry{}}),
		Settings:       datatypes.NewJSONType(settings),
	}
}

func teamMember(req TeamMemberRequest) (models.TeamMember, error) {
	perms := models.DefaultPermissions(req.Role)
	if len(req.Permissions) > 0 {
		parsed, err := models.ParsePermissionSet(req.Permissions)
		if err != nil {
			return models.TeamMember{}, err
		}
		perms = parsed
	}
	return models.TeamMember{UserID: req.UserID, Role: req.Role, Permissions: perms}, nil
}

// ensureTeamUsers checks that every requested team member is a known identity
func (s *ClientProjectService) ensureTeamUsers(ctx context.Context, team []TeamMemberRequest) error {
	if len(team) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(team))
	for i, tm := range team {
		ids[i] = tm.UserID
	}
	names, err := s.userNames(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get team users: %w", err)
	}
	var errs apperrors.ValidationErrors
	for i, tm := range team {
		if _, ok := names[tm.UserID]; !ok {
			errs = append(errs, &apperrors.ValidationError{Field: fmt.Sprintf("team[%d].userId", i), Message: "user not found"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddCommunication appends to the communications log and returns the whole log.
// Appends are not idempotent: a retried request adds a second entry.
func (s *ClientProjectService) AddCommunication(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *AddCommunicationRequest) ([]models.Communication, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, err := s.loadAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	next, comm := engagement.AppendCommunication(p, models.Communication{
		Type:        req.Type,
		Content:     req.Content,
		AuthorID:    caller.ID,
		Recipients:  req.Recipients,
		Attachments: req.Attachments,
	}, now)
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}

	if next.Settings.Data().Notifications.Messages {
		s.publish(ctx, events.RoutingCommunicationAdded, next, caller.ID, comm)
	}
	return []models.Communication(next.Communications), nil
}

// UpdateMilestone changes a milestone and recomputes the record's progress
func (s *ClientProjectService) UpdateMilestone(ctx context.Context, caller engagement.Caller, id, milestoneID uuid.UUID, req *UpdateMilestoneRequest) (*models.Milestone, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, err := s.loadEditable(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	next, milestone, err := engagement.ApplyMilestoneUpdate(p, milestoneID, engagement.MilestoneUpdate{
		Status: req.Status,
		Notes:  req.Notes,
	}, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}

	if next.Settings.Data().Notifications.Milestones {
		s.publish(ctx, events.RoutingMilestoneUpdated, next, caller.ID, map[string]interface{}{
			"milestone":          milestone,
			"progressPercentage": next.Analytics.Data().ProgressPercentage,
		})
	}
	return milestone, nil
}

// AddFeedback records feedback from the record's client or a team member
func (s *ClientProjectService) AddFeedback(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *AddFeedbackRequest) (*models.Feedback, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, err := s.loadAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if !engagement.IsParticipant(caller, p) {
		return nil, apperrors.ErrParticipantRequired
	}

	next, feedback := engagement.AppendFeedback(p, models.Feedback{
		Type:     req.Type,
		Content:  req.Content,
		Rating:   req.Rating,
		AuthorID: caller.ID,
	}, s.now())
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}

	if next.Settings.Data().Notifications.Messages {
		s.publish(ctx, events.RoutingFeedbackAdded, next, caller.ID, feedback)
	}
	return &feedback, nil
}

// UpdateFeedbackStatus acknowledges or resolves a feedback entry
func (s *ClientProjectService) UpdateFeedbackStatus(ctx context.Context, caller engagement.Caller, id, feedbackID uuid.UUID, req *UpdateFeedbackStatusRequest) (*models.Feedback, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, err := s.loadEditable(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	next, feedback, err := engagement.SetFeedbackStatus(p, feedbackID, req.Status)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return feedback, nil
}

// GetAnalytics returns time tracking, progress and last activity of a record
func (s *ClientProjectService) GetAnalytics(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*models.Analytics, error) {
	p, err := s.loadAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	analytics := p.Analytics.Data()
	if analytics.TimeTracking == nil {
		analytics.TimeTracking = []models.TimeEntry{}
	}
	return &analytics, nil
}

// ExportTimesheet renders the record's time tracking as a spreadsheet
func (s *ClientProjectService) ExportTimesheet(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*TimesheetExport, error) {
	p, err := s.loadAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	entries := p.Analytics.Data().TimeTracking
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.UserID
	}
	names, err := s.userNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entry users: %w", err)
	}

	data, err := export.Timesheet(p.Title, entries, names)
	if err != nil {
		return nil, fmt.Errorf("failed to render timesheet: %w", err)
	}
	return &TimesheetExport{
		Filename:    fmt.Sprintf("timesheet-%s.xlsx", p.ID),
		ContentType: export.ContentTypeXLSX,
		Data:        data,
	}, nil
}

// AddTimeEntry records tracked hours on the record
func (s *ClientProjectService) AddTimeEntry(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *AddTimeEntryRequest) (*models.Analytics, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, err := s.loadEditable(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	userID := caller.ID
	if req.UserID != nil {
		userID = *req.UserID
	}
	next, _ := engagement.AppendTimeEntry(p, models.TimeEntry{
		Date:        req.Date,
		Hours:       req.Hours,
		Description: req.Description,
		UserID:      userID,
	}, s.now())
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}

	analytics := next.Analytics.Data()
	return &analytics, nil
}

// UpsertTeamMember adds a member or updates the role and permissions of an existing one
func (s *ClientProjectService) UpsertTeamMember(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *UpsertTeamMemberRequest) ([]models.TeamMember, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, err := s.loadManageable(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ValidationErrors{{Field: "userId", Message: "user not found"}}
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	member, err := teamMember(*req)
	if err != nil {
		return nil, apperrors.ValidationErrors{{Field: "permissions", Message: err.Error()}}
	}

	next, added := engagement.UpsertTeamMember(p, member, s.now())
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": id,
		"user_id":    req.UserID,
		"added":      added,
	}).Info("team member saved")
	return []models.TeamMember(next.Team), nil
}

// RemoveTeamMember drops a member from the team
func (s *ClientProjectService) RemoveTeamMember(ctx context.Context, caller engagement.Caller, id, userID uuid.UUID) ([]models.TeamMember, error) {
	p, err := s.loadManageable(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	next, err := engagement.RemoveTeamMember(p, userID)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return []models.TeamMember(next.Team), nil
}

// UpdateStatus moves the record to another lifecycle status
func (s *ClientProjectService) UpdateStatus(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *UpdateStatusRequest) (*models.ClientProject, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, err := s.loadManageable(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	next := engagement.SetStatus(p, req.Status)
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return engagement.Decorate(next, s.now()), nil
}

// UploadFile stores an attachment and records its metadata on the record
func (s *ClientProjectService) UploadFile(ctx context.Context, caller engagement.Caller, id uuid.UUID, req *UploadFileRequest) (*models.ProjectFile, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	p, err := s.loadAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	fileID := uuid.New()
	name := path.Base(strings.ReplaceAll(req.Name, "\\", "/"))
	key := storage.ObjectKey(p.ID.String(), fileID.String(), name)

	obj, err := s.store.Put(ctx, key, req.Body, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	contentType := obj.ContentType
	if contentType == "" {
		contentType = req.ContentType
	}

	next, file := engagement.AppendFile(p, models.ProjectFile{
		ID:          fileID,
		Name:        name,
		Key:         key,
		URL:         FileDownloadPath(p.ID, fileID),
		Size:        obj.Size,
		ContentType: contentType,
		UploadedBy:  caller.ID,
	}, s.now())
	if err := s.save(ctx, next); err != nil {
		if derr := s.store.Delete(ctx, key); derr != nil {
			logger.WithContext(ctx).WithError(derr).WithField("key", key).Warn("failed to remove orphaned file")
		}
		return nil, err
	}
	return &file, nil
}

// DownloadFile opens a stored attachment for any caller with access to the record.
// The caller closes the returned body.
func (s *ClientProjectService) DownloadFile(ctx context.Context, caller engagement.Caller, id, fileID uuid.UUID) (*FileDownload, error) {
	p, err := s.loadAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	file, ok := engagement.FindFile(p, fileID)
	if !ok {
		return nil, apperrors.ErrFileNotFound
	}

	obj, body, err := s.store.Get(ctx, file.Key)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = file.ContentType
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &FileDownload{
		Filename:    file.Name,
		ContentType: contentType,
		Size:        obj.Size,
		Body:        body,
	}, nil
}

// FileDownloadPath is the portal route serving one attachment
func FileDownloadPath(projectID, fileID uuid.UUID) string {
	return fmt.Sprintf("/api/v1/client-portal/projects/%s/files/%s", projectID, fileID)
}

// load fetches a record, translating a missing row to NotFound
func (s *ClientProjectService) load(ctx context.Context, id uuid.UUID) (*models.ClientProject, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func (s *ClientProjectService) loadAccessible(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*models.ClientProject, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !engagement.CanAccess(caller, p) {
		return nil, apperrors.ErrAccessDenied
	}
	return p, nil
}

func (s *ClientProjectService) loadEditable(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*models.ClientProject, error) {
	p, err := s.loadAccessible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if !engagement.CanEdit(caller, p) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return p, nil
}

func (s *ClientProjectService) loadManageable(ctx context.Context, caller engagement.Caller, id uuid.UUID) (*models.ClientProject, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !engagement.CanManage(caller, p) {
		return nil, apperrors.ErrAdminRequired
	}
	return p, nil
}

func (s *ClientProjectService) save(ctx context.Context, p *models.ClientProject) error {
	if err := s.projects.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// publish announces a change. Publishing never fails the request.
func (s *ClientProjectService) publish(ctx context.Context, routingKey string, p *models.ClientProject, actor uuid.UUID, payload interface{}) {
	e := events.New(routingKey, p.ID, actor, payload, s.now())
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("routing_key", routingKey).Warn("failed to publish engagement event")
	}
}
