package engagement

import (
	"slices"
	"time"

	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// clone copies the record and its sub-collections so that the input snapshot is never mutated
func clone(p *models.ClientProject) *models.ClientProject {
	next := *p
	next.Milestones = slices.Clone(p.Milestones)
	next.Team = slices.Clone(p.Team)
	next.Files = slices.Clone(p.Files)
	next.Communications = slices.Clone(p.Communications)
	next.Feedback = slices.Clone(p.Feedback)

	analytics := p.Analytics.Data()
	analytics.TimeTracking = slices.Clone(analytics.TimeTracking)
	next.Analytics = datatypesAnalytics(analytics)
	return &next
}

func datatypesAnalytics(a models.Analytics) datatypes.JSONType[models.Analytics] {
	return datatypes.NewJSONType(a)
}

func touch(a *models.Analytics, now time.Time) {
	t := now
	a.LastActivity = &t
}

func touchRecord(p *models.ClientProject, now time.Time) {
	analytics := p.Analytics.Data()
	touch(&analytics, now)
	p.Analytics = datatypesAnalytics(analytics)
}

// UpsertTeamMember adds a member, or updates the role and permissions of an existing one.
// The second return value is true when the member was newly added.
func UpsertTeamMember(p *models.ClientProject, member models.TeamMember, now time.Time) (*models.ClientProject, bool) {
	next := clone(p)
	for i, m := range next.Team {
		if m.UserID == member.UserID {
			m.Role = member.Role
			m.Permissions = member.Permissions
			next.Team[i] = m
			return next, false
		}
	}
	member.AddedAt = now
	next.Team = append(next.Team, member)
	return next, true
}

// RemoveTeamMember drops a member from the team
func RemoveTeamMember(p *models.ClientProject, userID uuid.UUID) (*models.ClientProject, error) {
	idx := slices.IndexFunc(p.Team, func(m models.TeamMember) bool { return m.UserID == userID })
	if idx < 0 {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	next := clone(p)
	next.Team = slices.Delete(next.Team, idx, idx+1)
	return next, nil
}

// AppendCommunication adds an entry to the communications log. The author is always
// recorded as having read it.
func AppendCommunication(p *models.ClientProject, c models.Communication, now time.Time) (*models.ClientProject, models.Communication) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Type == "" {
		c.Type = models.CommunicationTypeMessage
	}
	c.CreatedAt = now
	if c.Recipients == nil {
		c.Recipients = []uuid.UUID{}
	}
	if c.Attachments == nil {
		c.Attachments = []string{}
	}
	c.IsRead = []models.ReadReceipt{{UserID: c.AuthorID, ReadAt: now}}

	next := clone(p)
	next.Communications = append(next.Communications, c)
	touchRecord(next, now)
	return next, c
}

// AppendFeedback adds a pending feedback entry
func AppendFeedback(p *models.ClientProject, f models.Feedback, now time.Time) (*models.ClientProject, models.Feedback) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Type == "" {
		f.Type = models.FeedbackTypeGeneral
	}
	f.Status = models.FeedbackStatusPending
	f.CreatedAt = now

	next := clone(p)
	next.Feedback = append(next.Feedback, f)
	touchRecord(next, now)
	return next, f
}

// SetFeedbackStatus changes the status of one feedback entry. Status is the only
// feedback field that may change after submission.
func SetFeedbackStatus(p *models.ClientProject, feedbackID uuid.UUID, status models.FeedbackStatus) (*models.ClientProject, *models.Feedback, error) {
	idx := slices.IndexFunc(p.Feedback, func(f models.Feedback) bool { return f.ID == feedbackID })
	if idx < 0 {
		return nil, nil, apperrors.ErrFeedbackNotFound
	}
	next := clone(p)
	f := next.Feedback[idx]
	f.Status = status
	next.Feedback[idx] = f
	return next, &f, nil
}

// AppendTimeEntry records tracked hours and recomputes the timeline's actual hours
func AppendTimeEntry(p *models.ClientProject, e models.TimeEntry, now time.Time) (*models.ClientProject, models.TimeEntry) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	next := clone(p)
	analytics := next.Analytics.Data()
	analytics.TimeTracking = append(analytics.TimeTracking, e)
	touch(&analytics, now)
	next.Analytics = datatypesAnalytics(analytics)
	next.Timeline.ActualHours = TrackedHours(analytics.TimeTracking)
	return next, e
}

// TrackedHours sums the hours of all time entries
func TrackedHours(entries []models.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// AppendFile records the metadata of an uploaded attachment
func AppendFile(p *models.ClientProject, f models.ProjectFile, now time.Time) (*models.ClientProject, models.ProjectFile) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.UploadedAt = now
	next := clone(p)
	next.Files = append(next.Files, f)
	touchRecord(next, now)
	return next, f
}

// FindFile returns the metadata of one attachment on the record
func FindFile(p *models.ClientProject, fileID uuid.UUID) (models.ProjectFile, bool) {
	for _, f := range p.Files {
		if f.ID == fileID {
			return f, true
		}
	}
	return models.ProjectFile{}, false
}

// SetStatus moves the record to a new lifecycle status
func SetStatus(p *models.ClientProject, status models.ClientProjectStatus) *models.ClientProject {
	next := clone(p)
	next.Status = status
	return next
}
