package engagement

import (
	"math"
	"time"

	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"

	"github.com/google/uuid"
)

// MilestoneUpdate carries the fields a milestone update may change
type MilestoneUpdate struct {
	Status models.MilestoneStatus
	Notes  *string
}

// ProgressPercentage is round(100 * completed / total), or 0 without milestones
func ProgressPercentage(milestones []models.Milestone) int {
	if len(milestones) == 0 {
		return 0
	}
	completed := 0
	for _, m := range milestones {
		if m.Status == models.MilestoneStatusCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(milestones))))
}

// ApplyMilestoneUpdate sets the status (and notes, when given) of one milestone and
// recomputes the record's progress. Completing a milestone stamps CompletedAt with now,
// including when it was already completed.
func ApplyMilestoneUpdate(p *models.ClientProject, milestoneID uuid.UUID, upd MilestoneUpdate, now time.Time) (*models.ClientProject, *models.Milestone, error) {
	idx := -1
	for i, m := range p.Milestones {
		if m.ID == milestoneID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, apperrors.ErrMilestoneNotFound
	}

	next := clone(p)
	m := next.Milestones[idx]
	m.Status = upd.Status
	if upd.Notes != nil {
		m.Notes = *upd.Notes
	}
	if upd.Status == models.MilestoneStatusCompleted {
		completedAt := now
		m.CompletedAt = &completedAt
	}
	next.Milestones[idx] = m

	analytics := next.Analytics.Data()
	analytics.ProgressPercentage = ProgressPercentage(next.Milestones)
	touch(&analytics, now)
	next.Analytics = datatypesAnalytics(analytics)

	return next, &m, nil
}

// RecomputeProgress refreshes progress from the current milestones
func RecomputeProgress(p *models.ClientProject) *models.ClientProject {
	next := clone(p)
	analytics := next.Analytics.Data()
	analytics.ProgressPercentage = ProgressPercentage(next.Milestones)
	next.Analytics = datatypesAnalytics(analytics)
	return next
}
