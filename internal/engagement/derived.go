package engagement

import (
	"time"

	"client-portal-backend/internal/database/models"
)

// BudgetRemaining is total minus paid, floored at zero
func BudgetRemaining(b models.Budget) float64 {
	remaining := b.Total - b.Paid
	if remaining < 0 {
		return 0
	}
	return remaining
}

// OverdueMilestones counts milestones not completed whose due date is before now
func OverdueMilestones(milestones []models.Milestone, now time.Time) int {
	count := 0
	for _, m := range milestones {
		if m.Status != models.MilestoneStatusCompleted && m.DueDate != nil && m.DueDate.Before(now) {
			count++
		}
	}
	return count
}

// HealthStatus classifies how the record is tracking at now
func HealthStatus(p *models.ClientProject, now time.Time) models.HealthStatus {
	switch p.Status {
	case models.ClientProjectStatusCompleted, models.ClientProjectStatusCancelled:
		return models.HealthStatusClosed
	}

	if OverdueMilestones(p.Milestones, now) > 0 {
		return models.HealthStatusDelayed
	}
	if p.Timeline.EndDate != nil && p.Timeline.EndDate.Before(now) {
		return models.HealthStatusDelayed
	}

	if p.Status == models.ClientProjectStatusOnHold {
		return models.HealthStatusAtRisk
	}
	if p.Budget.Total > 0 && p.Budget.Paid > p.Budget.Total {
		return models.HealthStatusAtRisk
	}
	if p.Timeline.EstimatedHours > 0 && p.Timeline.ActualHours > p.Timeline.EstimatedHours {
		return models.HealthStatusAtRisk
	}
	return models.HealthStatusOnTrack
}

// Decorate returns a copy of the record with its derived read-side values filled in
func Decorate(p *models.ClientProject, now time.Time) *models.ClientProject {
	next := *p
	next.Budget.Remaining = BudgetRemaining(p.Budget)
	next.HealthStatus = HealthStatus(p, now)
	return &next
}
