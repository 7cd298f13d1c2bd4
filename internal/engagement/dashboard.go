package engagement

import (
	"sort"
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

const (
	activityPerProject   = 5
	activityLimit        = 10
	activityContentLimit = 100
	upcomingLimit        = 5
)

// DashboardStats are the summary counters of a caller's dashboard
type DashboardStats struct {
	TotalProjects     int     `json:"totalProjects"`
	ActiveProjects    int     `json:"activeProjects"`
	CompletedProjects int     `json:"completedProjects"`
	PendingApprovals  int     `json:"pendingApprovals"`
	TotalBudget       float64 `json:"totalBudget"`
	TotalPaid         float64 `json:"totalPaid"`
	OverdueMilestones int     `json:"overdueMilestones"`
}

// Activity is one recent communication shown on the dashboard
type Activity struct {
	Type         models.CommunicationType `json:"type"`
	Content      string                   `json:"content"`
	ProjectID    uuid.UUID                `json:"projectId"`
	ProjectTitle string                   `json:"projectTitle"`
	AuthorID     uuid.UUID                `json:"authorId"`
	Author       string                   `json:"author,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
}

// UpcomingMilestone is a milestone annotated with its owning record
type UpcomingMilestone struct {
	models.Milestone
	ProjectID    uuid.UUID `json:"projectId"`
	ProjectTitle string    `json:"projectTitle"`
}

// Dashboard is the read-side projection over a caller's records
type Dashboard struct {
	Projects           []models.ClientProject `json:"projects"`
	Stats              DashboardStats         `json:"stats"`
	RecentActivities   []Activity             `json:"recentActivities"`
	UpcomingMilestones []UpcomingMilestone    `json:"upcomingMilestones"`
}

// BuildDashboard computes stats, recent activity and upcoming milestones. It does not
// modify the records. Ties in ordering keep input order.
func BuildDashboard(records []models.ClientProject, now time.Time) Dashboard {
	d := Dashboard{
		Projects:           make([]models.ClientProject, 0, len(records)),
		Stats:              computeStats(records, now),
		RecentActivities:   recentActivities(records),
		UpcomingMilestones: upcomingMilestones(records, now),
	}
	for i := range records {
		d.Projects = append(d.Projects, *Decorate(&records[i], now))
	}
	return d
}

func computeStats(records []models.ClientProject, now time.Time) DashboardStats {
	stats := DashboardStats{TotalProjects: len(records)}
	for _, p := range records {
		switch p.Status {
		case models.ClientProjectStatusInProgress:
			stats.ActiveProjects++
		case models.ClientProjectStatusCompleted:
			stats.CompletedProjects++
		case models.ClientProjectStatusReview:
			stats.PendingApprovals++
		}
		stats.TotalBudget += p.Budget.Total
		stats.TotalPaid += p.Budget.Paid
		stats.OverdueMilestones += OverdueMilestones(p.Milestones, now)
	}
	return stats
}

func recentActivities(records []models.ClientProject) []Activity {
	var out []Activity
	for _, p := range records {
		comms := p.Communications
		if len(comms) > activityPerProject {
			comms = comms[len(comms)-activityPerProject:]
		}
		for _, c := range comms {
			out = append(out, Activity{
				Type:         c.Type,
				Content:      truncate(c.Content, activityContentLimit),
				ProjectID:    p.ID,
				ProjectTitle: p.Title,
				AuthorID:     c.AuthorID,
				CreatedAt:    c.CreatedAt,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > activityLimit {
		out = out[:activityLimit]
	}
	if out == nil {
		out = []Activity{}
	}
	return out
}

func upcomingMilestones(records []models.ClientProject, now time.Time) []UpcomingMilestone {
	out := []UpcomingMilestone{}
	for _, p := range records {
		for _, m := range p.Milestones {
			if m.Status == models.MilestoneStatusCompleted || m.DueDate == nil || !m.DueDate.After(now) {
				continue
			}
			out = append(out, UpcomingMilestone{Milestone: m, ProjectID: p.ID, ProjectTitle: p.Title})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(*out[j].DueDate)
	})
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}

// truncate cuts s to at most n characters
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
