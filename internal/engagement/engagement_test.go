package engagement

import (
	"strings"
	"testing"
	"time"

	"client-portal-backend/internal/database/models"
	apperrors "client-portal-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(offset time.Duration) *time.Time {
	t := now.Add(offset)
	return &t
}

func newProject(clientID uuid.UUID) *models.ClientProject {
	return &models.ClientProject{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClientID:  clientID,
		Title:     "Storefront rebuild",
		Status:    models.ClientProjectStatusInProgress,
		Priority:  models.PriorityMedium,
		Analytics: datatypes.NewJSONType(models.Analytics{}),
		Settings:  datatypes.NewJSONType(models.DefaultSettings()),
	}
}

func milestones(statuses ...models.MilestoneStatus) datatypes.JSONSlice[models.Milestone] {
	out := make(datatypes.JSONSlice[models.Milestone], len(statuses))
	for i, s := range statuses {
		out[i] = models.Milestone{ID: uuid.New(), Title: "m", Status: s, DueDate: at(time.Duration(i+1) * time.Hour)}
	}
	return out
}

func TestAccessPolicy(t *testing.T) {
	clientID := uuid.New()
	editor := models.TeamMember{UserID: uuid.New(), Role: models.TeamRoleDeveloper, Permissions: models.NewPermissionSet(models.PermissionView, models.PermissionEdit)}
	viewer := models.TeamMember{UserID: uuid.New(), Role: models.TeamRoleQA, Permissions: models.NewPermissionSet(models.PermissionView)}
	p := newProject(clientID)
	p.Team = datatypes.JSONSlice[models.TeamMember]{editor, viewer}

	client := Caller{ID: clientID, Role: models.GlobalRoleClient}
	admin := Caller{ID: uuid.New(), Role: models.GlobalRoleAdmin}
	stranger := Caller{ID: uuid.New(), Role: models.GlobalRoleStaff}

	t.Run("client and every team member can access", func(t *testing.T) {
		assert.True(t, CanAccess(client, p))
		for _, m := range p.Team {
			assert.True(t, CanAccess(Caller{ID: m.UserID, Role: models.GlobalRoleStaff}, p))
		}
	})

	t.Run("other non admin identities cannot access", func(t *testing.T) {
		assert.False(t, CanAccess(stranger, p))
		assert.False(t, CanAccess(Caller{ID: uuid.New(), Role: models.GlobalRoleClient}, p))
	})

	t.Run("admin can access edit and manage", func(t *testing.T) {
		assert.True(t, CanAccess(admin, p))
		assert.True(t, CanEdit(admin, p))
		assert.True(t, CanManage(admin, p))
	})

	t.Run("edit requires the edit permission", func(t *testing.T) {
		assert.True(t, CanEdit(Caller{ID: editor.UserID}, p))
		assert.False(t, CanEdit(Caller{ID: viewer.UserID}, p))
		assert.False(t, CanEdit(client, p))
	})

	t.Run("only admins manage", func(t *testing.T) {
		assert.False(t, CanManage(Caller{ID: editor.UserID, Role: models.GlobalRoleStaff}, p))
		assert.False(t, CanManage(client, p))
	})

	t.Run("participants exclude admins who are not on the record", func(t *testing.T) {
		assert.True(t, IsParticipant(client, p))
		assert.True(t, IsParticipant(Caller{ID: viewer.UserID}, p))
		assert.False(t, IsParticipant(admin, p))
	})
}

func TestProgressPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []models.MilestoneStatus
		expected int
	}{
		{"no milestones", nil, 0},
		{"none completed", []models.MilestoneStatus{models.MilestoneStatusPending, models.MilestoneStatusInProgress}, 0},
		{"one of three rounds down", []models.MilestoneStatus{models.MilestoneStatusCompleted, models.MilestoneStatusPending, models.MilestoneStatusPending}, 33},
		{"two of three rounds up", []models.MilestoneStatus{models.MilestoneStatusCompleted, models.MilestoneStatusCompleted, models.MilestoneStatusPending}, 67},
		{"all completed", []models.MilestoneStatus{models.MilestoneStatusCompleted, models.MilestoneStatusCompleted}, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ProgressPercentage(milestones(tc.statuses...)))
		})
	}
}

func TestApplyMilestoneUpdate(t *testing.T) {
	t.Run("completing a third of six milestones yields 50 percent", func(t *testing.T) {
		p := newProject(uuid.New())
		p.Milestones = milestones(
			models.MilestoneStatusCompleted, models.MilestoneStatusCompleted, models.MilestoneStatusPending,
			models.MilestoneStatusPending, models.MilestoneStatusInProgress, models.MilestoneStatusPending,
		)
		target := p.Milestones[2].ID

		updated, m, err := ApplyMilestoneUpdate(p, target, MilestoneUpdate{Status: models.MilestoneStatusCompleted}, now)
		require.NoError(t, err)
		assert.Equal(t, 50, updated.Analytics.Data().ProgressPercentage)
		assert.Equal(t, models.MilestoneStatusCompleted, m.Status)
		require.NotNil(t, m.CompletedAt)
		assert.Equal(t, now, *m.CompletedAt)
		require.NotNil(t, updated.Analytics.Data().LastActivity)
	})

	t.Run("input snapshot is not mutated", func(t *testing.T) {
		p := newProject(uuid.New())
		p.Milestones = milestones(models.MilestoneStatusPending)
		notes := "shipped to staging"

		updated, _, err := ApplyMilestoneUpdate(p, p.Milestones[0].ID, MilestoneUpdate{Status: models.MilestoneStatusInProgress, Notes: &notes}, now)
		require.NoError(t, err)
		assert.Equal(t, models.MilestoneStatusPending, p.Milestones[0].Status)
		assert.Empty(t, p.Milestones[0].Notes)
		assert.Equal(t, notes, updated.Milestones[0].Notes)
		assert.Nil(t, updated.Milestones[0].CompletedAt)
	})

	t.Run("notes are kept when not provided", func(t *testing.T) {
		p := newProject(uuid.New())
		p.Milestones = milestones(models.MilestoneStatusPending)
		p.Milestones[0].Notes = "keep me"

		updated, _, err := ApplyMilestoneUpdate(p, p.Milestones[0].ID, MilestoneUpdate{Status: models.MilestoneStatusInProgress}, now)
		require.NoError(t, err)
		assert.Equal(t, "keep me", updated.Milestones[0].Notes)
	})

	t.Run("re-completing refreshes completedAt", func(t *testing.T) {
		p := newProject(uuid.New())
		p.Milestones = milestones(models.MilestoneStatusCompleted)
		p.Milestones[0].CompletedAt = at(-48 * time.Hour)

		updated, _, err := ApplyMilestoneUpdate(p, p.Milestones[0].ID, MilestoneUpdate{Status: models.MilestoneStatusCompleted}, now)
		require.NoError(t, err)
		assert.Equal(t, now, *updated.Milestones[0].CompletedAt)
		assert.Equal(t, 100, updated.Analytics.Data().ProgressPercentage)
	})

	t.Run("unknown milestone", func(t *testing.T) {
		p := newProject(uuid.New())
		p.Milestones = milestones(models.MilestoneStatusPending)

		_, _, err := ApplyMilestoneUpdate(p, uuid.New(), MilestoneUpdate{Status: models.MilestoneStatusCompleted}, now)
		assert.ErrorIs(t, err, apperrors.ErrMilestoneNotFound)
	})

	t.Run("progress invariant holds after every status change", func(t *testing.T) {
		p := newProject(uuid.New())
		p.Milestones = milestones(models.MilestoneStatusPending, models.MilestoneStatusPending, models.MilestoneStatusPending, models.MilestoneStatusPending)
		sequence := []models.MilestoneStatus{
			models.MilestoneStatusCompleted, models.MilestoneStatusInProgress,
			models.MilestoneStatusCompleted, models.MilestoneStatusOverdue,
		}
		for i, status := range sequence {
			next, _, err := ApplyMilestoneUpdate(p, p.Milestones[i%len(p.Milestones)].ID, MilestoneUpdate{Status: status}, now)
			require.NoError(t, err)
			assert.Equal(t, ProgressPercentage(next.Milestones), next.Analytics.Data().ProgressPercentage)
			p = next
		}
	})
}

func TestUpsertTeamMember(t *testing.T) {
	p := newProject(uuid.New())
	userID := uuid.New()

	p, added := UpsertTeamMember(p, models.TeamMember{UserID: userID, Role: models.TeamRoleDeveloper, Permissions: models.NewPermissionSet(models.PermissionView)}, now)
	assert.True(t, added)
	require.Len(t, p.Team, 1)
	assert.Equal(t, now, p.Team[0].AddedAt)

	later := now.Add(time.Hour)
	p, added = UpsertTeamMember(p, models.TeamMember{UserID: userID, Role: models.TeamRoleDesigner, Permissions: models.FullPermissions()}, later)
	assert.False(t, added)
	require.Len(t, p.Team, 1)
	assert.Equal(t, models.TeamRoleDesigner, p.Team[0].Role)
	assert.True(t, p.Team[0].Permissions.Has(models.PermissionManage))
	assert.Equal(t, now, p.Team[0].AddedAt)

	p, err := RemoveTeamMember(p, userID)
	require.NoError(t, err)
	assert.Empty(t, p.Team)

	_, err = RemoveTeamMember(p, userID)
	assert.ErrorIs(t, err, apperrors.ErrTeamMemberNotFound)
}

func TestAppendCommunication(t *testing.T) {
	t.Run("author is self-read", func(t *testing.T) {
		p := newProject(uuid.New())
		author := uuid.New()

		updated, c := AppendCommunication(p, models.Communication{Content: "hello", AuthorID: author}, now)
		require.Len(t, updated.Communications, 1)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, models.CommunicationTypeMessage, c.Type)
		require.Len(t, c.IsRead, 1)
		assert.Equal(t, author, c.IsRead[0].UserID)
		assert.Equal(t, now, *updated.Analytics.Data().LastActivity)
		assert.Empty(t, p.Communications)
	})

	t.Run("identical appends produce distinct entries", func(t *testing.T) {
		p := newProject(uuid.New())
		msg := models.Communication{Content: "same", AuthorID: p.ClientID}

		p, first := AppendCommunication(p, msg, now)
		p, second := AppendCommunication(p, msg, now)
		assert.Len(t, p.Communications, 2)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestFeedback(t *testing.T) {
	p := newProject(uuid.New())
	rating := 4

	p, f := AppendFeedback(p, models.Feedback{Content: "looks great", Rating: &rating, AuthorID: p.ClientID}, now)
	assert.Equal(t, models.FeedbackStatusPending, f.Status)
	assert.Equal(t, models.FeedbackTypeGeneral, f.Type)

	updated, changed, err := SetFeedbackStatus(p, f.ID, models.FeedbackStatusAddressed)
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackStatusAddressed, changed.Status)
	assert.Equal(t, "looks great", updated.Feedback[0].Content)
	assert.Equal(t, models.FeedbackStatusPending, p.Feedback[0].Status)

	_, _, err = SetFeedbackStatus(p, uuid.New(), models.FeedbackStatusAddressed)
	assert.ErrorIs(t, err, apperrors.ErrFeedbackNotFound)
}

func TestAppendTimeEntry(t *testing.T) {
	p := newProject(uuid.New())
	p, _ = AppendTimeEntry(p, models.TimeEntry{Date: now, Hours: 3.5, UserID: uuid.New()}, now)
	p, _ = AppendTimeEntry(p, models.TimeEntry{Date: now, Hours: 2, UserID: uuid.New()}, now)

	assert.Len(t, p.Analytics.Data().TimeTracking, 2)
	assert.InDelta(t, 5.5, p.Timeline.ActualHours, 0.0001)
}

func TestDerivedValues(t *testing.T) {
	t.Run("budget remaining is clamped at zero", func(t *testing.T) {
		assert.Equal(t, 30000.0, BudgetRemaining(models.Budget{Total: 75000, Paid: 45000}))
		assert.Equal(t, 0.0, BudgetRemaining(models.Budget{Total: 100, Paid: 150}))
	})

	t.Run("health status", func(t *testing.T) {
		p := newProject(uuid.New())
		assert.Equal(t, models.HealthStatusOnTrack, HealthStatus(p, now))

		overdue := *p
		overdue.Milestones = datatypes.JSONSlice[models.Milestone]{{ID: uuid.New(), Status: models.MilestoneStatusPending, DueDate: at(-time.Hour)}}
		assert.Equal(t, models.HealthStatusDelayed, HealthStatus(&overdue, now))

		overBudget := *p
		overBudget.Budget = models.Budget{Total: 100, Paid: 120}
		assert.Equal(t, models.HealthStatusAtRisk, HealthStatus(&overBudget, now))

		closed := *p
		closed.Status = models.ClientProjectStatusCancelled
		assert.Equal(t, models.HealthStatusClosed, HealthStatus(&closed, now))
	})

	t.Run("decorate fills derived fields on a copy", func(t *testing.T) {
		p := newProject(uuid.New())
		p.Budget = models.Budget{Total: 10, Paid: 4}
		d := Decorate(p, now)
		assert.Equal(t, 6.0, d.Budget.Remaining)
		assert.Equal(t, models.HealthStatusOnTrack, d.HealthStatus)
		assert.Zero(t, p.Budget.Remaining)
	})
}

func TestBuildDashboard(t *testing.T) {
	clientID := uuid.New()

	t.Run("budget totals over records", func(t *testing.T) {
		a := newProject(clientID)
		a.Budget = models.Budget{Total: 75000, Paid: 45000}
		b := newProject(clientID)
		b.Budget = models.Budget{Total: 50000, Paid: 50000}
		c := newProject(clientID)

		d := BuildDashboard([]models.ClientProject{*a, *b, *c}, now)
		assert.Equal(t, 125000.0, d.Stats.TotalBudget)
		assert.Equal(t, 95000.0, d.Stats.TotalPaid)
		assert.Equal(t, 3, d.Stats.TotalProjects)
		assert.Equal(t, 30000.0, d.Projects[0].Budget.Remaining)
	})

	t.Run("status counters and overdue milestones", func(t *testing.T) {
		active := newProject(clientID)
		active.Milestones = datatypes.JSONSlice[models.Milestone]{
			{ID: uuid.New(), Status: models.MilestoneStatusPending, DueDate: at(-2 * time.Hour)},
			{ID: uuid.New(), Status: models.MilestoneStatusCompleted, DueDate: at(-2 * time.Hour)},
			{ID: uuid.New(), Status: models.MilestoneStatusOverdue, DueDate: at(-time.Minute)},
			{ID: uuid.New(), Status: models.MilestoneStatusPending, DueDate: at(time.Hour)},
			{ID: uuid.New(), Status: models.MilestoneStatusPending},
		}
		completed := newProject(clientID)
		completed.Status = models.ClientProjectStatusCompleted
		review := newProject(clientID)
		review.Status = models.ClientProjectStatusReview

		d := BuildDashboard([]models.ClientProject{*active, *completed, *review}, now)
		assert.Equal(t, 1, d.Stats.ActiveProjects)
		assert.Equal(t, 1, d.Stats.CompletedProjects)
		assert.Equal(t, 1, d.Stats.PendingApprovals)
		assert.Equal(t, 2, d.Stats.OverdueMilestones)

		later := BuildDashboard([]models.ClientProject{*active}, now.Add(2*time.Hour))
		assert.Equal(t, 3, later.Stats.OverdueMilestones)
	})

	t.Run("recent activity takes last five per record sorted newest first", func(t *testing.T) {
		a := newProject(clientID)
		for i := 0; i < 7; i++ {
			a.Communications = append(a.Communications, models.Communication{ID: uuid.New(), Type: models.CommunicationTypeMessage, Content: "a", CreatedAt: now.Add(time.Duration(i) * time.Minute)})
		}
		b := newProject(clientID)
		b.Title = "Mobile app"
		for i := 0; i < 7; i++ {
			b.Communications = append(b.Communications, models.Communication{ID: uuid.New(), Type: models.CommunicationTypeUpdate, Content: "b", CreatedAt: now.Add(time.Duration(i)*time.Minute + 30*time.Second)})
		}

		d := BuildDashboard([]models.ClientProject{*a, *b}, now)
		require.Len(t, d.RecentActivities, 10)
		for i := 1; i < len(d.RecentActivities); i++ {
			assert.False(t, d.RecentActivities[i].CreatedAt.After(d.RecentActivities[i-1].CreatedAt))
		}
		oldest := now.Add(2 * time.Minute)
		for _, act := range d.RecentActivities {
			assert.False(t, act.CreatedAt.Before(oldest))
		}
		assert.Equal(t, "Mobile app", d.RecentActivities[0].ProjectTitle)
	})

	t.Run("ties keep input order and content is truncated", func(t *testing.T) {
		a := newProject(clientID)
		a.Title = "first"
		a.Communications = datatypes.JSONSlice[models.Communication]{{ID: uuid.New(), Content: strings.Repeat("x", 150), CreatedAt: now}}
		b := newProject(clientID)
		b.Title = "second"
		b.Communications = datatypes.JSONSlice[models.Communication]{{ID: uuid.New(), Content: "short", CreatedAt: now}}

		d := BuildDashboard([]models.ClientProject{*a, *b}, now)
		require.Len(t, d.RecentActivities, 2)
		assert.Equal(t, "first", d.RecentActivities[0].ProjectTitle)
		assert.Equal(t, "second", d.RecentActivities[1].ProjectTitle)
		assert.Len(t, d.RecentActivities[0].Content, 100)
	})

	t.Run("upcoming milestones ascending by due date, top five", func(t *testing.T) {
		a := newProject(clientID)
		b := newProject(clientID)
		for i := 6; i >= 1; i-- {
			a.Milestones = append(a.Milestones, models.Milestone{ID: uuid.New(), Status: models.MilestoneStatusPending, DueDate: at(time.Duration(i) * time.Hour)})
		}
		b.Milestones = datatypes.JSONSlice[models.Milestone]{
			{ID: uuid.New(), Status: models.MilestoneStatusCompleted, DueDate: at(10 * time.Minute)},
			{ID: uuid.New(), Status: models.MilestoneStatusPending, DueDate: at(30 * time.Minute)},
			{ID: uuid.New(), Status: models.MilestoneStatusPending, DueDate: at(-30 * time.Minute)},
		}

		d := BuildDashboard([]models.ClientProject{*a, *b}, now)
		require.Len(t, d.UpcomingMilestones, 5)
		assert.Equal(t, b.ID, d.UpcomingMilestones[0].ProjectID)
		for i := 1; i < len(d.UpcomingMilestones); i++ {
			assert.True(t, d.UpcomingMilestones[i-1].DueDate.Before(*d.UpcomingMilestones[i].DueDate))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		d := BuildDashboard(nil, now)
		assert.Equal(t, 0, d.Stats.TotalProjects)
		assert.Empty(t, d.RecentActivities)
		assert.NotNil(t, d.RecentActivities)
		assert.NotNil(t, d.UpcomingMilestones)
	})
}
