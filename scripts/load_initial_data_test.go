package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedFiles(t *testing.T) {
	seed, err := loadSeedFiles("data")
	require.NoError(t, err)

	assert.NotEmpty(t, seed.Users)
	assert.NotEmpty(t, seed.CatalogProjects)
	assert.NotEmpty(t, seed.Engagements)

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("users: ["), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

		_, err := loadSeedFiles(dir)
		assert.ErrorContains(t, err, "broken.yaml")
	})
}

func TestBuildEngagement(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	client := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "casey@example.com", Role: models.GlobalRoleClient}
	pm := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "sam@example.com", Role: models.GlobalRoleStaff}
	users := map[string]*models.User{client.Email: client, pm.Email: pm}

	data := EngagementData{
		Title:          "Storefront",
		ClientEmail:    client.Email,
		Currency:       "eur",
		StartedDaysAgo: 10,
		DurationDays:   30,
		Milestones: []MilestoneData{
			{Title: "Discovery", DueInDays: 5, Status: "completed"},
			{Title: "Build", DueInDays: 25},
		},
		Team: []TeamMemberData{
			{Email: pm.Email, Role: "project-manager"},
			{Email: pm.Email, Role: "developer"},
		},
	}

	project, err := buildEngagement(data, client, users, nil, now)
	require.NoError(t, err)

	assert.Equal(t, "EUR", project.Budget.Currency)
	assert.Equal(t, models.ClientProjectStatusProposal, project.Status)
	assert.Equal(t, models.PriorityMedium, project.Priority)
	assert.Equal(t, now.AddDate(0, 0, 20), *project.Timeline.EndDate)

	require.Len(t, project.Milestones, 2)
	assert.NotNil(t, project.Milestones[0].CompletedAt)
	assert.Equal(t, models.MilestoneStatusPending, project.Milestones[1].Status)
	assert.Equal(t, 50, project.Analytics.Data().ProgressPercentage)

	require.Len(t, project.Team, 1)
	assert.Equal(t, models.TeamRoleDeveloper, project.Team[0].Role)

	t.Run("unknown references", func(t *testing.T) {
		_, err := buildEngagement(EngagementData{Team: []TeamMemberData{{Email: "nobody@example.com", Role: "qa"}}}, client, users, nil, now)
		assert.ErrorContains(t, err, "unknown team member")

		_, err = buildEngagement(EngagementData{CatalogSlug: "missing"}, client, users, map[string]*models.CatalogProject{}, now)
		assert.ErrorContains(t, err, "unknown catalog slug")

		_, err = buildEngagement(EngagementData{Team: []TeamMemberData{{Email: pm.Email, Role: "boss"}}}, client, users, nil, now)
		assert.ErrorContains(t, err, "invalid team role")
	})
}

