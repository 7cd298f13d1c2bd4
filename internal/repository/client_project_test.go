package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestClientProjectRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewClientProjectRepository(db)
	ctx := context.Background()

	t.Run("decodes document columns", func(t *testing.T) {
		id := uuid.New()
		clientID := uuid.New()
		memberID := uuid.New()
		milestoneID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "client_id", "title", "status", "budget_total", "budget_paid", "milestones", "team", "analytics"}).
			AddRow(id.String(), clientID.String(), "Storefront", "in-progress", 75000.0, 45000.0,
				[]byte(fmt.Sprintf(`[{"id":"%s","title":"Design","status":"completed","deliverables":[]}]`, milestoneID)),
				[]byte(fmt.Sprintf(`[{"userId":"%s","role":"developer","permissions":["view","edit"],"addedAt":"2025-01-01T00:00:00Z"}]`, memberID)),
				[]byte(`{"timeTracking":[],"progressPercentage":100}`),
			)
		mock.ExpectQuery(`SELECT \* FROM "client_projects" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(rows)

		project, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, clientID, project.ClientID)
		assert.Equal(t, models.ClientProjectStatusInProgress, project.Status)
		assert.Equal(t, 75000.0, project.Budget.Total)
		require.Len(t, project.Milestones, 1)
		assert.Equal(t, milestoneID, project.Milestones[0].ID)
		require.Len(t, project.Team, 1)
		assert.True(t, project.Team[0].Permissions.Has(models.PermissionEdit))
		assert.False(t, project.Team[0].Permissions.Has(models.PermissionManage))
		assert.Equal(t, 100, project.Analytics.Data().ProgressPercentage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "client_projects" WHERE id = \$1`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		project, err := repo.GetByID(ctx, id)
		assert.Nil(t, project)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientProjectRepository_GetByParticipant(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewClientProjectRepository(db)

	userID := uuid.New()
	membership := fmt.Sprintf(`[{"userId":"%s"}]`, userID)

	rows := sqlmock.NewRows([]string{"id", "client_id", "title"}).
		AddRow(uuid.NewString(), userID.String(), "Owned").
		AddRow(uuid.NewString(), uuid.NewString(), "Staffed")
	mock.ExpectQuery(`SELECT \* FROM "client_projects" WHERE .*client_id = \$1 OR team @> \$2::jsonb.* ORDER BY updated_at DESC`).
		WithArgs(userID, membership).
		WillReturnRows(rows)

	projects, err := repo.GetByParticipant(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "Owned", projects[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientProjectRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewClientProjectRepository(db)

	project := &models.ClientProject{
		ClientID:   uuid.New(),
		Title:      "New engagement",
		Status:     models.ClientProjectStatusProposal,
		Priority:   models.PriorityMedium,
		Milestones: datatypes.JSONSlice[models.Milestone]{},
		Team:       datatypes.JSONSlice[models.TeamMember]{},
		Analytics:  datatypes.NewJSONType(models.Analytics{}),
		Settings:   datatypes.NewJSONType(models.DefaultSettings()),
	}

	mock.ExpectQuery(`INSERT INTO "client_projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	err := repo.Create(context.Background(), project)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientProjectRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewClientProjectRepository(db)

	project := &models.ClientProject{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		ClientID:  uuid.New(),
		Title:     "Existing",
		Status:    models.ClientProjectStatusReview,
	}

	mock.ExpectExec(`UPDATE "client_projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), project)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamMembershipFilter(t *testing.T) {
	id := uuid.MustParse("7d8a6a64-2d0f-4f7e-9a52-3f8d9c1b2a10")
	doc, err := teamMembershipFilter(id)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"userId":"7d8a6a64-2d0f-4f7e-9a52-3f8d9c1b2a10"}]`, doc)
}
