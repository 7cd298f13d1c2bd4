package repository

import (
	"context"
	"testing"

	"client-portal-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CreateKeepsInactiveFlag(t *testing.T) {
	db, _ := setupMockDB(t)

	user := &models.User{
		Name:     "Former Client",
		Email:    "former@example.com",
		Role:     models.GlobalRoleClient,
		IsActive: false,
	}

	stmt := db.Session(&gorm.Session{DryRun: true}).Create(user).Statement
	require.NoError(t, stmt.Error)
	assert.Contains(t, stmt.SQL.String(), `"is_active"`)

	var flags []bool
	for _, v := range stmt.Vars {
		if b, ok := v.(bool); ok {
			flags = append(flags, b)
		}
	}
	assert.Equal(t, []bool{false}, flags)
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "is_active"}).
		AddRow(id.String(), "Former Client", "former@example.com", "client", false)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.False(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
