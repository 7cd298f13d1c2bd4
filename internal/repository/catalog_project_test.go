package repository

import (
	"context"
	"errors"
	"testing"

	"client-portal-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatalogProjectRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogProjectRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "catalog_projects" WHERE published = \$1 AND category = \$2 AND tags @> \$3::jsonb`).
		WithArgs(true, "e-commerce", `["react"]`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT \* FROM "catalog_projects" WHERE published = \$1 AND category = \$2 AND tags @> \$3::jsonb ORDER BY title ASC LIMIT \$4 OFFSET \$5`).
		WithArgs(true, "e-commerce", `["react"]`, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "tags"}).
			AddRow(uuid.NewString(), "Shop", "shop", []byte(`["react","go"]`)))

	projects, total, err := repo.List(context.Background(), CatalogFilter{Category: "e-commerce", Tag: "react", Sort: models.CatalogSortName}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"react", "go"}, []string(projects[0].Tags))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogProjectRepository_GetCategories(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogProjectRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT "category" FROM "catalog_projects" WHERE published = \$1 AND category <> ''`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("e-commerce").AddRow("saas"))

	categories, err := repo.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"e-commerce", "saas"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogProjectRepository_GetTechStackUsage(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogProjectRepository(db)

	mock.ExpectQuery(`SELECT tech AS name, COUNT\(\*\) AS count\s+FROM catalog_projects, jsonb_array_elements_text\(tech_stack\)`).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).AddRow("Go", 7).AddRow("React", 5))

	usage, err := repo.GetTechStackUsage(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, TechUsage{Name: "Go", Count: 7}, usage[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogProjectRepository_GetMetricsAverages(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogProjectRepository(db)

	mock.ExpectQuery(`AVG\(metrics_performance\)`).
		WillReturnRows(sqlmock.NewRows([]string{"performance", "accessibility", "seo", "user_rating", "total"}).
			AddRow(91.25, 88.0, 95.5, 4.66, 4))

	avg, err := repo.GetMetricsAverages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 91.25, avg.Performance)
	assert.Equal(t, 95.5, avg.SEO)
	assert.Equal(t, 4.66, avg.UserRating)
	assert.Equal(t, int64(4), avg.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogProjectRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogProjectRepository(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectExec(`DELETE FROM "catalog_projects" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectExec(`DELETE FROM "catalog_projects" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, id)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogProjectRepository_CheckSlugExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCatalogProjectRepository(db)

	exclude := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "catalog_projects" WHERE slug = \$1 AND id != \$2`).
		WithArgs("shop", exclude).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.CheckSlugExists(context.Background(), "shop", &exclude)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", orderClause(models.CatalogSortNewest))
	assert.Equal(t, "created_at ASC", orderClause(models.CatalogSortOldest))
	assert.Equal(t, "sort_order ASC, created_at DESC", orderClause(models.CatalogSortOrder))
	assert.Equal(t, "title ASC", orderClause(models.CatalogSortName))
	assert.Equal(t, "created_at DESC", orderClause(""))
}
