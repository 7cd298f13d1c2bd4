package routes

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"client-portal-backend/internal/auth"
	"client-portal-backend/internal/config"
	"client-portal-backend/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "routes-test-secret"

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Environment:    "test",
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"http://localhost:3000"},
		MaxUploadMB:    1,
	}
	router := SetupRoutes(Dependencies{DB: db, Config: cfg, Store: storage.NewMemoryStore()})
	return router, mock
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPortalRequiresToken(t *testing.T) {
	router, _ := setupRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/client-portal/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"access token required"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/client-portal/projects/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = serve(router, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInactiveCallerIsRejected(t *testing.T) {
	router, mock := setupRouter(t)
	userID := uuid.New()
	token, err := auth.IssueToken(testSecret, userID, "old@example.com", time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "is_active"}).
			AddRow(userID.String(), "Old Client", "old@example.com", "client", false))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/client-portal/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := serve(router, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "user not found or inactive")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogWritesRequireAdmin(t *testing.T) {
	router, _ := setupRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodDelete, "/api/v1/projects/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOperationalRoutes(t *testing.T) {
	router, _ := setupRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "client_portal_http_request_duration_seconds")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/client-portal/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = serve(router, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
