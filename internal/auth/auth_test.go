package auth

import (
	"errors"
	"net/http"
	"testing"
	"time"

	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/database/models"
	"client-portal-backend/internal/engagement"
	"client-portal-backend/internal/mocks"
	"client-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testSecret = "test-signing-key"

func TestTokenValidator(t *testing.T) {
	validator := NewTokenValidator(testSecret)
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := IssueToken(testSecret, userID, "client@example.com", time.Hour)
		require.NoError(t, err)

		claims, err := validator.Validate(token)
		require.NoError(t, err)
		id, err := claims.CallerID()
		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, "client@example.com", claims.Email)
	})

	t.Run("subject fallback", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}}
		id, err := claims.CallerID()
		require.NoError(t, err)
		assert.Equal(t, userID, id)
	})

	t.Run("malformed subject", func(t *testing.T) {
		claims := &Claims{UserID: "42"}
		_, err := claims.CallerID()
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := IssueToken(testSecret, userID, "", -time.Minute)
		require.NoError(t, err)

		_, err = validator.Validate(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueToken("other-secret", userID, "", time.Hour)
		require.NoError(t, err)

		_, err = validator.Validate(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("foreign signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: userID.String()})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = validator.Validate(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestRequireAuth(t *testing.T) {
	factory := testutils.NewUserFactory()

	setup := func(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockUserRepositoryInterface) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryInterface(ctrl)
		m := NewAuthMiddleware(testSecret, users)

		s := testutils.SetupHTTPTest()
		s.Router.GET("/me", m.RequireAuth(), func(c *gin.Context) {
			caller, err := GetCaller(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"id":   caller.ID.String(),
				"role": string(caller.Role),
			})
		})
		return s, users
	}

	t.Run("missing token", func(t *testing.T) {
		s, _ := setup(t)
		w := s.MakeRequest(http.MethodGet, "/me", nil)
		testutils.AssertErrorResponse(t, w, http.StatusUnauthorized, "access token required")
	})

	t.Run("non bearer header", func(t *testing.T) {
		s, _ := setup(t)
		w := s.MakeRequestWithHeaders(http.MethodGet, "/me", nil, map[string]string{"Authorization": "Basic abc"})
		testutils.AssertErrorResponse(t, w, http.StatusForbidden, "invalid or expired token")
	})

	t.Run("invalid token", func(t *testing.T) {
		s, _ := setup(t)
		w := s.MakeRequestWithHeaders(http.MethodGet, "/me", nil, testutils.BearerHeader("not-a-jwt"))
		testutils.AssertErrorResponse(t, w, http.StatusForbidden, "invalid or expired token")
	})

	t.Run("unknown user", func(t *testing.T) {
		s, users := setup(t)
		id := uuid.New()
		token, err := IssueToken(testSecret, id, "", time.Hour)
		require.NoError(t, err)
		users.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		w := s.MakeRequestWithHeaders(http.MethodGet, "/me", nil, testutils.BearerHeader(token))
		testutils.AssertErrorResponse(t, w, http.StatusForbidden, "user not found or inactive")
	})

	t.Run("inactive user", func(t *testing.T) {
		s, users := setup(t)
		user := factory.Inactive()
		token, err := IssueToken(testSecret, user.ID, user.Email, time.Hour)
		require.NoError(t, err)
		users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		w := s.MakeRequestWithHeaders(http.MethodGet, "/me", nil, testutils.BearerHeader(token))
		testutils.AssertErrorResponse(t, w, http.StatusForbidden, "user not found or inactive")
	})

	t.Run("repository failure", func(t *testing.T) {
		s, users := setup(t)
		id := uuid.New()
		token, err := IssueToken(testSecret, id, "", time.Hour)
		require.NoError(t, err)
		users.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("connection refused"))

		w := s.MakeRequestWithHeaders(http.MethodGet, "/me", nil, testutils.BearerHeader(token))
		env := testutils.AssertErrorResponse(t, w, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, env.Message, "connection refused")
	})

	t.Run("active user", func(t *testing.T) {
		s, users := setup(t)
		user := factory.WithRole(models.GlobalRoleStaff)
		token, err := IssueToken(testSecret, user.ID, user.Email, time.Hour)
		require.NoError(t, err)
		users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		w := s.MakeRequestWithHeaders(http.MethodGet, "/me", nil, testutils.BearerHeader(token))
		var body map[string]interface{}
		testutils.AssertJSONResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, user.ID.String(), body["id"])
		assert.Equal(t, "staff", body["role"])
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(testSecret, nil)

	route := func(caller *engagement.Caller) *testutils.HTTPTestSuite {
		s := testutils.SetupHTTPTest()
		s.Router.POST("/admin", func(c *gin.Context) {
			if caller != nil {
				SetCaller(c, *caller)
			}
			c.Next()
		}, m.RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return s
	}

	t.Run("admin passes", func(t *testing.T) {
		w := route(&engagement.Caller{ID: uuid.New(), Role: models.GlobalRoleAdmin}).MakeRequest(http.MethodPost, "/admin", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("client refused", func(t *testing.T) {
		w := route(&engagement.Caller{ID: uuid.New(), Role: models.GlobalRoleClient}).MakeRequest(http.MethodPost, "/admin", nil)
		env := testutils.AssertErrorResponse(t, w, http.StatusForbidden, "admin access required")
		assert.Equal(t, apperrors.CodeAdminRequired, env.Code)
	})

	t.Run("no caller", func(t *testing.T) {
		w := route(nil).MakeRequest(http.MethodPost, "/admin", nil)
		testutils.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

func TestGetCaller(t *testing.T) {
	c, _ := testutils.CreateTestGinContext()
	_, err := GetCaller(c)
	assert.ErrorIs(t, err, apperrors.ErrMissingCaller)

	caller := engagement.Caller{ID: uuid.New(), Role: models.GlobalRoleClient}
	c.Set(callerKey, caller)
	got, err := GetCaller(c)
	require.NoError(t, err)
	assert.Equal(t, caller, got)
}
