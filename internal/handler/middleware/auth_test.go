//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"place-booking/internal/domain/user"
	"place-booking/internal/handler/middleware"
	"place-booking/internal/pkg/jwt"
	"place-booking/internal/usecase"
	"place-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
	})
	router.POST("/manage", auth.RequireAuth(), auth.RequireTaxonomyManager(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret-key", "")
	router := newAuthRouter(svc)
	userID := uuid.New()

	t.Run("valid token sets the caller", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleViewer, time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, userID.String(), body["id"])
		require.Equal(t, "viewer", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleViewer, -time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("unknown role in claims", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.Role("superuser"), time.Minute)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")
	})
}

func TestRequireTaxonomyManager(t *testing.T) {
	svc := jwt.NewService("test-secret-key", "")
	router := newAuthRouter(svc)

	testCases := []struct {
		role       user.Role
		expectCode int
	}{
		{role: user.RoleViewer, expectCode: http.StatusForbidden},
		{role: user.RoleOperator, expectCode: http.StatusNoContent},
		{role: user.RoleAdmin, expectCode: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.role.String(), func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), tc.role, time.Minute)
			require.NoError(t, err)

			rec := httptest.PerformRequest(t, router, http.MethodPost, "/manage", nil, token)
			require.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}
