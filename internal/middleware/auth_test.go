package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/plantoes/internal/config"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

func newRouter(cfg *config.Config, revoker session.Revoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg, revoker), func(c *gin.Context) {
		c.String(http.StatusOK, Session(c).ProfessionalID.String())
	})
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	revoker := session.NewMemoryRevoker()
	r := newRouter(cfg, revoker)

	professionalID := uuid.New()
	token, sess, err := session.Issue(cfg.JWTSecret, professionalID, time.Hour, time.Now())
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, professionalID.String(), w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := get(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "missing_authorization_header")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := get(r, "Basic "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_authorization_header")
	})

	t.Run("garbage token", func(t *testing.T) {
		w := get(r, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		old, _, err := session.Issue(cfg.JWTSecret, professionalID, time.Hour, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)
		w := get(r, "Bearer "+old)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		require.NoError(t, revoker.Revoke(context.Background(), sess.TokenID, sess.ExpiresAt))
		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSessionOutsideSecuredGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, session.Anonymous, Session(c).State)
}
