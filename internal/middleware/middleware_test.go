package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"institute_backend/internal/model"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(roles ...model.UserRole) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	g := r.Group("/", AuthMiddleware(testSecret))
	if len(roles) > 0 {
		g.Use(RoleMiddleware(roles...))
	}
	g.GET("/ping", func(c *gin.Context) {
		util.Success(c, util.GetUserFromContext(c).UserID)
	})
	return r
}

func token(t *testing.T, role model.UserRole, secret string, exp time.Duration) string {
	t.Helper()
	tok, err := util.GenerateJWT(5, role, "user@example.com", secret, exp)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + token(t, model.Admin, "another-secret-another-secret-xx", time.Hour), http.StatusUnauthorized},
		{"expired", "Bearer " + token(t, model.Admin, testSecret, -time.Minute), http.StatusUnauthorized},
		{"valid", "Bearer " + token(t, model.Student, testSecret, time.Hour), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protectedRouter().ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	r := protectedRouter(model.Admin)

	tests := []struct {
		role   model.UserRole
		status int
	}{
		{model.Admin, http.StatusOK},
		{model.Teacher, http.StatusForbidden},
		{model.Student, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Authorization", "Bearer "+token(t, tt.role, testSecret, time.Hour))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(util.RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
