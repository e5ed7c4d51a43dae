package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"institute_backend/internal/config"
	"institute_backend/internal/controller"
	"institute_backend/internal/model"
	"institute_backend/internal/resume"
	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type emptySnapshots struct{}

func (emptySnapshots) StudentSnapshot(ctx context.Context, scope model.ReportScope) (*model.StudentSnapshot, error) {
	return &model.StudentSnapshot{}, nil
}

func (emptySnapshots) TeacherSnapshot(ctx context.Context, scope model.ReportScope) (*model.TeacherSnapshot, error) {
	return &model.TeacherSnapshot{}, nil
}

func (emptySnapshots) CourseSnapshot(ctx context.Context, scope model.ReportScope) (*model.CourseSnapshot, error) {
	return &model.CourseSnapshot{}, nil
}

func (emptySnapshots) AttendanceSnapshot(ctx context.Context, scope model.ReportScope) (*model.AttendanceSnapshot, error) {
	return &model.AttendanceSnapshot{}, nil
}

func (emptySnapshots) FeeSnapshot(ctx context.Context, scope model.ReportScope) (*model.FeeSnapshot, error) {
	return &model.FeeSnapshot{}, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}
	resumeSvc := service.NewResumeService(config.ResumeConfig{}, nil, nil, nil)

	c := &controllers{
		health: controller.NewHealthController(nil, resumeSvc.Vocabulary),
		report: controller.NewReportController(service.NewReportService(emptySnapshots{})),
		resume: controller.NewResumeController(resumeSvc),
	}

	a := &App{Config: cfg}
	r := gin.New()
	a.registerRoutes(r, c, cfg)
	return r
}

func bearer(t *testing.T, role model.UserRole) string {
	t.Helper()
	tok, err := util.GenerateJWT(1, role, "someone@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestRouteAccess(t *testing.T) {
	r := testRouter()

	tests := []struct {
		name   string
		path   string
		role   model.UserRole
		status int
	}{
		{"health is public", "/api/health", "", http.StatusOK},
		{"metrics is public", "/metrics", "", http.StatusOK},
		{"reports need a token", "/api/reports/students", "", http.StatusUnauthorized},
		{"admin reads student report", "/api/reports/students", model.Admin, http.StatusOK},
		{"admin reads fee report", "/api/reports/fees?department_id=1", model.Admin, http.StatusOK},
		{"teacher cannot read reports", "/api/reports/teachers", model.Teacher, http.StatusForbidden},
		{"student cannot read all fees", "/api/reports/fees", model.Student, http.StatusForbidden},
		{"student reads own attendance", "/api/reports/me/attendance", model.Student, http.StatusOK},
		{"admin has no own attendance", "/api/reports/me/attendance", model.Admin, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.role != "" {
				req.Header.Set("Authorization", bearer(t, tt.role))
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestResumeRouteRequiresToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/resume/analyze", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", nil)
	req.Header.Set("Authorization", bearer(t, model.Teacher))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoadVocabularyFallsBack(t *testing.T) {
	v := loadVocabulary("does/not/exist.yaml")
	assert.Equal(t, resume.DefaultVocabulary().Len(), v.Len())
}
