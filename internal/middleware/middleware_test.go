package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/models/dto"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/app/services"
	"github.com/placementcell/portal/internal/pkg/apperrors"
	"github.com/placementcell/portal/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubStudentStore serves a single student by ID.
type stubStudentStore struct {
	student *models.Student
}

func (s stubStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if s.student != nil && s.student.ID == id {
		return s.student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s stubStudentStore) GetByEmail(_ context.Context, _ string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (stubStudentStore) Create(_ context.Context, _ *models.Student) (int64, error) { return 0, nil }
func (stubStudentStore) UpdateProfile(_ context.Context, _ *models.Student) error   { return nil }
func (stubStudentStore) UpdateStatus(_ context.Context, _ int64, _ models.AccountStatus) error {
	return nil
}
func (stubStudentStore) MarkPlaced(_ context.Context, _ pgx.Tx, _, _ int64, _ *float64) error {
	return nil
}
func (stubStudentStore) List(_ context.Context, _ repositories.StudentFilter, _, _ int) ([]models.Student, int64, error) {
	return nil, 0, nil
}
func (stubStudentStore) CountActive(_ context.Context) (int64, error) { return 0, nil }
func (stubStudentStore) CountPlaced(_ context.Context) (int64, error) { return 0, nil }

type stubAdminStore struct{}

func (stubAdminStore) GetByID(_ context.Context, _ int64) (*models.AdminUser, error) {
	return nil, apperrors.ErrAdminNotFound
}
func (stubAdminStore) GetByEmail(_ context.Context, _ string) (*models.AdminUser, error) {
	return nil, apperrors.ErrAdminNotFound
}
func (stubAdminStore) UpdateLastLogin(_ context.Context, _ int64) error { return nil }

func testAuthSetup(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()

	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "middleware-test-secret",
		TokenExp:  time.Hour,
	})
	store := stubStudentStore{student: &models.Student{
		ID:     7,
		Email:  "asha@example.edu",
		Status: models.StatusActive,
	}}
	authSvc := services.NewAuthService(store, stubAdminStore{}, jwtSvc)

	token, err := jwtSvc.Issue(7, "student")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return NewAuthMiddleware(authSvc), token
}

func perform(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	mw, token := testAuthSetup(t)

	router := gin.New()
	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": identity.RoleTag()})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := perform(router, http.MethodGet, "/protected", headers)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.status, w.Body.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	mw, token := testAuthSetup(t)

	router := gin.New()
	router.GET("/jobs", mw.OptionalAuth(), func(c *gin.Context) {
		_, authed := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})

	w := perform(router, http.MethodGet, "/jobs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous request rejected: %d", w.Code)
	}
	var body struct {
		Authed bool `json:"authed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Authed {
		t.Error("anonymous caller must not carry an identity")
	}

	w = perform(router, http.MethodGet, "/jobs", map[string]string{"Authorization": "Bearer garbage"})
	if w.Code != http.StatusOK {
		t.Fatalf("bad token must not reject an optional route: %d", w.Code)
	}

	w = perform(router, http.MethodGet, "/jobs", map[string]string{"Authorization": "Bearer " + token})
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Authed {
		t.Error("valid token must attach an identity")
	}
}

func TestRequireRoles(t *testing.T) {
	mw, token := testAuthSetup(t)

	router := gin.New()
	admin := router.Group("/admin", mw.RequireAuth(), RequireAdmin())
	admin.GET("/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })

	student := router.Group("/students", mw.RequireAuth(), RequireRoles("student"))
	student.GET("/profile", func(c *gin.Context) { c.Status(http.StatusOK) })

	headers := map[string]string{"Authorization": "Bearer " + token}

	if w := perform(router, http.MethodGet, "/admin/dashboard", headers); w.Code != http.StatusForbidden {
		t.Errorf("student on admin route: status = %d, want 403", w.Code)
	}
	if w := perform(router, http.MethodGet, "/students/profile", headers); w.Code != http.StatusOK {
		t.Errorf("student on student route: status = %d, want 200", w.Code)
	}
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive account", apperrors.ErrAccountInactive, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"job missing", apperrors.ErrJobNotFound, http.StatusNotFound},
		{"duplicate identity", apperrors.ErrDuplicateIdentity, http.StatusBadRequest},
		{"duplicate application", apperrors.ErrDuplicateApplication, http.StatusBadRequest},
		{"deadline passed", apperrors.ErrDeadlinePassed, http.StatusBadRequest},
		{"wrapped sentinel", apperrors.NewCustomError(apperrors.ErrInvalidStatus, "bad move"), http.StatusBadRequest},
		{"unknown error", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err) })

			w := perform(router, http.MethodGet, "/", nil)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}

			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success {
				t.Error("error envelope must report success=false")
			}
			if tt.status == http.StatusInternalServerError && body.Message != "internal server error" {
				t.Errorf("internal errors must not leak details, got %q", body.Message)
			}
		})
	}
}

func TestHandleAPIErrorFieldViolations(t *testing.T) {
	verr := &apperrors.ValidationError{}
	verr.Add("email", "must be a valid email address")
	verr.Add("phone", "must be 10 digits")

	router := gin.New()
	router.POST("/", func(c *gin.Context) { HandleAPIError(c, verr) })

	w := perform(router, http.MethodPost, "/", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(body.Errors))
	}
	if body.Errors[0].Field != "email" {
		t.Errorf("field = %q", body.Errors[0].Field)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)

	router := gin.New()
	router.GET("/", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		if code := send("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d within burst: status = %d", i+1, code)
		}
	}
	if code := send("10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Fatalf("request over burst: status = %d, want 429", code)
	}

	// A different client keeps its own bucket.
	if code := send("10.0.0.2:5000"); code != http.StatusOK {
		t.Fatalf("second client: status = %d, want 200", code)
	}
}
