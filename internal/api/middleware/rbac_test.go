package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

func runRBAC(t *testing.T, role string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	handler := RequireRole(domain.RoleEmployer, domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestRequireRole_Allowed(t *testing.T) {
	for _, role := range []string{"employer", "admin"} {
		if rec := runRBAC(t, role); rec.Code != http.StatusCreated {
			t.Fatalf("role %s: expected 201, got %d", role, rec.Code)
		}
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	for _, role := range []string{"jobseeker", "unknown", ""} {
		rec := runRBAC(t, role)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("role %q: expected 403, got %d", role, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "forbidden") {
			t.Fatalf("role %q: unexpected body %s", role, rec.Body.String())
		}
	}
}
