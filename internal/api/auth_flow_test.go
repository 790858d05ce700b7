package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/api/handler"
	"github.com/jobdeck/jobboard-api/internal/api/middleware"
	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/service"
)

type memoryUserRepo struct {
	users map[string]*domain.User
	next  int
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.next++
	created := *user
	created.ID = fmt.Sprintf("user-%d", r.next)
	stored := created
	r.users[created.Email] = &stored
	return &created, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// newAuthTestServer wires the real auth service, token service, middleware,
// and error handler over an in-memory user store.
func newAuthTestServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	tokenService := service.NewTokenService("test-secret", time.Hour)
	authService := service.NewAuthService(&memoryUserRepo{users: make(map[string]*domain.User)}, tokenService)
	authHandler := handler.NewAuthHandler(authService)

	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, middleware.Auth(tokenService))

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthFlow_SignupLoginProfile(t *testing.T) {
	e := newAuthTestServer()

	// Signup.
	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"name":"Alice","email":"Alice@Example.com","password":"secret1","role":"company"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "passwordHash") || strings.Contains(rec.Body.String(), "password_hash") {
		t.Fatalf("signup response leaks password hash: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"role":"employer"`) {
		t.Fatalf("company alias not normalized to employer: %s", rec.Body.String())
	}

	// Login with a different casing of the same email.
	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("login body not json: %v", err)
	}
	if loginResp.Token == "" {
		t.Fatalf("login returned no token: %s", rec.Body.String())
	}

	// Profile with the issued token.
	rec = doJSON(e, http.MethodGet, "/api/auth/profile", "", loginResp.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"alice@example.com"`) {
		t.Fatalf("unexpected profile body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "passwordHash") || strings.Contains(rec.Body.String(), "password_hash") {
		t.Fatalf("profile leaks password hash: %s", rec.Body.String())
	}
}

func TestAuthFlow_DuplicateSignup(t *testing.T) {
	e := newAuthTestServer()

	body := `{"name":"Bob","email":"bob@example.com","password":"secret1"}`
	if rec := doJSON(e, http.MethodPost, "/api/auth/signup", body, ""); rec.Code != http.StatusCreated {
		t.Fatalf("first signup failed: %d", rec.Code)
	}
	rec := doJSON(e, http.MethodPost, "/api/auth/signup", body, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "user already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthFlow_LoginFailuresAreUniform(t *testing.T) {
	e := newAuthTestServer()

	if rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"name":"Carol","email":"carol@example.com","password":"secret1"}`, ""); rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", rec.Code)
	}

	wrongPass := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"carol@example.com","password":"wrong12"}`, "")
	unknownEmail := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"secret1"}`, "")

	for _, rec := range []*httptest.ResponseRecorder{wrongPass, unknownEmail} {
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
		}
	}
	// Both failure modes must produce the same body.
	if wrongPass.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("login failures are distinguishable: %s vs %s", wrongPass.Body.String(), unknownEmail.Body.String())
	}
}

func TestAuthFlow_ProfileRequiresToken(t *testing.T) {
	e := newAuthTestServer()

	cases := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodGet, "/api/auth/profile", "", tc.token)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), "authentication required") {
				t.Fatalf("unexpected body: %s", rec.Body.String())
			}
		})
	}
}
