package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/platform/auth"
)

func newTestHandler() *Handler {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewHandler(NewService(newMockRepo()), issuer)
}

func postJSON(h echo.HandlerFunc, path, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestRegisterHandler(t *testing.T) {
	h := newTestHandler()

	rec, err := postJSON(h.Register, "/api/auth/register",
		`{"name":"Dr. Sharma","role":"doctor","role_id":"DOC100","password":"s3cret"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Token == "" {
		t.Error("expected a token in the response")
	}
	if strings.Contains(string(body.User), "password") {
		t.Error("password hash must not serialize")
	}
}

func TestRegisterHandler_ContactDetails(t *testing.T) {
	h := newTestHandler()

	rec, err := postJSON(h.Register, "/api/auth/register",
		`{"name":"Dr. Sharma","role":"doctor","role_id":"DOC100","password":"s3cret","email":"sharma@hospital.com","phone":"9876543210"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.User == nil || body.User.Email == nil || *body.User.Email != "sharma@hospital.com" {
		t.Errorf("expected registered email in response, got %+v", body.User)
	}
	if body.User.Phone == nil || *body.User.Phone != "9876543210" {
		t.Errorf("expected registered phone in response, got %+v", body.User)
	}
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	h := newTestHandler()
	h.svc.Register(context.Background(), Registration{Name: "A", Role: RoleDoctor, RoleID: "DOC100", Password: "pw"})

	_, err := postJSON(h.Register, "/api/auth/register",
		`{"name":"B","role":"doctor","role_id":"DOC100","password":"pw"}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
	if httpErr.Message != "User with this ID already exists" {
		t.Errorf("unexpected message: %v", httpErr.Message)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h := newTestHandler()

	_, err := postJSON(h.Login, "/api/auth/login",
		`{"role":"doctor","role_id":"DOC999","password":"pw"}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
	if httpErr.Message != "Invalid credentials" {
		t.Errorf("unexpected message: %v", httpErr.Message)
	}
}

func TestLoginHandler(t *testing.T) {
	h := newTestHandler()
	h.svc.Register(context.Background(), Registration{Name: "Dr. Sharma", Role: RoleDoctor, RoleID: "DOC100", Password: "s3cret"})

	rec, err := postJSON(h.Login, "/api/auth/login",
		`{"role":"doctor","role_id":"DOC100","password":"s3cret"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Token == "" || body.User == nil || body.User.RoleID != "DOC100" {
		t.Errorf("unexpected login response: %+v", body)
	}
}
