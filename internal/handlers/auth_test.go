package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golftracker/internal/models"
	"golftracker/internal/service"
)

func TestRegister(t *testing.T) {
	created := &models.User{ID: 42, Username: "u", CreatedAt: time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)}
	auth := &mockAuth{signUpUser: created}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"username":"u","password":"p"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int(m["id"].(float64)) != 42 {
		t.Fatalf("expected id=42, got %v", m["id"])
	}
	if m["username"] != "u" {
		t.Fatalf("expected username in response, got %v", m)
	}
	if _, ok := m["password_hash"]; ok {
		t.Fatalf("password hash leaked into response: %v", m)
	}
	if auth.lastSignUpUsername != "u" || auth.lastSignUpPassword != "p" {
		t.Fatalf("sign-up got (%q, %q)", auth.lastSignUpUsername, auth.lastSignUpPassword)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	auth := &mockAuth{signUpErr: service.ErrDuplicateUsername}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"username":"u","password":"p"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400; body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "username already registered" {
		t.Fatalf("unexpected error message: %q", out.Error)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(`{"username":"u"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400; body=%s", w.Code, w.Body.String())
	}
}

func TestLogin_FormEncoded(t *testing.T) {
	auth := &mockAuth{genTokenToken: "tok123"}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	form := url.Values{"username": {"u"}, "password": {"p"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.AccessToken != "tok123" || out.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", out)
	}
	if auth.lastGenUsername != "u" || auth.lastGenPassword != "p" {
		t.Fatalf("login got (%q, %q)", auth.lastGenUsername, auth.lastGenPassword)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	auth := &mockAuth{genTokenErr: service.ErrInvalidCredentials}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	form := url.Values{"username": {"u"}, "password": {"wrong"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401; body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "incorrect username or password" {
		t.Fatalf("unexpected error message: %q", out.Error)
	}
}

func TestMe(t *testing.T) {
	user := &models.User{ID: 7, Username: "diana", CreatedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)}
	s, auth := authedService(user)
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header = authHeader("good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("me status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["username"] != "diana" || int(m["id"].(float64)) != 7 {
		t.Fatalf("unexpected body: %v", m)
	}
	if auth.lastParseToken != "good-token" {
		t.Fatalf("ParseToken got %q", auth.lastParseToken)
	}
}
