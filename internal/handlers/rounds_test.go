package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golftracker/internal/models"
	"golftracker/internal/service"
)

func testUser() *models.User {
	return &models.User{ID: 5, Username: "diana"}
}

func TestCreateRound(t *testing.T) {
	created := models.GolfRound{
		ID:            11,
		UserID:        5,
		CourseName:    "Pebble Beach",
		Score:         82,
		TotalFairways: 14,
		TotalGreens:   18,
		Date:          time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC),
	}
	rounds := &mockRounds{created: created}
	s, _ := authedService(testUser())
	s.Rounds = rounds
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"course_name":"Pebble Beach","score":82,"fairways_hit":9,"greens_in_regulation":7,"total_putts":31}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rounds", body)
	req.Header = authHeader("tok")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if rounds.lastUserID != 5 {
		t.Fatalf("owner id from token context: got %d, want 5", rounds.lastUserID)
	}
	if rounds.lastParams.CourseName != "Pebble Beach" || rounds.lastParams.Score != 82 {
		t.Fatalf("unexpected params: %+v", rounds.lastParams)
	}
	if rounds.lastParams.TotalFairways != nil || rounds.lastParams.TotalGreens != nil {
		t.Fatalf("absent totals should stay nil: %+v", rounds.lastParams)
	}

	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int(m["id"].(float64)) != 11 {
		t.Fatalf("expected created round in body, got %v", m)
	}
}

func TestCreateRound_InvalidBody(t *testing.T) {
	s, _ := authedService(testUser())
	s.Rounds = &mockRounds{}
	r := newTestRouter(s)

	// course_name is required
	body := bytes.NewBufferString(`{"score":82}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rounds", body)
	req.Header = authHeader("tok")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400; body=%s", w.Code, w.Body.String())
	}
}

func TestListRounds_PassesPagination(t *testing.T) {
	rounds := &mockRounds{list: []models.GolfRound{
		{ID: 2, UserID: 5, CourseName: "Links North", Score: 79},
	}}
	s, _ := authedService(testUser())
	s.Rounds = rounds
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rounds?skip=1&limit=1", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if rounds.lastPage.Skip != 1 || rounds.lastPage.Limit != 1 {
		t.Fatalf("pagination: got %+v, want skip=1 limit=1", rounds.lastPage)
	}

	var out []models.GolfRound
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("unexpected list: %+v", out)
	}
}

func TestListRounds_EmptyIsJSONArray(t *testing.T) {
	s, _ := authedService(testUser())
	s.Rounds = &mockRounds{list: []models.GolfRound{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rounds", nil)
	req.Header = authHeader("tok")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestGetRound(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		rounds := &mockRounds{single: models.GolfRound{ID: 9, UserID: 5, CourseName: "Old Course", Score: 88}}
		s, _ := authedService(testUser())
		s.Rounds = rounds
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/rounds/9", nil)
		req.Header = authHeader("tok")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if rounds.lastUserID != 5 || rounds.lastRound != 9 {
			t.Fatalf("lookup got (%d, %d), want (5, 9)", rounds.lastUserID, rounds.lastRound)
		}
	})

	t.Run("not found or foreign round", func(t *testing.T) {
		rounds := &mockRounds{getErr: service.ErrRoundNotFound}
		s, _ := authedService(testUser())
		s.Rounds = rounds
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/rounds/9", nil)
		req.Header = authHeader("tok")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, want 404; body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		s, _ := authedService(testUser())
		s.Rounds = &mockRounds{}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/rounds/abc", nil)
		req.Header = authHeader("tok")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, want 400; body=%s", w.Code, w.Body.String())
		}
	})
}

func TestDeleteRound(t *testing.T) {
	t.Run("success is 204 with empty body", func(t *testing.T) {
		rounds := &mockRounds{}
		s, _ := authedService(testUser())
		s.Rounds = rounds
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/rounds/9", nil)
		req.Header = authHeader("tok")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("status=%d, want 204; body=%s", w.Code, w.Body.String())
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %s", w.Body.String())
		}
		if rounds.deleteCalls != 1 || rounds.lastRound != 9 {
			t.Fatalf("delete calls=%d round=%d", rounds.deleteCalls, rounds.lastRound)
		}
	})

	t.Run("second delete is 404", func(t *testing.T) {
		rounds := &mockRounds{deleteErr: service.ErrRoundNotFound}
		s, _ := authedService(testUser())
		s.Rounds = rounds
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/rounds/9", nil)
		req.Header = authHeader("tok")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, want 404; body=%s", w.Code, w.Body.String())
		}
	})
}

func TestRoundEndpoints_RequireAuth(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseErr: service.ErrInvalidToken}, Rounds: &mockRounds{}}
	r := newTestRouter(s)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/rounds"},
		{http.MethodGet, "/api/rounds"},
		{http.MethodGet, "/api/rounds/1"},
		{http.MethodDelete, "/api/rounds/1"},
		{http.MethodGet, "/api/stats/ytd"},
		{http.MethodGet, "/api/me"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.Header = authHeader("bad")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status=%d, want 401", tc.method, tc.path, w.Code)
		}
	}
}
