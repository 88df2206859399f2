package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/coverdesk/internal/model"
)

// --- モック定義 ---

type mockSessionReader struct {
	snapshotFn func() model.Session
}

func (m *mockSessionReader) Snapshot() model.Session {
	if m.snapshotFn != nil {
		return m.snapshotFn()
	}
	return model.Session{}
}

var _ SessionReader = (*mockSessionReader)(nil)

// --- テスト ---

func TestSessionMiddleware_Authenticated_PassesThrough(t *testing.T) {
	sessions := &mockSessionReader{
		snapshotFn: func() model.Session {
			return model.Session{
				User:            &model.UserProfile{ID: "u1"},
				IsAuthenticated: true,
			}
		},
	}

	called := false
	handler := NewSessionMiddleware(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if !called {
		t.Error("expected next handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestSessionMiddleware_Unauthenticated_Returns401(t *testing.T) {
	sessions := &mockSessionReader{
		snapshotFn: func() model.Session {
			return model.Session{IsAuthenticated: false}
		},
	}

	called := false
	handler := NewSessionMiddleware(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if called {
		t.Error("next handler should not be called for unauthenticated request")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Code != model.ErrCodeUnauthorized {
		t.Errorf("error code = %q, want %q", body.Code, model.ErrCodeUnauthorized)
	}
	if body.Category != "auth" {
		t.Errorf("category = %q, want %q", body.Category, "auth")
	}
}
