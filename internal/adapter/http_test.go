// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/skillfade/internal/config"
	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/utils"
	"github.com/MKhiriev/skillfade/models"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	adapterCfg := config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// signedTokenFor mints a real JWT so that the adapter can extract the
// user ID from its subject claim.
func signedTokenFor(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("skillfade-test", userID, time.Hour, "test-sign-key")
	require.NoError(t, err)
	return token.SignedString
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"full url", "http://localhost:8080", "http://localhost:8080", false},
		{"bare host gets scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash trimmed", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty address", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	user := models.User{Username: "alice", Password: "pw"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+signedTokenFor(t, 1))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, int64(1), got.UserID)
	assert.NotEmpty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("username already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+signedTokenFor(t, 7))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.NotEmpty(t, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid username/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── SaveSkill ────────────────────────────────────────────────────────────────

func TestSaveSkill_SendsBearerTokenAndBody(t *testing.T) {
	skill := models.Skill{
		Name:         "Python",
		LastPractice: models.NewDate(2026, time.August, 20),
		DecayRate:    0.04,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/skills/", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		var received models.Skill
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "Python", received.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	saved, err := a.SaveSkill(context.Background(), skill)

	require.NoError(t, err)
	assert.Equal(t, "Python", saved.Name)
}

func TestSaveSkill_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("decay rate out of bounds"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.SaveSkill(context.Background(), models.Skill{Name: "Python", DecayRate: 0.5})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── ListSkills / GetSkill ────────────────────────────────────────────────────

func TestListSkills_Success(t *testing.T) {
	skills := []models.Skill{
		{Name: "Go", DecayRate: 0.02},
		{Name: "Python", DecayRate: 0.04},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/skills/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(skills)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	got, err := a.ListSkills(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Go", got[0].Name)
}

func TestGetSkill_NameIsPathEscaped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/skills/Machine Learning", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Skill{Name: "Machine Learning"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	got, err := a.GetSkill(context.Background(), "Machine Learning")

	require.NoError(t, err)
	assert.Equal(t, "Machine Learning", got.Name)
}

func TestGetSkill_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("skill not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.GetSkill(context.Background(), "Rust")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── DeleteSkill ──────────────────────────────────────────────────────────────

func TestDeleteSkill_NoContentIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	err := a.DeleteSkill(context.Background(), "Python")
	assert.NoError(t, err)
}

// ── GetReport ────────────────────────────────────────────────────────────────

func TestGetReport_Success(t *testing.T) {
	report := models.SkillReport{
		Skill:       models.Skill{Name: "Python", DecayRate: 0.04},
		DaysElapsed: 10,
		Score:       67.03,
		Status:      "Needs attention",
		Advice:      "Practice 3 times a week",
		Stale:       true,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/skills/Python/report", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(report)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	got, err := a.GetReport(context.Background(), "Python")

	require.NoError(t, err)
	assert.Equal(t, 67.03, got.Score)
	assert.Equal(t, "Needs attention", got.Status)
	assert.True(t, got.Stale)
}

// ── Token handling ───────────────────────────────────────────────────────────

func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")

	a.SetToken("  my-token  ")
	assert.Equal(t, "my-token", a.Token())
}

func TestAuthedRequest_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Skill{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListSkills(context.Background())

	assert.NoError(t, err)
}
