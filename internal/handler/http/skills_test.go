package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/skillfade/internal/decay"
	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/service"
	"github.com/MKhiriev/skillfade/internal/store"
	"github.com/MKhiriev/skillfade/internal/utils"
	"github.com/MKhiriev/skillfade/models"
)

// ─────────────────────────────────────────────
// Mock SkillService
// ─────────────────────────────────────────────

type mockSkillService struct {
	saveSkillFn   func(ctx context.Context, skill models.Skill) (models.Skill, error)
	listSkillsFn  func(ctx context.Context, userID int64) ([]models.Skill, error)
	getSkillFn    func(ctx context.Context, userID int64, name string) (models.Skill, error)
	deleteSkillFn func(ctx context.Context, userID int64, name string) error
	buildReportFn func(ctx context.Context, userID int64, name string) (models.SkillReport, error)
}

func (m *mockSkillService) SaveSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	return m.saveSkillFn(ctx, skill)
}

func (m *mockSkillService) ListSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	return m.listSkillsFn(ctx, userID)
}

func (m *mockSkillService) GetSkill(ctx context.Context, userID int64, name string) (models.Skill, error) {
	return m.getSkillFn(ctx, userID, name)
}

func (m *mockSkillService) DeleteSkill(ctx context.Context, userID int64, name string) error {
	return m.deleteSkillFn(ctx, userID, name)
}

func (m *mockSkillService) BuildReport(ctx context.Context, userID int64, name string) (models.SkillReport, error) {
	return m.buildReportFn(ctx, userID, name)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithSkills(t *testing.T, skills service.SkillService) *Handler {
	t.Helper()
	svcs := &service.Services{
		SkillService: skills,
	}
	return NewHandler(svcs, logger.Nop())
}

// authedRequest builds a request carrying the given userID plus an optional
// chi "name" URL parameter, the way requests arrive after routing and the
// auth middleware.
func authedRequest(method, target string, body string, userID int64, name string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	if name != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("name", name)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// saveSkill
// ─────────────────────────────────────────────

func TestSaveSkillHandler_Success(t *testing.T) {
	var received models.Skill
	skills := &mockSkillService{
		saveSkillFn: func(_ context.Context, skill models.Skill) (models.Skill, error) {
			received = skill
			skill.SkillID = 5
			return skill, nil
		},
	}

	h := newHandlerWithSkills(t, skills)
	body := `{"name":"Python","last_practice":"2026-08-20","decay_rate":0.04}`
	req := authedRequest(http.MethodPost, "/api/skills/", body, 3, "")
	rec := httptest.NewRecorder()

	h.saveSkill(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), received.UserID, "userID must come from the token, not the body")

	var saved models.Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "Python", saved.Name)
}

func TestSaveSkillHandler_BodyUserIDIsIgnored(t *testing.T) {
	var received models.Skill
	skills := &mockSkillService{
		saveSkillFn: func(_ context.Context, skill models.Skill) (models.Skill, error) {
			received = skill
			return skill, nil
		},
	}

	h := newHandlerWithSkills(t, skills)
	body := `{"user_id":999,"name":"Python","last_practice":"2026-08-20","decay_rate":0.04}`
	req := authedRequest(http.MethodPost, "/api/skills/", body, 3, "")
	rec := httptest.NewRecorder()

	h.saveSkill(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), received.UserID)
}

func TestSaveSkillHandler_ValidationError(t *testing.T) {
	skills := &mockSkillService{
		saveSkillFn: func(_ context.Context, _ models.Skill) (models.Skill, error) {
			return models.Skill{}, service.ErrValidationDecayRateBounds
		},
	}

	h := newHandlerWithSkills(t, skills)
	body := `{"name":"Python","last_practice":"2026-08-20","decay_rate":0.5}`
	req := authedRequest(http.MethodPost, "/api/skills/", body, 3, "")
	rec := httptest.NewRecorder()

	h.saveSkill(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveSkillHandler_NoUserIDInContext(t *testing.T) {
	h := newHandlerWithSkills(t, &mockSkillService{})
	req := httptest.NewRequest(http.MethodPost, "/api/skills/", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.saveSkill(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// listSkills
// ─────────────────────────────────────────────

func TestListSkillsHandler_Success(t *testing.T) {
	skills := &mockSkillService{
		listSkillsFn: func(_ context.Context, userID int64) ([]models.Skill, error) {
			return []models.Skill{
				{UserID: userID, Name: "Go"},
				{UserID: userID, Name: "Python"},
			}, nil
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodGet, "/api/skills/", "", 3, "")
	rec := httptest.NewRecorder()

	h.listSkills(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestListSkillsHandler_EmptyIsOK(t *testing.T) {
	skills := &mockSkillService{
		listSkillsFn: func(_ context.Context, _ int64) ([]models.Skill, error) {
			return []models.Skill{}, nil
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodGet, "/api/skills/", "", 3, "")
	rec := httptest.NewRecorder()

	h.listSkills(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListSkillsHandler_ServiceError(t *testing.T) {
	skills := &mockSkillService{
		listSkillsFn: func(_ context.Context, _ int64) ([]models.Skill, error) {
			return nil, errors.New("db down")
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodGet, "/api/skills/", "", 3, "")
	rec := httptest.NewRecorder()

	h.listSkills(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// getSkill
// ─────────────────────────────────────────────

func TestGetSkillHandler_Success(t *testing.T) {
	skills := &mockSkillService{
		getSkillFn: func(_ context.Context, userID int64, name string) (models.Skill, error) {
			return models.Skill{UserID: userID, Name: name, DecayRate: 0.04}, nil
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodGet, "/api/skills/Python", "", 3, "Python")
	rec := httptest.NewRecorder()

	h.getSkill(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var skill models.Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skill))
	assert.Equal(t, "Python", skill.Name)
}

func TestGetSkillHandler_NotFound(t *testing.T) {
	skills := &mockSkillService{
		getSkillFn: func(_ context.Context, _ int64, _ string) (models.Skill, error) {
			return models.Skill{}, store.ErrSkillNotFound
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodGet, "/api/skills/Rust", "", 3, "Rust")
	rec := httptest.NewRecorder()

	h.getSkill(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// deleteSkill
// ─────────────────────────────────────────────

func TestDeleteSkillHandler_ReturnsNoContent(t *testing.T) {
	skills := &mockSkillService{
		deleteSkillFn: func(_ context.Context, _ int64, _ string) error {
			return nil
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodDelete, "/api/skills/Python", "", 3, "Python")
	rec := httptest.NewRecorder()

	h.deleteSkill(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// Deleting a skill that was never registered is indistinguishable from a
// successful delete at the HTTP level.
func TestDeleteSkillHandler_AbsentSkillStillNoContent(t *testing.T) {
	skills := &mockSkillService{
		deleteSkillFn: func(_ context.Context, _ int64, _ string) error {
			return nil
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodDelete, "/api/skills/NeverExisted", "", 3, "NeverExisted")
	rec := httptest.NewRecorder()

	h.deleteSkill(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteSkillHandler_ServiceError(t *testing.T) {
	skills := &mockSkillService{
		deleteSkillFn: func(_ context.Context, _ int64, _ string) error {
			return errors.New("db down")
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodDelete, "/api/skills/Python", "", 3, "Python")
	rec := httptest.NewRecorder()

	h.deleteSkill(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// skillReport
// ─────────────────────────────────────────────

func TestSkillReportHandler_Success(t *testing.T) {
	skills := &mockSkillService{
		buildReportFn: func(_ context.Context, userID int64, name string) (models.SkillReport, error) {
			return models.SkillReport{
				Skill: models.Skill{
					UserID:       userID,
					Name:         name,
					LastPractice: models.NewDate(2026, time.August, 21),
					DecayRate:    0.04,
				},
				DaysElapsed: 10,
				Score:       67.03,
				Status:      decay.StatusNeedsAttention,
				Advice:      decay.AdviceNeedsAttention,
				Curve:       decay.Curve(0.04, 10),
				Stale:       true,
				Critical:    false,
				Adjacent:    []string{"Automation", "Data Analysis", "Machine Learning"},
			}, nil
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodGet, "/api/skills/Python/report", "", 3, "Python")
	rec := httptest.NewRecorder()

	h.skillReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report models.SkillReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 67.03, report.Score)
	assert.Equal(t, decay.StatusNeedsAttention, report.Status)
	assert.Len(t, report.Curve, 11)
	assert.True(t, report.Stale)
}

func TestSkillReportHandler_NotFound(t *testing.T) {
	skills := &mockSkillService{
		buildReportFn: func(_ context.Context, _ int64, _ string) (models.SkillReport, error) {
			return models.SkillReport{}, store.ErrSkillNotFound
		},
	}

	h := newHandlerWithSkills(t, skills)
	req := authedRequest(http.MethodGet, "/api/skills/Ghost/report", "", 3, "Ghost")
	rec := httptest.NewRecorder()

	h.skillReport(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
