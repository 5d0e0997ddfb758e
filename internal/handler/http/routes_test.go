package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/service"
	"github.com/MKhiriev/skillfade/models"
)

// fullRouter wires a complete chi router with both services mocked out.
func fullRouter(t *testing.T, auth service.AuthService, skills service.SkillService) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{
		AuthService:  auth,
		SkillService: skills,
	}, logger.Nop())
	return h.Init()
}

func TestRoutes_RegisterIsPublic(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("tok"), nil
		},
	}
	router := fullRouter(t, auth, &mockSkillService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"username":"alice","password":"pw"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_SkillsRequireAuth(t *testing.T) {
	router := fullRouter(t, &mockAuthService{}, &mockSkillService{})

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/skills/"},
		{http.MethodPost, "/api/skills/"},
		{http.MethodGet, "/api/skills/Python"},
		{http.MethodDelete, "/api/skills/Python"},
		{http.MethodGet, "/api/skills/Python/report"},
	}

	for _, tt := range targets {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_AuthorizedSkillFlow(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 9}, nil
		},
	}
	skills := &mockSkillService{
		getSkillFn: func(_ context.Context, userID int64, name string) (models.Skill, error) {
			return models.Skill{UserID: userID, Name: name, DecayRate: 0.02}, nil
		},
	}
	router := fullRouter(t, auth, skills)

	req := httptest.NewRequest(http.MethodGet, "/api/skills/Python", nil)
	req.Header.Set("Authorization", "Bearer good.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Python"`)
}

func TestRoutes_TraceIDHeaderOnEveryResponse(t *testing.T) {
	router := fullRouter(t, &mockAuthService{}, &mockSkillService{})

	req := httptest.NewRequest(http.MethodGet, "/api/skills/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
