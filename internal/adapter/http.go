package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/skillfade/internal/config"
	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/utils"
	"github.com/MKhiriev/skillfade/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Username: user.Username}, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Username: user.Username}, nil
}

// SaveSkill implements [ServerAdapter]. It POSTs the skill payload to
// POST /api/skills/ and returns the saved record as echoed by the server.
func (h *httpServerAdapter) SaveSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	var saved models.Skill

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(skill).
		SetResult(&saved).
		Post("/api/skills/")
	if err != nil {
		return models.Skill{}, fmt.Errorf("save skill request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Skill{}, err
	}

	return saved, nil
}

// ListSkills implements [ServerAdapter]. It GETs /api/skills/ and decodes the
// response into a slice of [models.Skill].
func (h *httpServerAdapter) ListSkills(ctx context.Context) ([]models.Skill, error) {
	resp, err := h.authedRequest(ctx).Get("/api/skills/")
	if err != nil {
		return nil, fmt.Errorf("list skills request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var skills []models.Skill
	if err = json.Unmarshal(resp.Body(), &skills); err != nil {
		return nil, fmt.Errorf("decode list skills response: %w", err)
	}

	return skills, nil
}

// GetSkill implements [ServerAdapter]. It GETs /api/skills/{name}.
func (h *httpServerAdapter) GetSkill(ctx context.Context, name string) (models.Skill, error) {
	resp, err := h.authedRequest(ctx).Get("/api/skills/" + url.PathEscape(name))
	if err != nil {
		return models.Skill{}, fmt.Errorf("get skill request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Skill{}, err
	}

	var skill models.Skill
	if err = json.Unmarshal(resp.Body(), &skill); err != nil {
		return models.Skill{}, fmt.Errorf("decode get skill response: %w", err)
	}

	return skill, nil
}

// DeleteSkill implements [ServerAdapter]. It sends DELETE /api/skills/{name}.
// The server answers 204 whether or not the skill existed.
func (h *httpServerAdapter) DeleteSkill(ctx context.Context, name string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/skills/" + url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("delete skill request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetReport implements [ServerAdapter]. It GETs /api/skills/{name}/report and
// decodes the full dashboard report.
func (h *httpServerAdapter) GetReport(ctx context.Context, name string) (models.SkillReport, error) {
	resp, err := h.authedRequest(ctx).Get("/api/skills/" + url.PathEscape(name) + "/report")
	if err != nil {
		return models.SkillReport{}, fmt.Errorf("get report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SkillReport{}, err
	}

	var report models.SkillReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.SkillReport{}, fmt.Errorf("decode report response: %w", err)
	}

	return report, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
