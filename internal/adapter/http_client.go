package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kirubhel/redcross-client/internal/config"
	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter]
// from the client adapter config. Zero-value settings get conservative
// defaults so a bare config still produces a working adapter.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) ServerAdapter {
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:4000"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ServerURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: log}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var body struct {
		Token string `json:"token"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Token{}, fmt.Errorf("decode login response: %w", err)
	}
	if body.Token == "" {
		return models.Token{}, errors.New("login response carries no token")
	}

	// The user id rides in the JWT subject; it is informational here, so a
	// token without a numeric subject is still accepted.
	userID, _ := parseUserIDFromJWT(body.Token)

	h.SetToken(body.Token)
	return models.Token{SignedString: body.Token, UserID: userID}, nil
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Register(ctx context.Context, data json.RawMessage) error {
	return h.replay(ctx, http.MethodPost, "/api/auth/register", data)
}

func (h *httpServerAdapter) CreateActivity(ctx context.Context, data json.RawMessage) error {
	return h.replay(ctx, http.MethodPost, "/api/activities", data)
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, data json.RawMessage) error {
	return h.replay(ctx, http.MethodPatch, "/api/auth/profile", data)
}

func (h *httpServerAdapter) CreatePayment(ctx context.Context, data json.RawMessage) error {
	return h.replay(ctx, http.MethodPost, "/api/payments", data)
}

// replay posts a queued payload verbatim to the given endpoint.
func (h *httpServerAdapter) replay(ctx context.Context, method, path string, data json.RawMessage) error {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(data))

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	message := serverErrorMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusUnprocessableEntity {
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// serverErrorMessage extracts the {"error": "..."} body the remote service
// sends on failures; any other body shape is returned trimmed as-is.
func serverErrorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	return strings.TrimSpace(string(body))
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
