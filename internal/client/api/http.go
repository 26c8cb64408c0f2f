package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nidhi8595/DevTinder3/internal/client/models"
	"github.com/Nidhi8595/DevTinder3/internal/logging"
)

// HTTPClient abstracts outbound HTTP execution; *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPGateway talks to the backend's /api JSON endpoints.
type HTTPGateway struct {
	baseURL string
	client  HTTPClient
	log     logging.Logger
}

// NewHTTPGateway builds a gateway for the given base URL, e.g.
// "http://localhost:8000". The /api prefix is added per request.
func NewHTTPGateway(baseURL string, timeout time.Duration, log logging.Logger) *HTTPGateway {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout, Transport: transport},
		log:     log,
	}
}

// NewHTTPGatewayWithClient is the test seam: it accepts any HTTPClient.
func NewHTTPGatewayWithClient(baseURL string, client HTTPClient, log logging.Logger) *HTTPGateway {
	return &HTTPGateway{baseURL: strings.TrimRight(baseURL, "/"), client: client, log: log}
}

// tokenResponse mirrors the backend's TokenResponse schema.
type tokenResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        json.RawMessage `json:"user"`
}

// errorResponse mirrors the backend's rejection payload.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (g *HTTPGateway) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	return g.authenticate(ctx, "/auth/login", body)
}

func (g *HTTPGateway) Signup(ctx context.Context, name, email, password string) (*Session, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	return g.authenticate(ctx, "/auth/signup", body)
}

func (g *HTTPGateway) authenticate(ctx context.Context, path string, body any) (*Session, error) {
	raw, err := g.do(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("token response without access_token: %w", models.ErrInvalidShape)
	}
	user, err := models.DecodeUser(tr.User)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: tr.AccessToken, User: user}, nil
}

func (g *HTTPGateway) Profile(ctx context.Context, token string) (*models.User, error) {
	raw, err := g.do(ctx, http.MethodGet, "/profile", token, nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeUser(raw)
}

func (g *HTTPGateway) UpdateProfile(ctx context.Context, token string, p models.ProfileUpdate) (*models.User, error) {
	raw, err := g.do(ctx, http.MethodPut, "/profile", token, p)
	if err != nil {
		return nil, err
	}
	return models.DecodeUser(raw)
}

func (g *HTTPGateway) Feed(ctx context.Context, token string) ([]*models.User, error) {
	return g.userList(ctx, "/feed", token)
}

func (g *HTTPGateway) Connections(ctx context.Context, token string) ([]*models.User, error) {
	return g.userList(ctx, "/connections", token)
}

func (g *HTTPGateway) userList(ctx context.Context, path, token string) ([]*models.User, error) {
	raw, err := g.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding user list: %w", err)
	}
	users := make([]*models.User, 0, len(items))
	for _, item := range items {
		u, err := models.DecodeUser(item)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// do sends one JSON request to the /api prefix and returns the raw body of a
// 2xx response. Transport-level failures map to ErrUnavailable; error
// statuses map to *APIError carrying the server's detail message.
func (g *HTTPGateway) do(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	url := g.baseURL + "/api" + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := decodeDetail(data)
		g.log.Debug(ctx, "request rejected",
			"method", method, "path", path, "request_id", reqID, "status", resp.StatusCode, "detail", detail)
		return nil, &APIError{Status: resp.StatusCode, Detail: detail}
	}
	return data, nil
}

func decodeDetail(data []byte) string {
	var er errorResponse
	if err := json.Unmarshal(data, &er); err != nil || er.Detail == "" {
		return "request failed"
	}
	return er.Detail
}
