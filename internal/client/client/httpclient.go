package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/devauth/internal/client/models"
	"github.com/dmitrijs2005/devauth/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/users/register", req, "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login stores the returned bearer token for subsequent calls.
func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", models.LoginRequest{Email: email, Password: password}, "", &resp); err != nil {
		return err
	}
	if !resp.Success || resp.Token == "" {
		return fmt.Errorf("%w: empty token in login response", ErrUnavailable)
	}

	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()
	return nil
}

func (c *HTTPClient) Current(ctx context.Context) (*models.Identity, error) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token == "" {
		return nil, ErrNotLoggedIn
	}

	var id models.Identity
	if err := c.do(ctx, http.MethodGet, "/api/users/current", nil, token, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *HTTPClient) Logout() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *HTTPClient) LoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, "", nil)
}

// do sends body as JSON and decodes a 200 response into out. token is the
// full Authorization header value ("Bearer ...").
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, token string, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		fields := common.FieldErrors{}
		if err := json.Unmarshal(data, &fields); err != nil || len(fields) == 0 {
			return ErrValidation
		}
		return errors.Join(ErrValidation, fields)
	default:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
}
