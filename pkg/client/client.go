// Package client is the Go API client for the PawPoint backend. It attaches
// the session bearer token to every request, unwraps the response envelope,
// and clears the session whenever the backend answers 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// APIError is a normalized non-2xx response carrying the backend message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
}

// envelope mirrors the backend response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *Session

	Auth          *AuthAPI
	Pets          *PetsAPI
	Appointments  *AppointmentsAPI
	Treatments    *TreatmentsAPI
	Veterinarians *VeterinariansAPI
	Clinics       *ClinicsAPI
	Users         *UsersAPI
	Owners        *OwnersAPI
	Reports       *ReportsAPI
}

type Option func(*Client)

// WithHTTPClient injects a custom *http.Client, e.g. for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithStorage sets the session storage. Defaults to in-memory.
func WithStorage(storage Storage) Option {
	return func(c *Client) {
		c.session = NewSession(storage)
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.session == nil {
		c.session = NewSession(NewMemoryStorage())
	}

	c.Auth = &AuthAPI{client: c}
	c.Pets = &PetsAPI{client: c}
	c.Appointments = &AppointmentsAPI{client: c}
	c.Treatments = &TreatmentsAPI{client: c}
	c.Veterinarians = &VeterinariansAPI{client: c}
	c.Clinics = &ClinicsAPI{client: c}
	c.Users = &UsersAPI{client: c}
	c.Owners = &OwnersAPI{client: c}
	c.Reports = &ReportsAPI{client: c}

	return c, nil
}

// Session exposes the client's session state.
func (c *Client) Session() *Session {
	return c.session
}

// do performs a JSON round trip against the backend. in may be nil for
// bodyless requests; out may be nil when the caller ignores the payload.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	// Any 401 invalidates the session, matching the interceptor behavior
	// frontends rely on.
	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
	}

	var env envelope
	if len(raw) > 0 {
		json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Message
		if message == "" {
			message = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
