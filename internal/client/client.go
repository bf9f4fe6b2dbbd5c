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

	"github.com/placementcell/portal/internal/app/models/dto"
)

// Client errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired, please log in again")
)

// APIError is a non-2xx response decoded from the server envelope.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Client is the portal API client. It mirrors the server's session model: a
// token persisted across runs and injected per request, with a 401 clearing
// the session. The token is never written to shared default headers, so
// concurrent requests cannot observe another caller's credentials.
type Client struct {
	baseURL string
	http    *http.Client
	store   *SessionStore

	mu      sync.RWMutex
	session *Session
}

// New creates a Client and restores any persisted session.
func New(baseURL string, store *SessionStore) (*Client, error) {
	session, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		session: session,
	}, nil
}

// Session returns a copy of the current session, if any.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

// Login authenticates and persists the resulting session.
func (c *Client) Login(ctx context.Context, email, password, userType string) (*dto.AuthUser, error) {
	var resp dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
		UserType: userType,
	}, &resp, false)
	if err != nil {
		return nil, err
	}

	session := &Session{Token: resp.Token, User: resp.User}
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	if err := c.store.Save(session); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates a student account. No session is established; the caller
// logs in afterwards.
func (c *Client) Register(ctx context.Context, req dto.RegisterStudentRequest) (int64, error) {
	var resp dto.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp, false); err != nil {
		return 0, err
	}
	return resp.StudentID, nil
}

// Logout drops the session locally. Tokens are stateless server-side.
func (c *Client) Logout() error {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
	return c.store.Clear()
}

// Verify asks the server who the current token belongs to.
func (c *Client) Verify(ctx context.Context) (*dto.AuthUser, error) {
	var resp dto.VerifyResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Jobs lists open job postings.
func (c *Client) Jobs(ctx context.Context) (*dto.JobListResponse, error) {
	var resp dto.JobListResponse
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Job fetches one posting, annotated with standing when logged in as a student.
func (c *Client) Job(ctx context.Context, jobID int64) (*dto.JobDetailResponse, error) {
	var resp dto.JobDetailResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d", jobID), nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Apply submits an application to a posting.
func (c *Client) Apply(ctx context.Context, jobID int64) (int64, error) {
	var resp dto.ApplyResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", jobID), nil, &resp, true); err != nil {
		return 0, err
	}
	return resp.ApplicationID, nil
}

// Profile fetches the logged-in student's record.
func (c *Client) Profile(ctx context.Context) (*dto.StudentProfileResponse, error) {
	var resp dto.StudentProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/students/profile", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile rewrites the logged-in student's editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req dto.UpdateStudentProfileRequest) (*dto.StudentProfileResponse, error) {
	var resp dto.StudentProfileResponse
	if err := c.do(ctx, http.MethodPut, "/api/students/profile", req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyApplications fetches the logged-in student's application history.
func (c *Client) MyApplications(ctx context.Context) (*dto.StudentApplicationsResponse, error) {
	var resp dto.StudentApplicationsResponse
	if err := c.do(ctx, http.MethodGet, "/api/students/applications", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Companies lists active companies.
func (c *Client) Companies(ctx context.Context) (*dto.CompanyListResponse, error) {
	var resp dto.CompanyListResponse
	if err := c.do(ctx, http.MethodGet, "/api/companies", nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Notifications fetches the logged-in student's notification feed.
func (c *Client) Notifications(ctx context.Context) (*dto.NotificationListResponse, error) {
	var resp dto.NotificationListResponse
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MarkNotificationRead marks one notification in the feed as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read", notificationID), nil, nil, true)
}

// do performs one request. The Authorization header is set on the individual
// request, never on shared client state. A 401 on an authenticated call
// clears the session and reports ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var token string
	if authed {
		c.mu.RLock()
		if c.session != nil {
			token = c.session.Token
		}
		c.mu.RUnlock()
		if token == "" {
			return ErrNotAuthenticated
		}
	} else {
		// Optional endpoints still benefit from a token when present.
		c.mu.RLock()
		if c.session != nil {
			token = c.session.Token
		}
		c.mu.RUnlock()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && authed {
		c.mu.Lock()
		c.session = nil
		c.mu.Unlock()
		_ = c.store.Clear()
		return ErrSessionExpired
	}

	if resp.StatusCode >= 400 {
		var envelope dto.ErrorResponse
		message := http.StatusText(resp.StatusCode)
		if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
			message = envelope.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
