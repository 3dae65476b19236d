// Package client provides a typed Go client for the LifeBoard API plus an
// in-process store that mirrors one owner's data.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
	"github.com/lifeboard/core/internal/ports"
)

// APIError carries a non-2xx response back to the caller.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the LifeBoard API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the API at baseURL, authenticating every request
// with the given bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg ports.MessageResponse
		data, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(data, &msg); err != nil || msg.Message == "" {
			msg.Message = string(data)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Project operations

func (c *Client) ListProjects(ctx context.Context) ([]*entities.Project, error) {
	var projects []*entities.Project
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, req ports.CreateProjectRequest) (*entities.Project, error) {
	var project entities.Project
	if err := c.do(ctx, http.MethodPost, "/api/v1/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id uuid.UUID, req ports.UpdateProjectRequest) (*entities.Project, error) {
	var project entities.Project
	if err := c.do(ctx, http.MethodPut, "/api/v1/projects/"+id.String(), req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/projects/"+id.String(), nil, nil)
}

// Task operations

func (c *Client) ListTasks(ctx context.Context) ([]*entities.Task, error) {
	var tasks []*entities.Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	var task entities.Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, req ports.UpdateTaskRequest) (*entities.Task, error) {
	var task entities.Task
	if err := c.do(ctx, http.MethodPut, "/api/v1/tasks/"+id.String(), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tasks/"+id.String(), nil, nil)
}

// GroupTasks fetches the server-side due-date buckets.
func (c *Client) GroupTasks(ctx context.Context, category entities.TaskCategory, window planner.TimeWindow) (planner.Groups, error) {
	path := "/api/v1/tasks/groups"
	sep := "?"
	if category != "" {
		path += sep + "category=" + string(category)
		sep = "&"
	}
	if window != "" {
		path += sep + "window=" + string(window)
	}

	var groups planner.Groups
	if err := c.do(ctx, http.MethodGet, path, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Journal operations

func (c *Client) ListJournals(ctx context.Context) ([]*entities.Journal, error) {
	var journals []*entities.Journal
	if err := c.do(ctx, http.MethodGet, "/api/v1/journals", nil, &journals); err != nil {
		return nil, err
	}
	return journals, nil
}

func (c *Client) CreateJournal(ctx context.Context, req ports.CreateJournalRequest) (*entities.Journal, error) {
	var journal entities.Journal
	if err := c.do(ctx, http.MethodPost, "/api/v1/journals", req, &journal); err != nil {
		return nil, err
	}
	return &journal, nil
}

func (c *Client) UpdateJournal(ctx context.Context, id uuid.UUID, req ports.UpdateJournalRequest) (*entities.Journal, error) {
	var journal entities.Journal
	if err := c.do(ctx, http.MethodPut, "/api/v1/journals/"+id.String(), req, &journal); err != nil {
		return nil, err
	}
	return &journal, nil
}

func (c *Client) DeleteJournal(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/journals/"+id.String(), nil, nil)
}

// GetDashboard fetches the derived dashboard read model.
func (c *Client) GetDashboard(ctx context.Context) (*ports.Dashboard, error) {
	var dashboard ports.Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/v1/dashboard", nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// CurrentUser returns the identity behind the client's token.
func (c *Client) CurrentUser(ctx context.Context) (*entities.User, error) {
	var user entities.User
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
