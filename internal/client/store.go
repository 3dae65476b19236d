package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
	"github.com/lifeboard/core/internal/ports"
)

// Store mirrors one owner's collections in memory. Reads are served locally;
// every mutation goes to the API first and only patches the mirror once the
// server has accepted it, so the mirror never drifts ahead of the backend.
type Store struct {
	api *Client

	mu       sync.RWMutex
	ownerID  string
	projects []*entities.Project
	tasks    []*entities.Task
	journals []*entities.Journal

	// taskGen increments on every task change and invalidates the cached
	// notification list.
	taskGen  uint64
	notifGen uint64
	notifs   []entities.Notification
}

// NewStore creates an empty store backed by the given API client.
func NewStore(api *Client) *Store {
	return &Store{api: api}
}

// SetOwner loads the owner's three collections concurrently and replaces the
// mirror wholesale. If any fetch fails the mirror is left untouched. An empty
// ownerID means "no owner": the mirror is cleared without touching the API.
func (s *Store) SetOwner(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		s.Clear()
		return nil
	}

	var (
		projects []*entities.Project
		tasks    []*entities.Task
		journals []*entities.Journal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.api.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.api.ListTasks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		journals, err = s.api.ListJournals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load owner data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerID = ownerID
	s.projects = projects
	s.tasks = tasks
	s.journals = journals
	s.taskGen++
	return nil
}

// Clear drops the mirror, e.g. on sign-out.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerID = ""
	s.projects = nil
	s.tasks = nil
	s.journals = nil
	s.taskGen++
}

// OwnerID returns the owner whose data is currently mirrored.
func (s *Store) OwnerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerID
}

// Read projections. Each returns a fresh slice so callers can iterate without
// holding the store's lock.

func (s *Store) Projects() []*entities.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *Store) Tasks() []*entities.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Journals() []*entities.Journal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.Journal, len(s.journals))
	copy(out, s.journals)
	return out
}

// Notifications derives the due-date notifications for the mirrored tasks.
// The result is cached until a task mutation bumps the generation counter;
// now only matters on the computing call.
func (s *Store) Notifications(now time.Time) []entities.Notification {
	s.mu.RLock()
	if s.notifGen == s.taskGen && s.notifs != nil {
		cached := copyNotifications(s.notifs)
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notifGen != s.taskGen || s.notifs == nil {
		s.notifs = planner.DeriveNotifications(s.tasks, now)
		s.notifGen = s.taskGen
	}
	return copyNotifications(s.notifs)
}

func copyNotifications(notifs []entities.Notification) []entities.Notification {
	out := make([]entities.Notification, len(notifs))
	copy(out, notifs)
	return out
}

// GroupedTasks buckets the mirrored tasks locally, matching the server's
// /tasks/groups endpoint.
func (s *Store) GroupedTasks(now time.Time) planner.Groups {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return planner.GroupByDue(s.tasks, now)
}

// Project mutations

func (s *Store) AddProject(ctx context.Context, req ports.CreateProjectRequest) (*entities.Project, error) {
	project, err := s.api.CreateProject(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, project)
	return project, nil
}

func (s *Store) UpdateProject(ctx context.Context, id uuid.UUID, req ports.UpdateProjectRequest) (*entities.Project, error) {
	project, err := s.api.UpdateProject(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID == id {
			s.projects[i] = project
			break
		}
	}
	return project, nil
}

func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteProject(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = removeByID(s.projects, id, func(p *entities.Project) uuid.UUID { return p.ID })
	return nil
}

// Task mutations

func (s *Store) AddTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	task, err := s.api.CreateTask(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	s.taskGen++
	return task, nil
}

func (s *Store) UpdateTask(ctx context.Context, id uuid.UUID, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.api.UpdateTask(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i] = task
			break
		}
	}
	s.taskGen++
	return task, nil
}

func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = removeByID(s.tasks, id, func(t *entities.Task) uuid.UUID { return t.ID })
	s.taskGen++
	return nil
}

// Journal mutations

func (s *Store) AddJournal(ctx context.Context, req ports.CreateJournalRequest) (*entities.Journal, error) {
	journal, err := s.api.CreateJournal(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.journals = append(s.journals, journal)
	return journal, nil
}

func (s *Store) UpdateJournal(ctx context.Context, id uuid.UUID, req ports.UpdateJournalRequest) (*entities.Journal, error) {
	journal, err := s.api.UpdateJournal(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, j := range s.journals {
		if j.ID == id {
			s.journals[i] = journal
			break
		}
	}
	return journal, nil
}

func (s *Store) DeleteJournal(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteJournal(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.journals = removeByID(s.journals, id, func(j *entities.Journal) uuid.UUID { return j.ID })
	return nil
}

func removeByID[T any](items []*T, id uuid.UUID, idOf func(*T) uuid.UUID) []*T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
