package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/ports"
)

// DashboardService recomputes the dashboard read model from the owner's
// collections on every request; nothing derived is persisted.
type DashboardService struct {
	projectRepo ports.ProjectRepository
	taskRepo    ports.TaskRepository
	journalRepo ports.JournalRepository
	logger      *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	projectRepo ports.ProjectRepository,
	taskRepo ports.TaskRepository,
	journalRepo ports.JournalRepository,
	logger *logger.Logger,
) *DashboardService {
	return &DashboardService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		journalRepo: journalRepo,
		logger:      logger,
	}
}

var _ ports.DashboardService = (*DashboardService)(nil)

// GetDashboard fetches the three collections concurrently and derives the
// dashboard projections and notifications relative to now.
func (s *DashboardService) GetDashboard(ctx context.Context, ownerID string, now time.Time) (*ports.Dashboard, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var (
		projects []*entities.Project
		tasks    []*entities.Task
		journals []*entities.Journal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.taskRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		journals, err = s.journalRepo.ListByOwner(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	return &ports.Dashboard{
		UpcomingTasks:  planner.UpcomingTasks(tasks, now),
		OverdueTasks:   planner.OverdueTasks(tasks, now),
		ActiveProjects: planner.ActiveProjects(projects),
		RecentJournals: planner.RecentJournals(journals),
		Notifications:  planner.DeriveNotifications(tasks, now),
	}, nil
}
