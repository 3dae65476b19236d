package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/ports"
)

// JournalService handles journal-related operations
type JournalService struct {
	journalRepo ports.JournalRepository
	logger      *logger.Logger
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo ports.JournalRepository, logger *logger.Logger) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		logger:      logger,
	}
}

var _ ports.JournalService = (*JournalService)(nil)

// ListJournals retrieves every journal entry owned by ownerID.
func (s *JournalService) ListJournals(ctx context.Context, ownerID string) ([]*entities.Journal, error) {
	journals, err := s.journalRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	return journals, nil
}

// CreateJournal creates a new journal entry for ownerID. Duplicate tags are
// collapsed, keeping first occurrence order.
func (s *JournalService) CreateJournal(ctx context.Context, ownerID string, req ports.CreateJournalRequest) (*entities.Journal, error) {
	journal := &entities.Journal{
		Title:   req.Title,
		Content: req.Content,
		Date:    req.Date,
		Mood:    req.Mood,
		Tags:    dedupeTags(req.Tags),
		OwnerID: ownerID,
	}

	if err := s.journalRepo.Create(ctx, journal); err != nil {
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}

	s.logger.Info("Journal created", "journal_id", journal.ID, "title", journal.Title)

	return journal, nil
}

// UpdateJournal merges the set fields of req into the stored entry.
func (s *JournalService) UpdateJournal(ctx context.Context, id uuid.UUID, req ports.UpdateJournalRequest) (*entities.Journal, error) {
	patch := ports.JournalPatch{
		Title:   req.Title,
		Content: req.Content,
		Date:    req.Date,
		Mood:    req.Mood,
	}
	if req.Tags != nil {
		tags := dedupeTags(*req.Tags)
		patch.Tags = &tags
	}

	journal, err := s.journalRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update journal: %w", err)
	}

	s.logger.Info("Journal updated", "journal_id", journal.ID)

	return journal, nil
}

// DeleteJournal removes the journal entry.
func (s *JournalService) DeleteJournal(ctx context.Context, id uuid.UUID) error {
	if err := s.journalRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete journal: %w", err)
	}

	s.logger.Info("Journal deleted", "journal_id", id)

	return nil
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
