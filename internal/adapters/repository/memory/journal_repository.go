package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/ports"
)

type JournalRepository struct {
	mtx   sync.RWMutex
	rows  map[uuid.UUID]*entities.Journal
	order []uuid.UUID
}

func NewJournalRepository() *JournalRepository {
	return &JournalRepository{
		rows: make(map[uuid.UUID]*entities.Journal),
	}
}

var _ ports.JournalRepository = (*JournalRepository)(nil)

func (r *JournalRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Journal, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	journals := make([]*entities.Journal, 0)
	for _, id := range r.order {
		if journal, ok := r.rows[id]; ok && journal.OwnerID == ownerID {
			journals = append(journals, cloneJournal(journal))
		}
	}
	return journals, nil
}

func (r *JournalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Journal, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	journal, ok := r.rows[id]
	if !ok {
		return nil, entities.ErrJournalNotFound
	}
	return cloneJournal(journal), nil
}

func (r *JournalRepository) Create(ctx context.Context, journal *entities.Journal) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if journal.ID == uuid.Nil {
		journal.ID = uuid.New()
	}
	if journal.CreatedAt.IsZero() {
		journal.CreatedAt = time.Now().UTC()
	}

	r.rows[journal.ID] = cloneJournal(journal)
	r.order = append(r.order, journal.ID)
	return nil
}

func (r *JournalRepository) Update(ctx context.Context, id uuid.UUID, patch ports.JournalPatch) (*entities.Journal, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	journal, ok := r.rows[id]
	if !ok {
		return nil, entities.ErrJournalNotFound
	}

	if patch.Title != nil {
		journal.Title = *patch.Title
	}
	if patch.Content != nil {
		journal.Content = *patch.Content
	}
	if patch.Date != nil {
		journal.Date = *patch.Date
	}
	if patch.Mood != nil {
		mood := *patch.Mood
		journal.Mood = &mood
	}
	if patch.Tags != nil {
		journal.Tags = append([]string(nil), (*patch.Tags)...)
	}

	return cloneJournal(journal), nil
}

// Delete is idempotent: removing an id that is already gone succeeds.
func (r *JournalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.rows[id]; !ok {
		return nil
	}
	delete(r.rows, id)
	r.order = removeID(r.order, id)
	return nil
}

func cloneJournal(journal *entities.Journal) *entities.Journal {
	clone := *journal
	clone.Tags = append([]string(nil), journal.Tags...)
	return &clone
}
