package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/ports"
)

// JournalRepositoryImpl implements the JournalRepository interface
type JournalRepositoryImpl struct {
	db *sqlx.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *sqlx.DB) ports.JournalRepository {
	return &JournalRepositoryImpl{db: db}
}

// journalRow mirrors the journals table; tags live in a text[] column that
// needs pq's array scanner.
type journalRow struct {
	ID        uuid.UUID      `db:"id"`
	Title     string         `db:"title"`
	Content   string         `db:"content"`
	Date      time.Time      `db:"date"`
	Mood      *entities.Mood `db:"mood"`
	Tags      pq.StringArray `db:"tags"`
	OwnerID   string         `db:"owner_id"`
	CreatedAt time.Time      `db:"created_at"`
}

func (row journalRow) toEntity() *entities.Journal {
	return &entities.Journal{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		Date:      row.Date,
		Mood:      row.Mood,
		Tags:      []string(row.Tags),
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
	}
}

func (r *JournalRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Journal, error) {
	query := `
		SELECT id, title, content, date, mood, tags, owner_id, created_at
		FROM journals
		WHERE owner_id = $1
		ORDER BY created_at, id`

	var rows []journalRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("list journals by owner: %w", err)
	}

	journals := make([]*entities.Journal, 0, len(rows))
	for _, row := range rows {
		journals = append(journals, row.toEntity())
	}
	return journals, nil
}

func (r *JournalRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Journal, error) {
	query := `
		SELECT id, title, content, date, mood, tags, owner_id, created_at
		FROM journals
		WHERE id = $1`

	var row journalRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrJournalNotFound
		}
		return nil, fmt.Errorf("get journal by id: %w", err)
	}

	return row.toEntity(), nil
}

func (r *JournalRepositoryImpl) Create(ctx context.Context, journal *entities.Journal) error {
	query := `
		INSERT INTO journals (id, title, content, date, mood, tags, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	if journal.ID == uuid.Nil {
		journal.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		journal.ID, journal.Title, journal.Content, journal.Date,
		journal.Mood, pq.Array(journal.Tags), journal.OwnerID,
	).Scan(&journal.CreatedAt)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}

	return nil
}

func (r *JournalRepositoryImpl) Update(ctx context.Context, id uuid.UUID, patch ports.JournalPatch) (*entities.Journal, error) {
	query := `
		UPDATE journals
		SET title = COALESCE($2, title),
			content = COALESCE($3, content),
			date = COALESCE($4, date),
			mood = COALESCE($5, mood),
			tags = COALESCE($6::text[], tags)
		WHERE id = $1
		RETURNING id, title, content, date, mood, tags, owner_id, created_at`

	var tags interface{}
	if patch.Tags != nil {
		tags = pq.Array(*patch.Tags)
	}

	var row journalRow
	err := r.db.GetContext(ctx, &row, query,
		id, patch.Title, patch.Content, patch.Date, patch.Mood, tags,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrJournalNotFound
		}
		return nil, fmt.Errorf("update journal: %w", err)
	}

	return row.toEntity(), nil
}

// Delete succeeds whether or not the row exists.
func (r *JournalRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM journals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}
	return nil
}
