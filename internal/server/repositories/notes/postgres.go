// Package notes provides the PostgreSQL-backed note store with owner-scoped
// queries.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements note storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create mints an ID and inserts the note. Both timestamps are set to the
// same instant so a fresh note has created_at == updated_at.
func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)
		 `

	note.ID = uuid.NewString()
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		note.ID, note.UserID, note.Title, note.Content, now)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// GetByID returns the note with the given id owned by userID. A note owned
// by another user matches zero rows and yields common.ErrNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, noteID string) (*models.Note, error) {
	query :=
		`SELECT id, user_id, title, content, created_at, updated_at FROM notes
		 WHERE id = $1 AND user_id = $2
		 `

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, noteID, userID).Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// ListByUser returns all notes owned by userID, most recently modified first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	query :=
		`SELECT id, user_id, title, content, created_at, updated_at FROM notes
		 WHERE user_id = $1
		 ORDER BY updated_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Content, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces title and content and refreshes updated_at. The filter
// includes both the note id and the owner, so an update targeting another
// user's note matches zero rows and yields common.ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, userID, noteID, title, content string) (*models.Note, error) {
	query :=
		`UPDATE notes SET title = $1, content = $2, updated_at = $3
		 WHERE id = $4 AND user_id = $5
		 RETURNING id, user_id, title, content, created_at, updated_at
		 `

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, title, content, time.Now().UTC(), noteID, userID).Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// Delete removes the note owned by userID. Zero affected rows (absent or
// foreign-owned) yield common.ErrNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID, noteID string) error {
	query :=
		`DELETE FROM notes
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, noteID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}

	return nil
}
