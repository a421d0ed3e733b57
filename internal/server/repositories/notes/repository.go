package notes

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// Repository is the note store. Every lookup and mutation filters by the
// owning user as part of the query itself, so a note owned by someone else
// behaves exactly like a missing note.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, userID, noteID string) (*models.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Note, error)
	Update(ctx context.Context, userID, noteID, title, content string) (*models.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}
