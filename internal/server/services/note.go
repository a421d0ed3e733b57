package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

const (
	maxTitleLength   = 100
	maxContentLength = 10000
)

// NoteService provides note CRUD scoped to the calling user. Ownership is
// enforced by the repositories folding the owner filter into every query,
// not by post-hoc checks.
type NoteService struct {
	db           dbx.DBTX
	repomanager  repomanager.RepositoryManager
	queryTimeout time.Duration
}

// NewNoteService constructs a NoteService using repositories and server config.
func NewNoteService(db dbx.DBTX, m repomanager.RepositoryManager, cfg *config.Config) *NoteService {
	return &NoteService{
		db:           db,
		repomanager:  m,
		queryTimeout: cfg.QueryTimeout,
	}
}

// validateNoteFields trims both fields and checks the presence and length
// constraints. Returns the trimmed values.
func validateNoteFields(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return "", "", common.NewValidationError("Title and content are required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", "", common.NewValidationError("Title cannot exceed 100 characters")
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return "", "", common.NewValidationError("Content cannot exceed 10000 characters")
	}

	return title, content, nil
}

// List returns all notes owned by userID, most recently modified first.
func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.repomanager.Notes(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return result, nil
}

// Get returns a single note owned by userID. Absent and foreign-owned notes
// are both common.ErrNotFound.
func (s *NoteService) Get(ctx context.Context, userID, noteID string) (*models.Note, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repomanager.Notes(s.db).GetByID(ctx, userID, noteID)
}

// Create validates the fields and persists a new note owned by userID.
func (s *NoteService) Create(ctx context.Context, userID, title, content string) (*models.Note, error) {

	title, content, err := validateNoteFields(title, content)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	note, err := s.repomanager.Notes(s.db).Create(ctx, &models.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return note, nil
}

// Update validates the fields and replaces title/content of the note owned
// by userID, refreshing its modification timestamp.
func (s *NoteService) Update(ctx context.Context, userID, noteID, title, content string) (*models.Note, error) {

	title, content, err := validateNoteFields(title, content)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repomanager.Notes(s.db).Update(ctx, userID, noteID, title, content)
}

// Delete removes the note owned by userID. Hard delete; deleting the same
// note twice yields common.ErrNotFound the second time.
func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repomanager.Notes(s.db).Delete(ctx, userID, noteID)
}

func (s *NoteService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}
