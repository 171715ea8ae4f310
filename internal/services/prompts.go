package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/internal/common"
	"github.com/promptlab/promptlab/internal/localstore"
	"github.com/promptlab/promptlab/internal/logging"
	"github.com/promptlab/promptlab/internal/models"
)

// IdentityProvider exposes the active identity to stores that scope their
// data per user. CredentialService satisfies it; tests can provide a stub.
type IdentityProvider interface {
	Current() (models.User, bool)
}

// Outcome reports whether a prompt-store mutation was applied or skipped,
// and why. Skips are expected states, not errors: callers are free to
// ignore them, tests can assert on the reason.
type Outcome int

const (
	Applied Outcome = iota
	SkippedUnauthenticated
	SkippedNotFound
	SkippedBlankTitle
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case SkippedUnauthenticated:
		return "skipped: not logged in"
	case SkippedNotFound:
		return "skipped: no such prompt"
	case SkippedBlankTitle:
		return "skipped: blank title"
	default:
		return "unknown"
	}
}

// PromptService manages the saved-prompt collection of whichever identity
// is currently active. Switching identities (login, logout, restore) swaps
// the whole collection from storage; collections of different users are
// never merged.
type PromptService interface {
	List(ctx context.Context) ([]models.Prompt, error)
	Save(ctx context.Context, title, content string) (Outcome, error)
	Delete(ctx context.Context, id string) (Outcome, error)
	RenameTitle(ctx context.Context, id, newTitle string) (Outcome, error)
	GetByID(ctx context.Context, id string) (models.Prompt, bool, error)
}

type promptService struct {
	store localstore.Repository
	idp   IdentityProvider
	log   logging.Logger

	// now is a test seam for CreatedAt stamping.
	now func() time.Time

	// prompts is the in-memory collection for loadedKey. loaded guards the
	// first load so an empty collection is not refetched on every call.
	prompts   []models.Prompt
	loadedKey string
	loaded    bool
}

// NewPromptService constructs a PromptService scoped through idp.
func NewPromptService(store localstore.Repository, idp IdentityProvider, log logging.Logger) PromptService {
	return &promptService{store: store, idp: idp, log: log, now: time.Now}
}

// scopeKey returns the storage key for the active identity, or the bare
// fallback key when unauthenticated. The fallback is never written, so the
// unauthenticated collection always reads as empty.
func (s *promptService) scopeKey() string {
	if user, ok := s.idp.Current(); ok {
		return promptsKeyBase + "_" + user.ID
	}
	return promptsKeyBase
}

// ensureLoaded makes the in-memory collection match the active scope,
// reloading it from storage whenever the scope changed since the last call.
func (s *promptService) ensureLoaded(ctx context.Context) error {
	key := s.scopeKey()
	if s.loaded && s.loadedKey == key {
		return nil
	}

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		s.prompts = nil
		s.loadedKey = key
		s.loaded = true
		return nil
	}
	if err != nil {
		return err
	}

	var prompts []models.Prompt
	if err := json.Unmarshal(raw, &prompts); err != nil {
		// An unreadable collection is discarded rather than propagated,
		// the same way an unreadable session is.
		s.log.Warn(ctx, "discarding unreadable prompt collection", "key", key, "error", err)
		prompts = nil
	}

	s.prompts = prompts
	s.loadedKey = key
	s.loaded = true
	return nil
}

func (s *promptService) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.prompts)
	if err != nil {
		return fmt.Errorf("failed to encode prompt collection: %w", err)
	}
	return s.store.Set(ctx, s.loadedKey, raw)
}

// List returns the active identity's prompts in insertion order. The result
// is a copy; it is empty, not nil, when there is nothing to show.
func (s *promptService) List(ctx context.Context) ([]models.Prompt, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	out := make([]models.Prompt, len(s.prompts))
	copy(out, s.prompts)
	return out, nil
}

// Save appends a new prompt owned by the active identity. Without an active
// identity nothing is stored and SkippedUnauthenticated is returned.
func (s *promptService) Save(ctx context.Context, title, content string) (Outcome, error) {
	user, ok := s.idp.Current()
	if !ok {
		return SkippedUnauthenticated, nil
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	s.prompts = append(s.prompts, models.Prompt{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: s.now().UTC(),
		UserID:    user.ID,
	})

	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	return Applied, nil
}

// Delete removes the prompt with the given id from the current collection.
// A missing id is SkippedNotFound, not an error.
func (s *promptService) Delete(ctx context.Context, id string) (Outcome, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return SkippedNotFound, nil
	}

	s.prompts = append(s.prompts[:idx], s.prompts[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	return Applied, nil
}

// RenameTitle replaces the title of the matching prompt. A blank or
// whitespace-only title and a missing id are both skips, not errors.
func (s *promptService) RenameTitle(ctx context.Context, id, newTitle string) (Outcome, error) {
	if strings.TrimSpace(newTitle) == "" {
		return SkippedBlankTitle, nil
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return SkippedNotFound, nil
	}

	s.prompts[idx].Title = newTitle
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	return Applied, nil
}

// GetByID looks the prompt up within the current collection only.
func (s *promptService) GetByID(ctx context.Context, id string) (models.Prompt, bool, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return models.Prompt{}, false, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Prompt{}, false, nil
	}
	return s.prompts[idx], true, nil
}

func (s *promptService) indexOf(id string) int {
	for i, p := range s.prompts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
