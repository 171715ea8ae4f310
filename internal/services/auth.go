// Package services contains the application services of PromptLab: the
// credential store and the per-user prompt store, both persisted through
// the local key/value storage.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/promptlab/promptlab/internal/common"
	"github.com/promptlab/promptlab/internal/cryptox"
	"github.com/promptlab/promptlab/internal/dbx"
	"github.com/promptlab/promptlab/internal/localstore"
	"github.com/promptlab/promptlab/internal/logging"
	"github.com/promptlab/promptlab/internal/models"
	"github.com/promptlab/promptlab/internal/session"
)

// Storage keys. The prompts key is suffixed with "_<userID>" for an
// authenticated scope; the bare key is the unauthenticated fallback and is
// never written, so it always reads as empty.
const (
	usersKey       = "promptlab_users"
	currentUserKey = "promptlab_current_user"
	promptsKeyBase = "promptlab_saved_prompts"
)

// credentialRecord is the private, password-bearing record backing a User.
// It never leaves this package; callers only ever see the embedded User.
type credentialRecord struct {
	models.User
	Salt         []byte `json:"salt"`
	PasswordHash []byte `json:"passwordHash"`
}

// CredentialService registers and authenticates accounts against the local
// credential collection and tracks the active identity.
//
// Contract:
//   - Register: append a new credential record unless the email is taken,
//     then activate and persist the new identity.
//   - Login: verify email + password against stored records; on match,
//     activate and persist the identity.
//   - Logout: drop the active identity in memory and in storage.
//   - Restore: reload a persisted session on startup; an unreadable entry
//     is deleted and treated as "no session".
//
// Validation failures (duplicate email, wrong credentials) come back as
// models.Result values, never as errors. Errors are reserved for storage
// failures.
type CredentialService interface {
	Register(ctx context.Context, email, password, name string) (models.Result, error)
	Login(ctx context.Context, email, password string) (models.Result, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	Current() (models.User, bool)
	IsAuthenticated() bool
}

type credentialService struct {
	db         *sql.DB
	log        logging.Logger
	sessionKey []byte
	sessionTTL time.Duration

	current *models.User
}

// NewCredentialService constructs a CredentialService over the given
// database handle. sessionKey signs the persisted session token and
// sessionTTL bounds its validity.
func NewCredentialService(db *sql.DB, log logging.Logger, sessionKey []byte, sessionTTL time.Duration) CredentialService {
	return &credentialService{db: db, log: log, sessionKey: sessionKey, sessionTTL: sessionTTL}
}

func (s *credentialService) store() localstore.Repository {
	return localstore.NewSQLiteRepository(s.db)
}

func (s *credentialService) loadRecords(ctx context.Context, store localstore.Repository) ([]credentialRecord, error) {
	raw, err := store.Get(ctx, usersKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []credentialRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode credential collection: %w", err)
	}
	return records, nil
}

func (s *credentialService) saveRecords(ctx context.Context, store localstore.Repository, records []credentialRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode credential collection: %w", err)
	}
	return store.Set(ctx, usersKey, raw)
}

func (s *credentialService) persistSession(ctx context.Context, store localstore.Repository, user models.User) error {
	token, err := session.Seal(user, s.sessionKey, s.sessionTTL)
	if err != nil {
		return fmt.Errorf("failed to seal session: %w", err)
	}
	return store.Set(ctx, currentUserKey, []byte(token))
}

// Register creates a new account. A duplicate email yields a failed Result,
// not an error; credential records are append-only and never share an email.
func (s *credentialService) Register(ctx context.Context, email, password, name string) (models.Result, error) {
	records, err := s.loadRecords(ctx, s.store())
	if err != nil {
		return models.Result{}, err
	}

	for _, r := range records {
		if r.Email == email {
			return models.Result{Message: "this email address is already registered"}, nil
		}
	}

	salt := cryptox.GenerateSalt()
	record := credentialRecord{
		User:         models.User{ID: uuid.NewString(), Email: email, Name: name},
		Salt:         salt,
		PasswordHash: cryptox.HashPassword([]byte(password), salt),
	}
	records = append(records, record)

	// The collection and the session entry must land together.
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := localstore.NewSQLiteRepository(tx)
		if err := s.saveRecords(ctx, store, records); err != nil {
			return err
		}
		return s.persistSession(ctx, store, record.User)
	})
	if err != nil {
		return models.Result{}, err
	}

	user := record.User
	s.current = &user
	return models.Result{Success: true, Message: "registration complete"}, nil
}

// Login authenticates against the stored records. Email comparison is exact
// and case-sensitive; the password is verified against the salted digest.
func (s *credentialService) Login(ctx context.Context, email, password string) (models.Result, error) {
	store := s.store()

	records, err := s.loadRecords(ctx, store)
	if err != nil {
		return models.Result{}, err
	}

	var found *credentialRecord
	for i := range records {
		r := &records[i]
		if r.Email == email && cryptox.VerifyPassword([]byte(password), r.Salt, r.PasswordHash) {
			found = r
			break
		}
	}
	if found == nil {
		return models.Result{Message: "email or password is incorrect"}, nil
	}

	if err := s.persistSession(ctx, store, found.User); err != nil {
		return models.Result{}, err
	}

	user := found.User
	s.current = &user
	return models.Result{Success: true, Message: "logged in"}, nil
}

// Logout clears the active identity and removes its persisted copy.
func (s *credentialService) Logout(ctx context.Context) error {
	s.current = nil
	return s.store().Delete(ctx, currentUserKey)
}

// Restore reloads the persisted session, if any. A token that fails to
// verify is deleted and logged at Warn; the user is simply logged out.
// Corruption is self-healed, never surfaced as an error.
func (s *credentialService) Restore(ctx context.Context) error {
	store := s.store()

	raw, err := store.Get(ctx, currentUserKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	user, err := session.Open(string(raw), s.sessionKey)
	if err != nil {
		s.log.Warn(ctx, "discarding unreadable session", "error", err)
		return store.Delete(ctx, currentUserKey)
	}

	s.current = &user
	return nil
}

// Current returns the active identity, if any.
func (s *credentialService) Current() (models.User, bool) {
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

func (s *credentialService) IsAuthenticated() bool {
	return s.current != nil
}
