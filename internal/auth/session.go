package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/minilearn/internal/common"
	"github.com/dmitrijs2005/minilearn/internal/logging"
	"github.com/dmitrijs2005/minilearn/internal/storage"
)

// newUserID is a test seam for signup id generation.
var newUserID = func() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// SessionStore manages the current user. It keeps no state of its own:
// every read goes to the underlying store, so a write is visible to the
// next read immediately.
type SessionStore struct {
	store       storage.Store
	credentials []Credential
	logger      logging.Logger
}

// NewSessionStore returns a SessionStore over store. A nil credentials
// table means DefaultCredentials; a nil logger discards output.
func NewSessionStore(store storage.Store, credentials []Credential, logger logging.Logger) *SessionStore {
	if credentials == nil {
		credentials = DefaultCredentials
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &SessionStore{
		store:       store,
		credentials: credentials,
		logger:      logger.With("component", "session"),
	}
}

// Login looks for an exact, case-sensitive match of email and password.
// On a match the user is persisted and returned. Otherwise it returns
// common.ErrInvalidCredentials and leaves storage untouched.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*User, error) {
	for _, c := range s.credentials {
		if c.Email == email && c.Password == password {
			u := c.user()
			if err := s.save(ctx, u); err != nil {
				return nil, err
			}
			s.logger.Info(ctx, "user logged in", "user_id", u.ID)
			return u, nil
		}
	}

	s.logger.Debug(ctx, "login rejected")
	return nil, common.ErrInvalidCredentials
}

// Signup validates the input and creates a fresh identity. Email
// uniqueness is not checked, so signing up twice yields two ids.
func (s *SessionStore) Signup(ctx context.Context, in SignupInput) (*User, error) {
	if err := ValidateSignup(in); err != nil {
		return nil, err
	}

	id, err := newUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	u := &User{ID: id, Email: in.Email, Name: in.Name}
	if err := s.save(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user signed up", "user_id", u.ID)
	return u, nil
}

// CurrentUser returns the persisted user, or nil when nobody is signed in.
// A payload that cannot be decoded is treated as no session.
func (s *SessionStore) CurrentUser(ctx context.Context) (*User, error) {
	data, err := s.store.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var u *User
	if err := json.Unmarshal(data, &u); err != nil {
		s.logger.Warn(ctx, "ignoring malformed session payload", "error", err)
		return nil, nil
	}
	if u == nil || u.ID == "" {
		s.logger.Warn(ctx, "ignoring session payload without user id")
		return nil, nil
	}
	return u, nil
}

// Logout removes the persisted user. Logging out twice is not an error.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info(ctx, "user logged out")
	return nil
}

func (s *SessionStore) IsAuthenticated(ctx context.Context) (bool, error) {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (s *SessionStore) save(ctx context.Context, u *User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, common.SessionKey, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
