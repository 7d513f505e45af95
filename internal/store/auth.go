package store

import (
	"context"
	"errors"
	"fmt"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/persist"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	// ErrInvalidCredentials carries the exact message surfaced to the user.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrEmailTaken         = errors.New("user with this email already exists")
)

// ProfileUpdate is a partial merge into the session user. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name         *string
	DateOfBirth  *string
	Partner      *string
	Category     *string
	Bio          *string
	ProfileImage *string
}

// authSnapshot is the persisted slice of the auth store.
type authSnapshot struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// AuthStore holds the current session and fronts the member directory.
type AuthStore struct {
	base
	users gateway.UserGateway

	user          *domain.User
	authenticated bool
}

// NewAuthStore builds the store and rehydrates any persisted session.
func NewAuthStore(ctx context.Context, users gateway.UserGateway, kv persist.KV) *AuthStore {
	s := &AuthStore{base: newBase(kv, persist.KeyAuth), users: users}
	var snap authSnapshot
	if s.restore(ctx, &snap) {
		s.user = snap.User
		s.authenticated = snap.IsAuthenticated
	}
	return s
}

// Login authenticates against the directory. On mismatch the store error is
// set to ErrInvalidCredentials and the session stays unauthenticated. There
// is no retry or lockout policy.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	gen := s.begin()

	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		err = ErrInvalidCredentials
	case err != nil:
		err = fmt.Errorf("login: %w", err)
	default:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			err = ErrInvalidCredentials
		}
	}

	applied := s.resolve(gen, err, func() {
		user.PasswordHash = ""
		s.user = user
		s.authenticated = true
	})
	if err != nil {
		return err
	}
	if applied {
		s.snapshot(ctx, authSnapshot{User: user, IsAuthenticated: true})
	}
	return nil
}

// Register creates a new account and signs it in. Dancers are auto-approved;
// other roles stay pending until an admin acts.
func (s *AuthStore) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	gen := s.begin()

	role := reg.Role
	if role == "" {
		role = domain.RoleDancer
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("hash password: %w", err)
		s.resolve(gen, err, nil)
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Role:         role,
		JoinedAt:     now(),
		Approved:     domain.Approve(role == domain.RoleDancer),
		DateOfBirth:  reg.DateOfBirth,
		Partner:      reg.Partner,
		Category:     reg.Category,
		Bio:          reg.Bio,
	}

	if _, err = s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gateway.ErrConflict) {
			err = ErrEmailTaken
		} else {
			err = fmt.Errorf("register: %w", err)
		}
		s.resolve(gen, err, nil)
		return nil, err
	}

	session := *user
	session.PasswordHash = ""
	if s.resolve(gen, nil, func() {
		s.user = &session
		s.authenticated = true
	}) {
		s.snapshot(ctx, authSnapshot{User: &session, IsAuthenticated: true})
	}
	return &session, nil
}

// Logout clears the session synchronously. No backend call is made; only the
// persisted session snapshot is reset.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()
	s.notify()
	s.snapshot(ctx, authSnapshot{})
}

// UpdateProfile merges partial fields into the session user. Fails if nobody
// is logged in.
func (s *AuthStore) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	gen := s.begin()

	s.mu.RLock()
	current := s.user
	s.mu.RUnlock()
	if current == nil {
		s.resolve(gen, ErrNotAuthenticated, nil)
		return ErrNotAuthenticated
	}

	merged := *current
	setString(&merged.Name, update.Name)
	setString(&merged.DateOfBirth, update.DateOfBirth)
	setString(&merged.Partner, update.Partner)
	setString(&merged.Category, update.Category)
	setString(&merged.Bio, update.Bio)
	setString(&merged.ProfileImage, update.ProfileImage)

	err := s.users.Update(ctx, &merged)
	if err != nil && !errors.Is(err, gateway.ErrNotFound) {
		err = fmt.Errorf("update profile: %w", err)
		s.resolve(gen, err, nil)
		return err
	}

	if s.resolve(gen, nil, func() { s.user = &merged }) {
		s.snapshot(ctx, authSnapshot{User: &merged, IsAuthenticated: true})
	}
	return nil
}

// ApproveUser marks a pending user approved. Whether the change survives a
// directory refetch depends on the gateway's DirectoryMode.
func (s *AuthStore) ApproveUser(ctx context.Context, userID string) error {
	return s.adminAction(ctx, func() error { return s.users.SetApproval(ctx, userID, true) }, "approve user")
}

// RejectUser marks a user rejected.
func (s *AuthStore) RejectUser(ctx context.Context, userID string) error {
	return s.adminAction(ctx, func() error { return s.users.SetApproval(ctx, userID, false) }, "reject user")
}

// ChangeUserRole sets a user's role.
func (s *AuthStore) ChangeUserRole(ctx context.Context, userID string, role domain.Role) error {
	return s.adminAction(ctx, func() error { return s.users.SetRole(ctx, userID, role) }, "change user role")
}

func (s *AuthStore) adminAction(ctx context.Context, call func() error, what string) error {
	gen := s.begin()
	err := call()
	if err != nil {
		err = fmt.Errorf("%s: %w", what, err)
	}
	s.resolve(gen, err, nil)
	return err
}

// AllUsers returns the member directory.
func (s *AuthStore) AllUsers(ctx context.Context) ([]domain.User, error) {
	gen := s.begin()
	users, err := s.users.List(ctx)
	if err != nil {
		err = fmt.Errorf("fetch users: %w", err)
	}
	s.resolve(gen, err, nil)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// PendingUsers returns directory entries awaiting admin approval.
func (s *AuthStore) PendingUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]domain.User, 0)
	for _, u := range users {
		if u.IsPending() {
			pending = append(pending, u)
		}
	}
	return pending, nil
}

// CurrentUser returns a copy of the session user, or nil.
func (s *AuthStore) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a session is active.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
