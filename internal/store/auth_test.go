package store

import (
	"context"
	"testing"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/gateway/mock"
	"rapidbudapest/club-app/internal/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthStore(t *testing.T, mode gateway.DirectoryMode, kv persist.KV) *AuthStore {
	t.Helper()
	return NewAuthStore(context.Background(), mock.NewUserGateway(noDelay, mode), kv)
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	require.NoError(t, s.Login(ctx, "dancer@rapid.hu", "password"))

	assert.True(t, s.IsAuthenticated())
	user := s.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "3", user.ID)
	assert.Equal(t, domain.RoleDancer, user.Role)
	assert.Empty(t, user.PasswordHash)
	assert.False(t, s.Loading())
	assert.NoError(t, s.Err())
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	err := s.Login(ctx, "dancer@rapid.hu", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	// Unknown email and wrong password are indistinguishable to the caller.
	err := s.Login(ctx, "nobody@rapid.hu", "password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")
}

func TestRegisterDancerIsAutoApproved(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	user, err := s.Register(ctx, domain.Registration{
		Name:     "New Dancer",
		Email:    "new@rapid.hu",
		Password: "secret123",
		Role:     domain.RoleDancer,
	})
	require.NoError(t, err)
	require.NotNil(t, user.Approved)
	assert.True(t, *user.Approved)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.True(t, s.IsAuthenticated())
}

func TestRegisterCoachStaysPending(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	user, err := s.Register(ctx, domain.Registration{
		Name:     "New Coach",
		Email:    "newcoach@rapid.hu",
		Password: "secret123",
		Role:     domain.RoleCoach,
	})
	require.NoError(t, err)
	assert.True(t, user.IsPending())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	_, err := s.Register(ctx, domain.Registration{
		Name:     "Imposter",
		Email:    "admin@rapid.hu",
		Password: "secret123",
		Role:     domain.RoleDancer,
	})
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.False(t, s.IsAuthenticated())
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemoryKV()
	s := newAuthStore(t, gateway.DirectoryStatic, kv)

	require.NoError(t, s.Login(ctx, "admin@rapid.hu", "password"))
	s.Logout(ctx)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())

	// The persisted session is reset too: a fresh store stays signed out.
	restored := newAuthStore(t, gateway.DirectoryStatic, kv)
	assert.False(t, restored.IsAuthenticated())
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemoryKV()
	s := newAuthStore(t, gateway.DirectoryStatic, kv)
	require.NoError(t, s.Login(ctx, "coach@rapid.hu", "password"))

	restored := newAuthStore(t, gateway.DirectoryStatic, kv)
	assert.True(t, restored.IsAuthenticated())
	user := restored.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "2", user.ID)
	assert.Equal(t, "coach@rapid.hu", user.Email)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	name := "Ghost"
	err := s.UpdateProfile(ctx, ProfileUpdate{Name: &name})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateProfileMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)
	require.NoError(t, s.Login(ctx, "dancer@rapid.hu", "password"))

	partner := "New Partner"
	require.NoError(t, s.UpdateProfile(ctx, ProfileUpdate{Partner: &partner}))

	user := s.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "New Partner", user.Partner)
	// Untouched fields survive the merge.
	assert.Equal(t, "Jane Dancer", user.Name)
	assert.Equal(t, "Latin - Adult", user.Category)
}

func TestAllUsersStripsPasswordHashes(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	users, err := s.AllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 8)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestPendingUsers(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	pending, err := s.PendingUsers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "8", pending[0].ID)
}

func TestApprovalDoesNotSurviveRefetchInStaticDirectory(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryStatic, nil)

	// The static directory acknowledges the approval but serves the original
	// seed on the next listing, so user 8 shows up pending again.
	require.NoError(t, s.ApproveUser(ctx, "8"))

	pending, err := s.PendingUsers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "8", pending[0].ID)
}

func TestApprovalSurvivesRefetchInMutableDirectory(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryMutable, nil)

	require.NoError(t, s.ApproveUser(ctx, "8"))

	pending, err := s.PendingUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestChangeUserRoleInMutableDirectory(t *testing.T) {
	ctx := context.Background()
	s := newAuthStore(t, gateway.DirectoryMutable, nil)

	require.NoError(t, s.ChangeUserRole(ctx, "7", domain.RoleCoach))

	users, err := s.AllUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == "7" {
			assert.Equal(t, domain.RoleCoach, u.Role)
			return
		}
	}
	t.Fatal("user 7 not found")
}
