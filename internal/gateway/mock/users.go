package mock

import (
	"context"
	"sync"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"

	"golang.org/x/crypto/bcrypt"
)

// demoPassword is the shared password of the three demo accounts.
const demoPassword = "password"

var demoHash = mustHash(demoPassword)

func mustHash(password string) string {
	// MinCost keeps seed construction cheap; these are demo credentials.
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

// seedUsers regenerates the canned 8-user directory. Dates are relative to
// the call time so the directory always looks freshly synced.
func seedUsers() []domain.User {
	return []domain.User{
		{
			ID: "1", Name: "Admin User", Email: "admin@rapid.hu",
			PasswordHash: demoHash, Role: domain.RoleAdmin,
			JoinedAt: daysFromNow(0), Approved: domain.Approve(true),
			ProfileImage: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=256",
		},
		{
			ID: "2", Name: "Coach Smith", Email: "coach@rapid.hu",
			PasswordHash: demoHash, Role: domain.RoleCoach,
			Bio:      "Professional dance coach with 15 years of experience",
			JoinedAt: daysFromNow(0), Approved: domain.Approve(true),
			ProfileImage: "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?w=256",
		},
		{
			ID: "3", Name: "Jane Dancer", Email: "dancer@rapid.hu",
			PasswordHash: demoHash, Role: domain.RoleDancer,
			DateOfBirth: "1995-05-15", Partner: "John Partner", Category: "Latin - Adult",
			JoinedAt: daysFromNow(0), Approved: domain.Approve(true),
			ProfileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=256",
		},
		{
			ID: "4", Name: "Michael Johnson", Email: "michael@example.com",
			Role:        domain.RoleDancer,
			DateOfBirth: "1992-08-21", Partner: "Sarah Williams", Category: "Ballroom - Adult",
			JoinedAt: daysFromNow(-30), Approved: domain.Approve(true),
		},
		{
			ID: "5", Name: "Sarah Williams", Email: "sarah@example.com",
			Role:        domain.RoleDancer,
			DateOfBirth: "1993-04-12", Partner: "Michael Johnson", Category: "Ballroom - Adult",
			JoinedAt: daysFromNow(-30), Approved: domain.Approve(true),
		},
		{
			ID: "6", Name: "David Chen", Email: "david@example.com",
			Role:     domain.RoleCoach,
			Bio:      "Specializing in Latin dance with 10+ years of competitive experience",
			JoinedAt: daysFromNow(-60), Approved: domain.Approve(true),
		},
		{
			ID: "7", Name: "Emma Rodriguez", Email: "emma@example.com",
			Role:        domain.RoleDancer,
			DateOfBirth: "1997-11-30", Category: "Latin - Youth",
			JoinedAt: daysFromNow(-15), Approved: domain.Approve(true),
		},
		{
			ID: "8", Name: "Robert Taylor", Email: "robert@example.com",
			Role:        domain.RoleDancer,
			DateOfBirth: "1990-02-15", Partner: "Lisa Brown", Category: "Standard - Adult",
			JoinedAt: daysFromNow(-45), Approved: domain.Approve(false),
		},
	}
}

// UserGateway serves the mock member directory.
//
// In DirectoryStatic mode List regenerates the seed on every call, so
// SetApproval/SetRole succeed without surviving a refetch — the legacy
// fire-and-forget behavior. DirectoryMutable applies mutations for real.
type UserGateway struct {
	latency Latency
	mode    gateway.DirectoryMode

	mu    sync.Mutex
	users []domain.User
}

func NewUserGateway(latency Latency, mode gateway.DirectoryMode) *UserGateway {
	return &UserGateway{latency: latency, mode: mode, users: seedUsers()}
}

func (g *UserGateway) Create(ctx context.Context, user *domain.User) (string, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, u := range g.users {
		if u.Email == user.Email {
			return "", gateway.ErrConflict
		}
	}
	if g.mode == gateway.DirectoryMutable {
		g.users = append(g.users, *user)
	}
	return user.ID, nil
}

func (g *UserGateway) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.users {
		if g.users[i].Email == email {
			u := g.users[i]
			return &u, nil
		}
	}
	return nil, gateway.ErrNotFound
}

func (g *UserGateway) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.users {
		if g.users[i].ID == id {
			u := g.users[i]
			return &u, nil
		}
	}
	return nil, gateway.ErrNotFound
}

func (g *UserGateway) Update(ctx context.Context, user *domain.User) error {
	if err := g.latency.sleep(ctx); err != nil {
		return err
	}
	if g.mode != gateway.DirectoryMutable {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.users {
		if g.users[i].ID == user.ID {
			g.users[i] = *user
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (g *UserGateway) List(ctx context.Context) ([]domain.User, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.mode == gateway.DirectoryStatic {
		// The static directory ignores prior mutations, like the old client.
		g.users = seedUsers()
	}
	out := make([]domain.User, len(g.users))
	copy(out, g.users)
	return out, nil
}

func (g *UserGateway) SetApproval(ctx context.Context, id string, approved bool) error {
	if err := g.latency.sleep(ctx); err != nil {
		return err
	}
	if g.mode != gateway.DirectoryMutable {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.users {
		if g.users[i].ID == id {
			g.users[i].Approved = domain.Approve(approved)
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (g *UserGateway) SetRole(ctx context.Context, id string, role domain.Role) error {
	if err := g.latency.sleep(ctx); err != nil {
		return err
	}
	if g.mode != gateway.DirectoryMutable {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.users {
		if g.users[i].ID == id {
			g.users[i].Role = role
			return nil
		}
	}
	return gateway.ErrNotFound
}
