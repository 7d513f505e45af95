package domain

import "time"

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RoleDancer Role = "dancer"
)

// User represents a club member (admin, coach or dancer).
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`    // Should be unique
	PasswordHash string    `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role      `bson:"role" json:"role"`
	JoinedAt     time.Time `bson:"joinedAt" json:"joinedAt"`

	// Approved is nil for users that predate the approval workflow;
	// only an explicit false excludes a user from normal listings.
	Approved *bool `bson:"approved,omitempty" json:"approved,omitempty"`

	// --- Dancer-specific ---
	DateOfBirth string `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Partner     string `bson:"partner,omitempty" json:"partner,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"` // e.g. "Latin - Adult"

	// --- Coach-specific ---
	Bio string `bson:"bio,omitempty" json:"bio,omitempty"`

	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

// IsPending reports whether the user is waiting for admin approval.
func (u *User) IsPending() bool {
	return u.Approved != nil && !*u.Approved
}

// Registration carries the fields a new user submits when signing up.
type Registration struct {
	Name        string
	Email       string
	Password    string
	Role        Role
	DateOfBirth string
	Partner     string
	Category    string
	Bio         string
}

// Approve is a convenience for building *bool approval flags.
func Approve(v bool) *bool { return &v }
