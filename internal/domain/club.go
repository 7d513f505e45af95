package domain

// Contact is a club contact person (coach, office staff, ...).
type Contact struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Role     string `bson:"role" json:"role"` // Free-form title, not a domain.Role
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio      string `bson:"bio,omitempty" json:"bio,omitempty"`
	ImageURL string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Coordinates is a WGS84 point for a club location.
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Location is a training venue owned by the club.
type Location struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Address     string       `bson:"address" json:"address"`
	City        string       `bson:"city" json:"city"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string       `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// PartnerType distinguishes sponsors from non-commercial partners.
type PartnerType string

const (
	PartnerSponsor PartnerType = "sponsor"
	PartnerRegular PartnerType = "partner"
)

// Partner is a sponsor or partner organisation.
type Partner struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Website     string      `bson:"website,omitempty" json:"website,omitempty"`
	LogoURL     string      `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	Type        PartnerType `bson:"type" json:"type"`
}

// SocialMedia holds the club's social links.
type SocialMedia struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// ClubInfo is the singleton club profile with its owned sub-collections.
// At most one instance exists per process.
type ClubInfo struct {
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description" json:"description"`
	FoundedYear int         `bson:"foundedYear" json:"foundedYear"`
	Mission     string      `bson:"mission" json:"mission"`
	Contacts    []Contact   `bson:"contacts" json:"contacts"`
	Locations   []Location  `bson:"locations" json:"locations"`
	Partners    []Partner   `bson:"partners" json:"partners"`
	SocialMedia SocialMedia `bson:"socialMedia" json:"socialMedia"`
}
