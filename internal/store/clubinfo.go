package store

import (
	"context"
	"errors"
	"fmt"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/persist"

	"github.com/google/uuid"
)

// ErrClubInfoMissing is returned by mutations attempted before the singleton
// has been fetched.
var ErrClubInfoMissing = errors.New("club info not found")

// ClubInfoPatch is a partial merge into the singleton profile. Sub-collections
// have their own add/update/delete operations and are not patched here.
type ClubInfoPatch struct {
	Name        *string
	Description *string
	FoundedYear *int
	Mission     *string
	SocialMedia *domain.SocialMedia
}

// ContactPatch is a partial update to a contact.
type ContactPatch struct {
	Name     *string
	Role     *string
	Email    *string
	Phone    *string
	Bio      *string
	ImageURL *string
}

// LocationPatch is a partial update to a location.
type LocationPatch struct {
	Name        *string
	Address     *string
	City        *string
	Description *string
	ImageURL    *string
	Coordinates *domain.Coordinates
}

// PartnerPatch is a partial update to a partner.
type PartnerPatch struct {
	Name        *string
	Description *string
	Website     *string
	LogoURL     *string
	Type        *domain.PartnerType
}

// ClubInfoStore owns the singleton club profile and its three owned
// sub-collections (contacts, locations, partners).
type ClubInfoStore struct {
	base
	backend gateway.ClubGateway
	info    *domain.ClubInfo
}

// NewClubInfoStore builds the store and rehydrates any persisted profile.
func NewClubInfoStore(ctx context.Context, backend gateway.ClubGateway, kv persist.KV) *ClubInfoStore {
	s := &ClubInfoStore{base: newBase(kv, persist.KeyClub), backend: backend}
	var info domain.ClubInfo
	if s.restore(ctx, &info) {
		s.info = &info
	}
	return s
}

// Fetch loads the singleton profile.
func (s *ClubInfoStore) Fetch(ctx context.Context) error {
	gen := s.begin()
	info, err := s.backend.Fetch(ctx)
	if err != nil {
		err = fmt.Errorf("fetch club info: %w", err)
	}
	applied := s.resolve(gen, err, func() { s.info = info })
	if err != nil {
		return err
	}
	if applied {
		s.snapshot(ctx, info)
	}
	return nil
}

// ClubInfo returns a copy of the profile, or nil before the first fetch.
func (s *ClubInfoStore) ClubInfo() *domain.ClubInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil {
		return nil
	}
	info := *s.info
	return &info
}

// Update merges partial fields into the singleton. Fails before first fetch.
func (s *ClubInfoStore) Update(ctx context.Context, patch ClubInfoPatch) error {
	return s.mutate(ctx, "update club info", func(info *domain.ClubInfo) error {
		setString(&info.Name, patch.Name)
		setString(&info.Description, patch.Description)
		setString(&info.Mission, patch.Mission)
		if patch.FoundedYear != nil {
			info.FoundedYear = *patch.FoundedYear
		}
		if patch.SocialMedia != nil {
			info.SocialMedia = *patch.SocialMedia
		}
		return nil
	})
}

// --- Contacts ---

// AddContact appends a contact with a fresh id and returns it.
func (s *ClubInfoStore) AddContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	contact.ID = uuid.NewString()
	err := s.mutate(ctx, "add contact", func(info *domain.ClubInfo) error {
		info.Contacts = append(info.Contacts, contact)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact merges a patch into one contact. Missing ids no-op.
func (s *ClubInfoStore) UpdateContact(ctx context.Context, id string, patch ContactPatch) error {
	return s.mutate(ctx, "update contact", func(info *domain.ClubInfo) error {
		for i := range info.Contacts {
			if info.Contacts[i].ID == id {
				c := &info.Contacts[i]
				setString(&c.Name, patch.Name)
				setString(&c.Role, patch.Role)
				setString(&c.Email, patch.Email)
				setString(&c.Phone, patch.Phone)
				setString(&c.Bio, patch.Bio)
				setString(&c.ImageURL, patch.ImageURL)
			}
		}
		return nil
	})
}

// DeleteContact removes one contact. Missing ids no-op.
func (s *ClubInfoStore) DeleteContact(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete contact", func(info *domain.ClubInfo) error {
		kept := info.Contacts[:0]
		for _, c := range info.Contacts {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		info.Contacts = kept
		return nil
	})
}

// --- Locations ---

// AddLocation appends a location with a fresh id and returns it.
func (s *ClubInfoStore) AddLocation(ctx context.Context, location domain.Location) (*domain.Location, error) {
	location.ID = uuid.NewString()
	err := s.mutate(ctx, "add location", func(info *domain.ClubInfo) error {
		info.Locations = append(info.Locations, location)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// UpdateLocation merges a patch into one location. Missing ids no-op.
func (s *ClubInfoStore) UpdateLocation(ctx context.Context, id string, patch LocationPatch) error {
	return s.mutate(ctx, "update location", func(info *domain.ClubInfo) error {
		for i := range info.Locations {
			if info.Locations[i].ID == id {
				l := &info.Locations[i]
				setString(&l.Name, patch.Name)
				setString(&l.Address, patch.Address)
				setString(&l.City, patch.City)
				setString(&l.Description, patch.Description)
				setString(&l.ImageURL, patch.ImageURL)
				if patch.Coordinates != nil {
					coords := *patch.Coordinates
					l.Coordinates = &coords
				}
			}
		}
		return nil
	})
}

// DeleteLocation removes one location. Missing ids no-op.
func (s *ClubInfoStore) DeleteLocation(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete location", func(info *domain.ClubInfo) error {
		kept := info.Locations[:0]
		for _, l := range info.Locations {
			if l.ID != id {
				kept = append(kept, l)
			}
		}
		info.Locations = kept
		return nil
	})
}

// --- Partners ---

// AddPartner appends a partner with a fresh id and returns it.
func (s *ClubInfoStore) AddPartner(ctx context.Context, partner domain.Partner) (*domain.Partner, error) {
	partner.ID = uuid.NewString()
	err := s.mutate(ctx, "add partner", func(info *domain.ClubInfo) error {
		info.Partners = append(info.Partners, partner)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// UpdatePartner merges a patch into one partner. Missing ids no-op.
func (s *ClubInfoStore) UpdatePartner(ctx context.Context, id string, patch PartnerPatch) error {
	return s.mutate(ctx, "update partner", func(info *domain.ClubInfo) error {
		for i := range info.Partners {
			if info.Partners[i].ID == id {
				p := &info.Partners[i]
				setString(&p.Name, patch.Name)
				setString(&p.Description, patch.Description)
				setString(&p.Website, patch.Website)
				setString(&p.LogoURL, patch.LogoURL)
				if patch.Type != nil {
					p.Type = *patch.Type
				}
			}
		}
		return nil
	})
}

// DeletePartner removes one partner. Missing ids no-op.
func (s *ClubInfoStore) DeletePartner(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete partner", func(info *domain.ClubInfo) error {
		kept := info.Partners[:0]
		for _, p := range info.Partners {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		info.Partners = kept
		return nil
	})
}

// mutate runs edit on a copy of the singleton, saves it through the gateway
// and applies it. Fails with ErrClubInfoMissing before the first fetch.
func (s *ClubInfoStore) mutate(ctx context.Context, what string, edit func(*domain.ClubInfo) error) error {
	gen := s.begin()

	s.mu.RLock()
	var working *domain.ClubInfo
	if s.info != nil {
		info := *s.info
		info.Contacts = append([]domain.Contact(nil), s.info.Contacts...)
		info.Locations = append([]domain.Location(nil), s.info.Locations...)
		info.Partners = append([]domain.Partner(nil), s.info.Partners...)
		working = &info
	}
	s.mu.RUnlock()

	if working == nil {
		s.resolve(gen, ErrClubInfoMissing, nil)
		return ErrClubInfoMissing
	}
	if err := edit(working); err != nil {
		s.resolve(gen, err, nil)
		return err
	}
	if err := s.backend.Save(ctx, working); err != nil {
		err = fmt.Errorf("%s: %w", what, err)
		s.resolve(gen, err, nil)
		return err
	}

	if s.resolve(gen, nil, func() { s.info = working }) {
		s.snapshot(ctx, working)
	}
	return nil
}
