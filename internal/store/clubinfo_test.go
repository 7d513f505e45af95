package store

import (
	"context"
	"testing"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/gateway/mock"
	"rapidbudapest/club-app/internal/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClubStore(t *testing.T, kv persist.KV) *ClubInfoStore {
	t.Helper()
	return NewClubInfoStore(context.Background(), mock.NewClubGateway(noDelay), kv)
}

func TestFetchClubInfo(t *testing.T) {
	ctx := context.Background()
	s := newClubStore(t, nil)

	require.NoError(t, s.Fetch(ctx))

	info := s.ClubInfo()
	require.NotNil(t, info)
	assert.Equal(t, "RAPID BUDAPEST SE", info.Name)
	assert.Equal(t, 2005, info.FoundedYear)
	assert.Len(t, info.Contacts, 4)
	assert.Len(t, info.Locations, 2)
	assert.Len(t, info.Partners, 3)
}

func TestUpdateClubInfoBeforeFetchFails(t *testing.T) {
	ctx := context.Background()
	s := newClubStore(t, nil)

	mission := "Dance more"
	err := s.Update(ctx, ClubInfoPatch{Mission: &mission})
	require.ErrorIs(t, err, ErrClubInfoMissing)
}

func TestUpdateClubInfoMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	s := newClubStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	mission := "Raise the next generation of champions"
	require.NoError(t, s.Update(ctx, ClubInfoPatch{Mission: &mission}))

	info := s.ClubInfo()
	assert.Equal(t, mission, info.Mission)
	assert.Equal(t, "RAPID BUDAPEST SE", info.Name) // untouched
}

func TestAddContactAssignsID(t *testing.T) {
	ctx := context.Background()
	s := newClubStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	contact, err := s.AddContact(ctx, domain.Contact{Name: "Új Ember", Role: "Treasurer"})
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Len(t, s.ClubInfo().Contacts, 5)
}

func TestUpdateContactMerges(t *testing.T) {
	ctx := context.Background()
	s := newClubStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	phone := "+36 1 999 9999"
	require.NoError(t, s.UpdateContact(ctx, "4", ContactPatch{Phone: &phone}))

	for _, c := range s.ClubInfo().Contacts {
		if c.ID == "4" {
			assert.Equal(t, phone, c.Phone)
			assert.Equal(t, "Tóth Katalin", c.Name)
			return
		}
	}
	t.Fatal("contact 4 not found")
}

func TestDeleteContact(t *testing.T) {
	ctx := context.Background()
	s := newClubStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.DeleteContact(ctx, "2"))
	assert.Len(t, s.ClubInfo().Contacts, 3)
}

func TestAddLocationAndPartner(t *testing.T) {
	ctx := context.Background()
	s := newClubStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	location, err := s.AddLocation(ctx, domain.Location{Name: "RAPID Annex", Address: "Fő utca 1", City: "Budapest"})
	require.NoError(t, err)
	assert.NotEmpty(t, location.ID)

	partner, err := s.AddPartner(ctx, domain.Partner{Name: "Shoe Co", Type: domain.PartnerSponsor})
	require.NoError(t, err)
	assert.NotEmpty(t, partner.ID)

	info := s.ClubInfo()
	assert.Len(t, info.Locations, 3)
	assert.Len(t, info.Partners, 4)
}

func TestDeletePartner(t *testing.T) {
	ctx := context.Background()
	s := newClubStore(t, nil)
	require.NoError(t, s.Fetch(ctx))

	require.NoError(t, s.DeletePartner(ctx, "3"))
	assert.Len(t, s.ClubInfo().Partners, 2)
}

func TestClubInfoSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := persist.NewMemoryKV()
	s := newClubStore(t, kv)
	require.NoError(t, s.Fetch(ctx))

	restored := newClubStore(t, kv)
	info := restored.ClubInfo()
	require.NotNil(t, info)
	assert.Equal(t, "RAPID BUDAPEST SE", info.Name)
	assert.Len(t, info.Contacts, 4)
	assert.Equal(t, "https://www.facebook.com/rapidbudapest", info.SocialMedia.Facebook)
}
