package mock

import (
	"context"

	"rapidbudapest/club-app/internal/domain"
)

func seedClubInfo() *domain.ClubInfo {
	return &domain.ClubInfo{
		Name:        "RAPID BUDAPEST SE",
		Description: "RAPID BUDAPEST SE is one of Hungary's premier dance sports clubs, dedicated to excellence in competitive dancing. Founded in 2005, we have grown to become a leading institution in the Hungarian dance community, with numerous national and international champions among our members.",
		FoundedYear: 2005,
		Mission:     "Our mission is to promote dance sports in Hungary, develop world-class dancers, and create a supportive community for dancers of all ages and skill levels.",
		Contacts: []domain.Contact{
			{
				ID: "1", Name: "Kovács István", Role: "Head Coach & Club President",
				Email: "istvan.kovacs@rapid.hu", Phone: "+36 20 123 4567",
				Bio: "Former national champion with over 20 years of coaching experience. Specializes in Latin dances.",
			},
			{
				ID: "2", Name: "Nagy Éva", Role: "Standard Dance Coach",
				Email: "eva.nagy@rapid.hu", Phone: "+36 30 987 6543",
				Bio: "International judge and former European finalist. Coaching at RAPID since 2008.",
			},
			{
				ID: "3", Name: "Szabó János", Role: "Youth Program Director",
				Email: "janos.szabo@rapid.hu", Phone: "+36 70 456 7890",
				Bio: "Specializes in working with young dancers and developing new talent.",
			},
			{
				ID: "4", Name: "Tóth Katalin", Role: "Club Secretary",
				Email: "office@rapid.hu", Phone: "+36 1 234 5678",
				Bio: "Handles administrative matters, registrations, and event coordination.",
			},
		},
		Locations: []domain.Location{
			{
				ID: "1", Name: "RAPID Main Studio", Address: "Váci utca 45", City: "Budapest",
				Description: "Our main training facility with 3 professional dance floors, changing rooms, and a reception area.",
				Coordinates: &domain.Coordinates{Latitude: 47.4979, Longitude: 19.0402},
			},
			{
				ID: "2", Name: "RAPID Youth Center", Address: "Andrássy út 112", City: "Budapest",
				Description: "Dedicated facility for our youth programs and beginner classes.",
				Coordinates: &domain.Coordinates{Latitude: 47.5109, Longitude: 19.0771},
			},
		},
		Partners: []domain.Partner{
			{
				ID: "1", Name: "Hungarian Dance Sport Federation",
				Description: "The national governing body for dance sports in Hungary.",
				Website:     "https://www.mtasz.hu",
				Type:        domain.PartnerRegular,
			},
			{
				ID: "2", Name: "DanceSport Apparel",
				Description: "Premium dance costumes and shoes for competitive dancers.",
				Website:     "https://www.dancesportapparel.com",
				Type:        domain.PartnerSponsor,
			},
			{
				ID: "3", Name: "Budapest Sports Foundation",
				Description: "Supporting youth sports development in Budapest.",
				Website:     "https://www.bsf.hu",
				Type:        domain.PartnerSponsor,
			},
		},
		SocialMedia: domain.SocialMedia{
			Facebook:  "https://www.facebook.com/rapidbudapest",
			Instagram: "https://www.instagram.com/rapid_budapest",
			YouTube:   "https://www.youtube.com/rapidbudapestse",
		},
	}
}

// ClubGateway serves the canned singleton club profile.
type ClubGateway struct {
	latency Latency
}

func NewClubGateway(latency Latency) *ClubGateway {
	return &ClubGateway{latency: latency}
}

func (g *ClubGateway) Fetch(ctx context.Context) (*domain.ClubInfo, error) {
	if err := g.latency.sleep(ctx); err != nil {
		return nil, err
	}
	return seedClubInfo(), nil
}

func (g *ClubGateway) Save(ctx context.Context, info *domain.ClubInfo) error {
	return g.latency.sleep(ctx)
}
