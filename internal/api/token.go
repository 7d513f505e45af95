package api

import (
	"time"

	"rapidbudapest/club-app/internal/domain"

	"github.com/golang-jwt/jwt/v4"
)

// issueToken creates a signed JWT for the user.
func issueToken(secret string, expiration time.Duration, user *domain.User) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &jwtClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "club-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
