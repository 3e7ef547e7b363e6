// Package auth issues and verifies access tokens and carries the
// authenticated actor through request contexts.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered claims plus the actor identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func GenerateToken(actor Actor, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: actor.ID,
		Name:   actor.Name,
		Role:   string(actor.Role),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString and returns the actor it was issued for.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// verification yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Actor, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Actor{}, common.ErrTokenExpired
		}
		return Actor{}, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return Actor{}, common.ErrInvalidToken
	}

	return Actor{ID: claims.UserID, Name: claims.Name, Role: models.Role(claims.Role)}, nil
}
