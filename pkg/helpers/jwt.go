package helpers

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager signs and verifies the bearer tokens issued at login and
// registration. Tokens carry the user id and nothing else; validity is
// signature validity only, there is no expiry claim and no server-side
// revocation.
type TokenManager struct {
	Secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{Secret: []byte(secret)}
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Generate produces a signed token for the given user id.
func (m *TokenManager) Generate(userID string) (string, error) {
	claims := &Claims{UserID: userID}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// Parse validates the signature and returns the claims. It does not check
// that the user still exists; that is the caller's concern.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
