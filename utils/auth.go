package utils

import (
	"errors"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken is returned by Verify for any token that does not carry
// a valid signature under the service's secret.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the JWT claims. Subject holds the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// TokenService signs and verifies bearer tokens with a shared secret.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService for the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token binding the user id and role. Tokens carry
// no expiration; they stay valid until the secret rotates.
func (ts *TokenService) Issue(userID, role string) (string, error) {
	claims := &Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Subject: userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify checks the token signature and returns the decoded claims.
func (ts *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return ts.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
