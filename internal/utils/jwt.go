package utils // package utils provides helper functions for token creation and verification

import (
	"errors" // sentinel error for rejected tokens
	"time"   // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// TokenTTL is how long an issued access token stays valid.  Clients are
// expected to request a fresh token on each sign-in.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned by ParseToken for any token that cannot be
// trusted: malformed, expired, signed with the wrong key or algorithm, or
// carrying claims in an unexpected shape.  Callers translate this into an
// HTTP 401.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken builds and signs an HS256 JWT embedding the supplied identity
// claims.  The claims are caller-provided (minimally an email); the token
// itself is the credential and no server-side session state is kept.  The
// standard exp and iat claims are set here and override any caller values.
func IssueToken(secret string, identity map[string]interface{}) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = now.Add(TokenTTL).Unix()
	claims["iat"] = now.Unix()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry of a token produced by
// IssueToken and returns its claims.  Any failure collapses into
// ErrInvalidToken; the caller does not need to distinguish why a token was
// rejected.
func ParseToken(secret, raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; reject tokens claiming other algorithms.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
