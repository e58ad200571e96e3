package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed payload inside a session token. Subject holds
// the operator id as a decimal string; Name carries the username so
// authenticated requests need no database round trip.
type SessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Identity is the authenticated operator view recovered from a token.
type Identity struct {
	ID       uint64
	Username string
}
