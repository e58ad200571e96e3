package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/glowmart/cosmetics-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSigningMethod = jwt.SigningMethodHS512

const bearerPrefix = "Bearer "

// Decode failure modes. The middleware maps all three to 401, but the
// missing/malformed cases stay distinguishable from a signature or expiry
// failure so clients can tell "not authenticated" from "bad header".
var (
	ErrMissingAuthHeader   = errors.New("missing authorization header")
	ErrMalformedAuthHeader = errors.New("malformed authorization header")
	ErrInvalidToken        = errors.New("invalid or expired token")
)

// Mint issues a signed session token for the operator using the configured TTL.
func Mint(cfg config.JWTConfig, now time.Time, id uint64, username string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	if cfg.SessionLifetime() <= 0 {
		return "", fmt.Errorf("jwt expiration hours must be positive")
	}

	claims := SessionClaims{
		Name: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(id, 10),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.SessionLifetime())),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// DecodeHeader validates a raw Authorization header value and returns the
// operator identity carried by the token. Expiry is enforced here; an
// expired-but-correctly-signed token fails exactly like a forged one.
func DecodeHeader(cfg config.JWTConfig, headerValue string) (*Identity, error) {
	raw := strings.TrimSpace(headerValue)
	if raw == "" {
		return nil, ErrMissingAuthHeader
	}
	if !strings.HasPrefix(raw, bearerPrefix) {
		return nil, ErrMalformedAuthHeader
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
	if tokenString == "" {
		return nil, ErrMalformedAuthHeader
	}

	claims, err := parse(cfg, tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// A valid signature with a non-numeric subject is still rejected; the
	// subject must map onto an operator id.
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrMalformedAuthHeader
	}

	return &Identity{ID: id, Username: claims.Name}, nil
}

func parse(cfg config.JWTConfig, tokenString string) (*SessionClaims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
