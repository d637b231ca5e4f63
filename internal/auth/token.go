package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// DefaultTokenTTL is used when no TTL is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrInvalidToken is returned for a bad signature, malformed structure,
	// unexpected signing method or missing subject claim.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token's expiry has passed.
	ErrExpiredToken = errors.New("expired token")
)

// TokenService issues and validates HS256-signed bearer tokens. Tokens are
// self-contained; there is no revocation list, so a token stays valid until
// its natural expiry regardless of account state changes.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given secret and TTL.
// A non-positive TTL falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token whose subject is the user id.
func (s *TokenService) Issue(subjectID uint) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(subjectID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature and expiry and returns the subject user id.
// The signing method is pinned to the HMAC family; the token header's alg
// is never trusted on its own.
func (s *TokenService) Validate(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
