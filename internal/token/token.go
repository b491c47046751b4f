// internal/token/token.go
//
// Stateless room-membership tokens: a signed proof that a player id was
// admitted to a room. Not user authentication — just room validation.
//
// Tokens are HS256 JWTs binding (room code, player id) with an issued-at
// and an expiry (8 hours by default). Verify rejects tampering, expiry,
// and any room/player mismatch; it never consults server state.

package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window applied when none is configured.
const DefaultTTL = 8 * time.Hour

type claims struct {
	Room   string `json:"room"`
	Player string `json:"player"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies membership tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer. A non-positive ttl falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for (roomCode, playerID).
func (i *Issuer) Issue(roomCode, playerID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Room:   roomCode,
		Player: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	return t.SignedString(i.secret)
}

// Verify reports whether tok is a valid, unexpired token for exactly
// (roomCode, playerID).
func (i *Issuer) Verify(tok, roomCode, playerID string) bool {
	var c claims
	t, err := jwt.ParseWithClaims(tok, &c, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return false
	}
	return c.Room == roomCode && c.Player == playerID
}
