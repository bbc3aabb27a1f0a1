// Package auth implements the stateless token contract shared by every
// service: the user service mints tokens, all services verify them with the
// same secret and no network call.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// Claims is the full claim set carried by a signed token. The role is a
// snapshot taken at issuance; later role changes do not affect live tokens.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the decoded, verified view of a token attached to a request.
type Identity struct {
	UserID string
	Name   string
	Role   string
}

// Issuer mints signed HS256 tokens with a fixed TTL.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user. Subject carries the user id.
func (i *Issuer) Issue(userID, name, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: name,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verifier checks token signature and expiry against the shared secret.
// It holds no state beyond the secret and is safe for concurrent use.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a signed token. Any failure, whether a bad
// signature, a malformed token, or an expired one, yields ErrTokenInvalid.
func (v *Verifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// IdentityFromClaims converts verified claims into the request-scoped identity.
func IdentityFromClaims(c *Claims) Identity {
	return Identity{UserID: c.Subject, Name: c.Name, Role: c.Role}
}
