package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// DefaultTokenTTL is the fixed session lifetime applied when no TTL is
// configured. Callers cannot negotiate a different lifetime per token.
const DefaultTokenTTL = 24 * time.Hour

// tokenClaims is the signed claim set: the registered subject carries the
// user id, Role the authorization role.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// secret is injected once at construction; rotating it invalidates every
// previously issued token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(userID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: string(role),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks structure, signature, and expiry, and returns the embedded
// claims. Failure kinds map onto the domain token errors; the transport
// collapses them before anything reaches a client.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenSignature
	}
	if claims.Subject == "" {
		return nil, domain.ErrTokenMalformed
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	out := &ports.TokenClaims{UserID: claims.Subject, Role: role}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignature
	default:
		return domain.ErrTokenMalformed
	}
}
