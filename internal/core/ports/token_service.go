package ports

import (
	"time"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// TokenClaims is the verified claim set embedded in a bearer token.
type TokenClaims struct {
	UserID    string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-bounded bearer tokens.
// Tokens are stateless: validity is determined purely by signature and
// expiry, so rotating the signing secret invalidates everything outstanding.
type TokenService interface {
	Issue(userID string, role domain.Role) (string, error)
	Verify(token string) (*TokenClaims, error)
}
