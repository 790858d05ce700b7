package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/jobboard-api/internal/api/metrics"
	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the verified claims into the
// request context. Every rejection is the same 401: callers must not be able
// to tell a missing header from a malformed, expired, or tampered token.
// The distinction is kept server-side in metrics.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c, "missing_header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(c, "bad_header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return reject(c, rejectionReason(err))
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", string(claims.Role))

			return next(c)
		}
	}
}

func reject(c echo.Context, reason string) error {
	metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}
