package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const claimsKey = "claims"

// AdminStatusID is the status sentinel marking administrator accounts.
const AdminStatusID = 1

// Authenticate verifies the bearer token and attaches its claims to the
// request context. Requests without a valid token are rejected.
func (m *TokenManager) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized: No token provided."})
		}

		claims, err := m.Parse(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized: Invalid token."})
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

// RequireAdmin gates a route on the administrator status. It must run
// after Authenticate.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := ClaimsFrom(c)
		if claims == nil || claims.StatusID != AdminStatusID {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden: Admins only"})
		}
		return next(c)
	}
}

// OptionalIdentity attaches claims when a valid token is present but
// never rejects the request. Used for personalising public endpoints.
func (m *TokenManager) OptionalIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := m.Parse(tokenString); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		return next(c)
	}
}

// ClaimsFrom returns the claims attached by Authenticate or
// OptionalIdentity, or nil when the request carried no valid token.
func ClaimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get(claimsKey).(*Claims)
	return claims
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}
	return token, true
}
