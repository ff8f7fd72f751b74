package middleware

import (
	"bookshop-api/internal/auth"
	"bookshop-api/internal/dto"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key the verified subject ID is stored
// under for downstream handlers.
const UserIDKey = "user_id"

// Auth gates a route behind a bearer session token. A missing token is
// forbidden (403); a token that fails verification or has expired is
// unauthorized (401). The token alone is trusted, no store lookup.
func Auth(tokens auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if header == "" || tokenString == header {
				return c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "authentication required"})
			}

			subjectID, err := tokens.Verify(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "invalid session"})
			}

			c.Set(UserIDKey, subjectID)
			return next(c)
		}
	}
}
