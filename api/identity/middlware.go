package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxfahl/Labyrinths/service/i"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

var ErrMissingUser = errors.New("request carries no user")

// Authoriz rejects requests without a valid bearer token and stores the
// token claims under ContextUserClaims.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user of the request.
func UserID(c *gin.Context) (uuid.UUID, error) {
	claims := c.GetStringMap(ContextUserClaims)
	raw, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, ErrMissingUser
	}
	return uuid.Parse(raw)
}
