package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Annotate returns a middleware that attaches an Identity to every request.
// It never rejects: a missing or invalid bearer token just leaves the request
// unauthenticated, and resolvers decide what that means for each operation.
func Annotate(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw := header
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			raw = strings.TrimSpace(header[len("bearer "):])
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.Next()
			return
		}

		ctx := WithIdentity(c.Request.Context(), Identity{
			UserID:        claims.UserID,
			Email:         claims.Email,
			Authenticated: true,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
