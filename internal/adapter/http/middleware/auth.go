package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"logistics_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errNotLoggedIn = pkg.NewDomainErrorSimple("UNAUTHORIZED", "You are not logged in", http.StatusUnauthorized)

// RequireToken rejects requests whose Authorization header does not carry
// "Bearer <token>". An empty token lets every request through.
func RequireToken(token string) gin.HandlerFunc {
	if token == "" {
		log.Printf("[auth][middleware] AUTH_TOKEN not set; auth gate disabled")
		return func(c *gin.Context) { c.Next() }
	}

	expected := []byte(token)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		got, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), expected) != 1 {
			c.AbortWithStatusJSON(errNotLoggedIn.HTTPStatus, errNotLoggedIn.ToHTTPError())
			return
		}
		c.Next()
	}
}
