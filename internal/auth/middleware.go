package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "session_id"

const contextKeyIdentity = "identity"

// IdentityFromContext returns the actor set by RequireSession.
// Zero value if not set.
func IdentityFromContext(c *gin.Context) Identity {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return Identity{}
	}
	id, ok := v.(Identity)
	if !ok {
		return Identity{}
	}
	return id
}

// RequireSession returns a middleware that checks for a valid session cookie
// and sets the acting identity in context. If missing or invalid, responds with 401.
func RequireSession(sessions *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		identity, ok := sessions.Get(c.Request.Context(), sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(contextKeyIdentity, identity)
		c.Next()
	}
}
