package server

import (
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/console/internal/auth/session"
	obscontext "github.com/smallbiznis/console/internal/observability/context"
)

const contextIdentityKey = "identity"

// SessionRequired resolves the session cookie into an identity.
// A missing or rejected cookie aborts with 401; an unavailable verifier aborts with 500.
func (s *Server) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthenticated)
			return
		}

		identity, ok, err := s.identities.Resolve(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if !ok {
			AbortWithError(c, ErrUnauthenticated)
			return
		}

		ctx := obscontext.WithActorID(c.Request.Context(), identity.UID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(contextIdentityKey, identity)
		c.Next()
	}
}

func identityFromContext(c *gin.Context) (session.Identity, bool) {
	value, ok := c.Get(contextIdentityKey)
	if !ok {
		return session.Identity{}, false
	}
	identity, ok := value.(session.Identity)
	if !ok || identity.UID == "" {
		return session.Identity{}, false
	}
	return identity, true
}
