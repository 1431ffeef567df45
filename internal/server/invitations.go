package server

import "github.com/gin-gonic/gin"

func (s *Server) ListInvitations(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		AbortWithError(c, ErrUnauthenticated)
		return
	}

	items, err := s.invitationSvc.ListPending(c.Request.Context(), identity.UID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, items)
}
