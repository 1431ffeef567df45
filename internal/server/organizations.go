package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetOrganization(c *gin.Context) {
	if _, ok := identityFromContext(c); !ok {
		AbortWithError(c, ErrUnauthenticated)
		return
	}

	orgID := strings.TrimSpace(c.Param("orgId"))
	if orgID == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.organizationSvc.Get(c.Request.Context(), orgID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) GetOrganizationLogo(c *gin.Context) {
	if _, ok := identityFromContext(c); !ok {
		AbortWithError(c, ErrUnauthenticated)
		return
	}

	orgID := strings.TrimSpace(c.Param("orgId"))
	if orgID == "" || strings.ContainsAny(orgID, "/\\") {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	obj, err := s.blobs.Open(c.Request.Context(), organizationLogoPath(orgID))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, obj.Size, contentType, obj.Body, map[string]string{
		"Cache-Control": "private, max-age=300",
	})
}

func organizationLogoPath(orgID string) string {
	return "organizations/" + orgID + "/logo"
}
