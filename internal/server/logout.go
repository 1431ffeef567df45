package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/console/internal/config"
)

// Logout clears the session cookie and sends the browser to the login page.
// It succeeds whether or not a session was present.
func (s *Server) Logout(c *gin.Context) {
	s.sessions.Clear(c)
	c.Redirect(http.StatusFound, s.loginURL())
}

func (s *Server) loginURL() string {
	base := strings.TrimRight(strings.TrimSpace(s.cfg.PublicAppURL), "/")
	if base == "" {
		base = config.DefaultPublicAppURL
	}
	return base + "/login"
}
