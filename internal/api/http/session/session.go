// Package session carries the form session id between requests.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/cadastro/internal/config"
)

// Header lets script clients send the session id without cookies.
const Header = "X-Form-Session"

func ID(c *gin.Context, cfg config.Session) string {
	if id := c.GetHeader(Header); id != "" {
		return id
	}
	id, err := c.Cookie(cfg.CookieName)
	if err != nil {
		return ""
	}
	return id
}

// Set sends id back as cookie and header so the client keeps using it.
func Set(c *gin.Context, cfg config.Session, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, id, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
	c.Header(Header, id)
}
