package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/cadastro/internal/api/http/session"
)

const sessionCtx = "formSession"

func (h *Handler) sessionMiddleware(c *gin.Context) {
	c.Set(sessionCtx, session.ID(c, h.config.Session))
	c.Next()
}

func getSessionID(c *gin.Context) string {
	return c.GetString(sessionCtx)
}
