package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vibe-gaming/cadastro/internal/config"
)

var cfg = config.Session{CookieName: "form_session", TTL: time.Minute}

func TestIDPrefersHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "form_session", Value: "from-cookie"})

	assert.Equal(t, "from-cookie", ID(c, cfg))

	c.Request.Header.Set(Header, "from-header")
	assert.Equal(t, "from-header", ID(c, cfg))
}

func TestSetWritesCookieAndHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Set(c, cfg, "abc")

	assert.Equal(t, "abc", rec.Header().Get(Header))
	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, "form_session", cookies[0].Name)
		assert.Equal(t, "abc", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	}
}
