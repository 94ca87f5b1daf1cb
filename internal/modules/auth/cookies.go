package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"classifieds/internal/config"
)

const (
	AccessCookieName  = "access_token"
	RefreshCookieName = "refresh_token"
)

// CookieWriter applies the session cookie contract: HttpOnly, Secure in prod,
// SameSite per config, max-age equal to the matching token TTL.
type CookieWriter struct {
	path          string
	secure        bool
	sameSite      http.SameSite
	accessMaxAge  int
	refreshMaxAge int
}

func NewCookieWriter(cfg *config.AuthConfig) *CookieWriter {
	return &CookieWriter{
		path:          cfg.CookiePath,
		secure:        cfg.CookieSecure,
		sameSite:      parseSameSite(cfg.CookieSameSite),
		accessMaxAge:  int(cfg.AccessTTL / time.Second),
		refreshMaxAge: int(cfg.RefreshTTL / time.Second),
	}
}

func (w *CookieWriter) SetAccess(c *gin.Context, token string) {
	c.SetSameSite(w.sameSite)
	c.SetCookie(AccessCookieName, token, w.accessMaxAge, w.path, "", w.secure, true)
}

func (w *CookieWriter) SetRefresh(c *gin.Context, token string) {
	c.SetSameSite(w.sameSite)
	c.SetCookie(RefreshCookieName, token, w.refreshMaxAge, w.path, "", w.secure, true)
}

func (w *CookieWriter) Clear(c *gin.Context) {
	c.SetSameSite(w.sameSite)
	c.SetCookie(AccessCookieName, "", -1, w.path, "", w.secure, true)
	c.SetCookie(RefreshCookieName, "", -1, w.path, "", w.secure, true)
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
