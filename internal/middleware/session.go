package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classifieds/internal/modules/auth"
	"classifieds/internal/pkg/response"
)

// Session guards protected routes with the same cookie contract as
// GET /api/auth: a valid access token passes, an expired one is refreshed
// once from the refresh cookie, anything else is a 401. The refreshed access
// token rides out on this response's Set-Cookie.
func Session(sessions *auth.SessionController, cookies *auth.CookieWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, _ := c.Cookie(auth.AccessCookieName)
		refreshToken, _ := c.Cookie(auth.RefreshCookieName)

		outcome := sessions.CheckSession(accessToken, refreshToken)
		if !outcome.Authenticated {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
			c.Abort()
			return
		}

		if outcome.Refreshed {
			cookies.SetAccess(c, outcome.NewAccessToken)
		}

		c.Set("principal_id", outcome.Identity.PrincipalID)
		c.Set("username", outcome.Identity.Username)
		c.Set("role", outcome.Identity.Role)
		c.Set("entity", string(outcome.Identity.Entity))

		c.Next()
	}
}

// PrincipalID extracts the authenticated principal id from the context.
func PrincipalID(c *gin.Context) string {
	return c.GetString("principal_id")
}
