package handler

import (
	"net/http"
	"time"

	"ideadrop/config"
)

// RefreshCookieName is the cookie carrying the refresh token. The
// token travels only through this HTTP-only cookie, never through a
// request body.
const RefreshCookieName = "refreshToken"

// newRefreshCookie builds the refresh-token cookie. Production gets
// Secure plus SameSite=None so the browser sends it on cross-site
// requests from the deployed frontend; development stays Lax over
// plain HTTP.
func newRefreshCookie(cfg *config.Config, token string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.IsProduction() {
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}

// clearedRefreshCookie expires the refresh cookie on the client.
func clearedRefreshCookie(cfg *config.Config) *http.Cookie {
	cookie := newRefreshCookie(cfg, "", 0)
	cookie.MaxAge = -1

	return cookie
}
