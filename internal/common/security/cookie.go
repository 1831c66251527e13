package security

import (
	"net/http"

	"codearena/internal/platform/config"
)

// SessionCookie mirrors the contest token for the route gate, which
// must authenticate page requests without a bearer header. The gateway
// is the only writer of this cookie.
const SessionCookie = "contest_token"

func NewSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(config.AppConfig.JWTExp.Seconds()),
		SameSite: http.SameSiteStrictMode,
	}
}

func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteStrictMode,
	}
}
