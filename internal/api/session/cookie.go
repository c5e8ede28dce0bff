// Package session issues and clears the HTTP-only cookie that carries the
// session token.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const CookieName = "token"

// Cookies holds the attributes shared by every session cookie the API
// writes. Clear must use the same attributes as Issue or browsers keep the
// earlier cookie.
type Cookies struct {
	Secure   bool
	SameSite http.SameSite
	TTL      time.Duration
}

// NewCookies returns cross-site secure cookies in production and lax,
// plain-HTTP cookies otherwise.
func NewCookies(production bool, ttl time.Duration) Cookies {
	if production {
		return Cookies{Secure: true, SameSite: http.SameSiteNoneMode, TTL: ttl}
	}
	return Cookies{SameSite: http.SameSiteLaxMode, TTL: ttl}
}

func (k Cookies) Issue(c echo.Context, token string, expiresAt time.Time) {
	cookie := k.base()
	cookie.Value = token
	cookie.Expires = expiresAt
	cookie.MaxAge = int(k.TTL / time.Second)
	c.SetCookie(cookie)
}

func (k Cookies) Clear(c echo.Context) {
	cookie := k.base()
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

// Read returns the session token, or "" when the request carries none.
func Read(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (k Cookies) base() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   k.Secure,
		SameSite: k.SameSite,
	}
}
