// Package session implements the browser session as an explicit signed
// token: an HS256 JWT carrying the authenticated customer's public profile,
// issued on login, carried in an HttpOnly cookie and validated on every
// protected request.  Expiry is enforced by the token itself, so no
// server-side session table is needed.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie under which the session token travels.
const CookieName = "ticket_session"

// Profile is the identity record established at login.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrInvalid covers every verification failure: bad signature, malformed
// token, wrong algorithm or expired session.
var ErrInvalid = errors.New("invalid session token")

// Issue builds and signs a session token for a customer.  The JWT carries
// the subject (customer ID), display name, email, expiration and issued-at
// claims.
func Issue(secret string, ttl time.Duration, p Profile) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   p.ID,
		"name":  p.Name,
		"email": p.Email,
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a session token and returns the profile it
// carries.  Tokens signed with a different algorithm are rejected before the
// signature is checked.
func Verify(secret, token string) (Profile, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Profile{}, ErrInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Profile{}, ErrInvalid
	}
	sub, ok := claims["sub"].(float64) // JSON numbers decode as float64
	if !ok {
		return Profile{}, ErrInvalid
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	return Profile{ID: int64(sub), Name: name, Email: email}, nil
}

// NewCookie wraps a session token in the cookie handed to the browser.
func NewCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie returns a cookie that removes the session from the browser.
func ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
