package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenCookie   = "authToken"
	roleCookie    = "userRole"
	sessionMaxAge = 30 * 24 * time.Hour
)

// A SessionStore keeps the backend-issued token in first-party cookies.
type SessionStore struct {
	secure bool
}

func NewSessionStore(secure bool) SessionStore {
	return SessionStore{secure}
}

// Load returns the session carried by r. A request without a token yields
// the zero session.
func (s SessionStore) Load(r *http.Request) domain.Session {
	tok, err := r.Cookie(tokenCookie)
	if err != nil || tok.Value == "" {
		return domain.Session{}
	}
	sess := domain.Session{Token: tok.Value, Role: domain.RoleCustomer}
	if role, err := r.Cookie(roleCookie); err == nil && role.Value != "" {
		sess.Role = role.Value
	}
	return sess
}

func (s SessionStore) Save(w http.ResponseWriter, sess domain.Session) {
	maxAge := int(sessionMaxAge / time.Second)
	http.SetCookie(w, s.cookie(tokenCookie, sess.Token, maxAge))
	http.SetCookie(w, s.cookie(roleCookie, sess.Role, maxAge))
}

func (s SessionStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(tokenCookie, "", -1))
	http.SetCookie(w, s.cookie(roleCookie, "", -1))
}

func (s SessionStore) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionUserOf reads the display claims of the session token.
//
// The signature is not checked: the storefront only shows the name, the
// backend verifies the token on every call.
func SessionUserOf(sess domain.Session) (domain.SessionUser, bool) {
	const op = "SessionUserOf"

	if !sess.Authenticated() {
		return domain.SessionUser{}, false
	}

	user := domain.SessionUser{Role: sess.Role}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(sess.Token, claims)
	if err != nil {
		slog.Debug("opaque session token", "op", op, "err", err)
		return user, true
	}

	user.Subject, _ = claims.GetSubject()
	for _, key := range []string{"name", "fullname", "username"} {
		if v, ok := claims[key].(string); ok && v != "" {
			user.Name = v
			break
		}
	}
	if user.Name == "" {
		user.Name = user.Subject
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		user.Role = role
	}
	return user, true
}
