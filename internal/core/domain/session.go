package domain

import "context"

const RoleCustomer = "customer"

// A Session is the opaque credential issued by the backend on login.
type Session struct {
	Token string
	Role  string
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// SessionUser is what the storefront can show about the token holder.
// It is read from unverified claims and must not be used for authorization.
type SessionUser struct {
	Subject string
	Name    string
	Role    string
}

type (
	Credentials struct {
		Username string
		Password string
		Role     string
	}

	Registration struct {
		Name        string
		Email       string
		Username    string
		Password    string
		PhoneNumber string
		Address     string
	}
)

type sessionCtxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFrom returns the session of the request, if any.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(Session)
	return s, ok && s.Authenticated()
}
