package domain

type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeSignup
)

func (m AuthMode) String() string {
	if m == ModeSignup {
		return "signup"
	}
	return "login"
}

func ParseAuthMode(s string) AuthMode {
	if s == "signup" {
		return ModeSignup
	}
	return ModeLogin
}

// AuthFormData is the full form model. Signup-only fields stay in the model
// in login mode, they are just not enforced.
type AuthFormData struct {
	Name            string
	Email           string
	PhoneNumber     string
	Address         string
	Username        string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

// AuthOutcome is the result of a successful submission.
type AuthOutcome struct {
	Session  Session
	Redirect string
	Notice   string
}
