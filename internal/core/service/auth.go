package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/internal/core/port"
)

const (
	msgTermsRequired    = "Vui lòng đồng ý với Điều khoản và Chính sách để tiếp tục!"
	msgPasswordMismatch = "Mật khẩu xác nhận không khớp!"
	msgFieldRequired    = "Vui lòng nhập đầy đủ thông tin bắt buộc."
	msgLoginFailed      = "Đăng nhập thất bại"
	msgSignupFailed     = "Đăng ký thất bại"
	msgLoginSucceeded   = "Đăng nhập thành công!"
	msgSignupSucceeded  = "Đăng ký thành công! Vui lòng đăng nhập."
)

var _ port.AuthForm = (*AuthForm)(nil)

// An AuthForm is the two-mode login/signup form.
//
// At most one submission is in flight at a time; the submitting flag is
// cleared whatever the outcome.
type AuthForm struct {
	authenticator port.Authenticator
	registrar     port.Registrar

	mu         sync.Mutex
	mode       domain.AuthMode
	data       domain.AuthFormData
	submitting bool
}

func NewAuthForm(
	authenticator port.Authenticator,
	registrar port.Registrar,
	mode domain.AuthMode,
	data domain.AuthFormData,
) *AuthForm {
	return &AuthForm{
		authenticator: authenticator,
		registrar:     registrar,
		mode:          mode,
		data:          data,
	}
}

func (f *AuthForm) Mode() domain.AuthMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *AuthForm) Data() domain.AuthFormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *AuthForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Toggle switches between login and signup keeping everything entered.
func (f *AuthForm) Toggle() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == domain.ModeLogin {
		f.mode = domain.ModeSignup
		return
	}
	f.mode = domain.ModeLogin
}

func (f *AuthForm) SetMode(m domain.AuthMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = m
}

// RequiredFields lists the form fields enforced in mode m.
func RequiredFields(m domain.AuthMode) []string {
	if m == domain.ModeSignup {
		return []string{
			"name", "email", "phone_number", "address",
			"username", "password", "confirmPassword",
		}
	}
	return []string{"username", "password"}
}

func (f *AuthForm) Submit(ctx context.Context) (domain.AuthOutcome, error) {
	const op = "AuthForm.Submit"
	log := slog.With("op", op)

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return domain.AuthOutcome{}, fmt.Errorf("%s: %w", op, domain.ErrSubmitInProgress)
	}
	mode, data := f.mode, f.data
	if err := validate(mode, data); err != nil {
		f.mu.Unlock()
		log.Debug("local validation failed", "mode", mode, "err", err)
		return domain.AuthOutcome{}, err
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if mode == domain.ModeSignup {
		return f.signup(ctx, data)
	}
	return f.login(ctx, data)
}

func (f *AuthForm) login(
	ctx context.Context, data domain.AuthFormData,
) (domain.AuthOutcome, error) {
	const op = "AuthForm.login"
	log := slog.With("op", op)

	session, err := f.authenticator.Login(ctx, domain.Credentials{
		Username: strings.TrimSpace(data.Username),
		Password: data.Password,
		Role:     domain.RoleCustomer,
	})
	if err != nil {
		log.Warn("login rejected", "err", err)
		return domain.AuthOutcome{}, submitError(err, msgLoginFailed)
	}

	if session.Role == "" {
		session.Role = domain.RoleCustomer
	}
	return domain.AuthOutcome{
		Session:  session,
		Redirect: "/",
		Notice:   msgLoginSucceeded,
	}, nil
}

func (f *AuthForm) signup(
	ctx context.Context, data domain.AuthFormData,
) (domain.AuthOutcome, error) {
	const op = "AuthForm.signup"
	log := slog.With("op", op)

	err := f.registrar.Signup(ctx, domain.Registration{
		Name:        strings.TrimSpace(data.Name),
		Email:       strings.TrimSpace(data.Email),
		Username:    strings.TrimSpace(data.Username),
		Password:    data.Password,
		PhoneNumber: strings.TrimSpace(data.PhoneNumber),
		Address:     strings.TrimSpace(data.Address),
	})
	if err != nil {
		log.Warn("signup rejected", "err", err)
		return domain.AuthOutcome{}, submitError(err, msgSignupFailed)
	}

	f.mu.Lock()
	f.mode = domain.ModeLogin
	f.data.Password = ""
	f.data.ConfirmPassword = ""
	f.mu.Unlock()

	return domain.AuthOutcome{Notice: msgSignupSucceeded}, nil
}

func validate(m domain.AuthMode, d domain.AuthFormData) error {
	values := map[string]string{
		"name":            d.Name,
		"email":           d.Email,
		"phone_number":    d.PhoneNumber,
		"address":         d.Address,
		"username":        d.Username,
		"password":        d.Password,
		"confirmPassword": d.ConfirmPassword,
	}
	for _, field := range RequiredFields(m) {
		if strings.TrimSpace(values[field]) == "" {
			return &domain.ValidationError{Field: field, Message: msgFieldRequired}
		}
	}

	if m != domain.ModeSignup {
		return nil
	}
	if !d.AcceptTerms {
		return &domain.ValidationError{Field: "terms", Message: msgTermsRequired}
	}
	if d.Password != d.ConfirmPassword {
		return &domain.ValidationError{
			Field: "confirmPassword", Message: msgPasswordMismatch,
		}
	}
	return nil
}

// submitError prefers the backend's own message over the fallback.
func submitError(err error, fallback string) error {
	msg := fallback
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.Detail != "" {
		msg = remote.Detail
	}
	return &domain.SubmitError{Message: msg, Err: err}
}
