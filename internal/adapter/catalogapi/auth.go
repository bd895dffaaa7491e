package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/auracraft/storefront/internal/core/domain"
)

func (c *Client) Login(
	ctx context.Context, creds domain.Credentials,
) (domain.Session, error) {
	const op = "Client.Login"

	data, err := c.do(ctx, http.MethodPost, "/login/", nil, loginRequest{
		Username: creds.Username,
		Password: creds.Password,
		Role:     creds.Role,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	var token tokenResponse
	if err := json.Unmarshal(data, &token); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w: %w",
			op, domain.ErrMalformedResponse, err)
	}
	if token.AccessToken == "" {
		return domain.Session{}, fmt.Errorf("%s: no access token: %w",
			op, domain.ErrMalformedResponse)
	}

	return domain.Session{Token: token.AccessToken, Role: creds.Role}, nil
}

func (c *Client) Signup(ctx context.Context, r domain.Registration) error {
	const op = "Client.Signup"

	_, err := c.do(ctx, http.MethodPost, "/register/signup", nil, signupRequest{
		Name:        r.Name,
		Email:       r.Email,
		Username:    r.Username,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
