package client

import (
	"context"
	"net/http"
)

// AuthAPI covers register/login/logout/me.
type AuthAPI struct {
	c *Client
}

type registerRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type registerResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register creates an account and returns the new user plus their token.
// The token is not installed on the client; that is the session's job.
func (a *AuthAPI) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*User, string, error) {
	var resp registerResponse
	err := a.c.doJSON(ctx, http.MethodPost, "/register", nil, registerRequest{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: passwordConfirmation,
	}, &resp)
	if err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

// Login exchanges credentials for a token.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := a.c.doJSON(ctx, http.MethodPost, "/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Logout revokes the current token server-side.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.doJSON(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

// Me returns the authenticated user's public profile.
func (a *AuthAPI) Me(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := a.c.doJSON(ctx, http.MethodGet, "/me", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
