package adminsdk

import (
	"context"
	"net/http"
)

type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

type AuthAPI struct {
	c *Client
}

func (c *Client) Auth() *AuthAPI {
	return &AuthAPI{c: c}
}

// Login authenticates and installs the returned token on the client, so
// subsequent calls are authorized.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := a.c.sendJSON(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	a.c.SetToken(result.Token)
	return &result, nil
}

func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return a.c.sendJSON(ctx, http.MethodPost, "/auth/forgot-password", body, nil)
}

func (a *AuthAPI) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return a.c.sendJSON(ctx, http.MethodPost, "/auth/reset-password", body, nil)
}
