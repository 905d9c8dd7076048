package api

import sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"

// Register creates an account and returns the issued token plus the
// public user projection.
func (c *Client) Register(name, email, password string) (sm.AuthResponse, error) {
	req := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	var resp sm.AuthResponse
	if err := c.PostJSON("/api/auth/register", req, &resp, ""); err != nil {
		return sm.AuthResponse{}, err
	}
	return resp, nil
}

// Login verifies credentials and returns a fresh token plus the public
// user projection.
func (c *Client) Login(email, password string) (sm.AuthResponse, error) {
	req := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp sm.AuthResponse
	if err := c.PostJSON("/api/auth/login", req, &resp, ""); err != nil {
		return sm.AuthResponse{}, err
	}
	return resp, nil
}

// Me fetches the caller's own account using the stored token.
func (c *Client) Me(token string) (sm.UserProjection, error) {
	var resp sm.UserProjection
	if err := c.GetJSON("/api/auth/me", &resp, token); err != nil {
		return sm.UserProjection{}, err
	}
	return resp, nil
}
