package apiclient

import (
	"context"
	"net/http"
)

// Login authenticates against the backend. The session cookie rides back
// on the response; the returned User is the new session record.
func (c *Client) Login(ctx context.Context, creds Credentials) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser probes the backend for the identity behind the current
// cookie. An expired or missing session surfaces as a 401 APIError.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/current", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates an account. It does not log the new user in.
func (c *Client) Register(ctx context.Context, profile Profile) error {
	return c.do(ctx, http.MethodPost, "/auth/register", profile, nil)
}
