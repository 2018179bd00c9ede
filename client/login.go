package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-reco-client/api"
	"github.com/jrsteele09/go-reco-client/models"
)

// LoginOption customises a login request.
type LoginOption func(map[string]any)

// WithFrontendUserID binds the session to a frontend user, for accounts with
// the frontend role.
func WithFrontendUserID(frontendUserID any) LoginOption {
	return func(body map[string]any) {
		body["frontend_user_id"] = frontendUserID
	}
}

// LoginRoot logins with the root account, without selecting a database.
// Endpoint: POST login/root/
func (c *Client) LoginRoot(ctx context.Context, email, password string) (*models.LoginRootResult, error) {
	if email == "" {
		return nil, errors.New("[LoginRoot] email is required")
	}
	if password == "" {
		return nil, errors.New("[LoginRoot] password is required")
	}

	var result models.LoginRootResult
	err := c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "login/root/",
		Body:   map[string]any{"email": email, "password": password},
		Public: true,
	}, &result)
	if err != nil {
		return nil, err
	}

	// A root session has no refresh token and no database.
	c.setLoginData(result.Token, "", nil, email)
	return &result, nil
}

// LoginIndividual logins on a database with an individual account, using an
// email and password combination.
// Endpoint: POST login/individual/
func (c *Client) LoginIndividual(ctx context.Context, email, password, dbID string, options ...LoginOption) (*models.LoginResult, error) {
	if email == "" {
		return nil, errors.New("[LoginIndividual] email is required")
	}
	if password == "" {
		return nil, errors.New("[LoginIndividual] password is required")
	}
	if dbID == "" {
		return nil, errors.New("[LoginIndividual] dbID is required")
	}

	body := map[string]any{"email": email, "password": password, "db_id": dbID}
	for _, opt := range options {
		opt(body)
	}
	return c.loginDatabase(ctx, "login/individual/", body, email)
}

// LoginService logins on a database with a service account, using a service
// name and password combination.
// Endpoint: POST login/service/
func (c *Client) LoginService(ctx context.Context, name, password, dbID string, options ...LoginOption) (*models.LoginResult, error) {
	if name == "" {
		return nil, errors.New("[LoginService] name is required")
	}
	if password == "" {
		return nil, errors.New("[LoginService] password is required")
	}
	if dbID == "" {
		return nil, errors.New("[LoginService] dbID is required")
	}

	body := map[string]any{"name": name, "password": password, "db_id": dbID}
	for _, opt := range options {
		opt(body)
	}
	return c.loginDatabase(ctx, "login/service/", body, name)
}

func (c *Client) loginDatabase(ctx context.Context, path string, body map[string]any, loginName string) (*models.LoginResult, error) {
	var result models.LoginResult
	err := c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
		Public: true,
	}, &result)
	if err != nil {
		return nil, err
	}

	c.setLoginData(result.Token, result.RefreshToken, result.Database, loginName)
	return &result, nil
}

// LoginRefreshToken logins on a database using a refresh token. It is also
// invoked internally when an expired bearer token is detected; it bypasses
// the retry wrapper so a refresh can never trigger another refresh.
// Endpoint: POST login/refresh-token/
func (c *Client) LoginRefreshToken(ctx context.Context, refreshToken string) (*models.LoginResult, error) {
	if refreshToken == "" {
		return nil, errors.New("[LoginRefreshToken] refreshToken is required")
	}

	var result models.LoginResult
	err := c.pipeline.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "login/refresh-token/",
		Body:   map[string]any{"refresh_token": refreshToken},
		Public: true,
	}, &result)
	if err != nil {
		return nil, err
	}

	// A refreshed session carries no identity name.
	c.setLoginData(result.Token, result.RefreshToken, result.Database, "")
	return &result, nil
}

// Logout drops all session state locally. No network call is made.
func (c *Client) Logout() {
	c.resetLoginData()
}
