package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-reco-client/api"
	"github.com/jrsteele09/go-reco-client/apierror"
	"github.com/jrsteele09/go-reco-client/models"
)

// ListAllAccounts retrieves all the accounts of the organization. Requires a
// root or manager session.
// Endpoint: GET organizations/current/accounts/
func (c *Client) ListAllAccounts(ctx context.Context) (*models.ListAllAccountsResult, error) {
	var result models.ListAllAccountsResult
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "organizations/current/accounts/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateIndividualAccount creates a new account identified by an email
// address. The account must be verified before it can login.
// Endpoint: POST accounts/individual/
func (c *Client) CreateIndividualAccount(ctx context.Context, email, password, role, firstName, lastName string) (*models.CreatedAccount, error) {
	if email == "" {
		return nil, errors.New("[CreateIndividualAccount] email is required")
	}
	if password == "" {
		return nil, errors.New("[CreateIndividualAccount] password is required")
	}
	if role == "" {
		return nil, errors.New("[CreateIndividualAccount] role is required")
	}

	var result models.CreatedAccount
	err := c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "accounts/individual/",
		Body: map[string]any{
			"email":      email,
			"password":   password,
			"role":       role,
			"first_name": firstName,
			"last_name":  lastName,
		},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteIndividualAccount deletes an individual account. Deleting the account
// of the active session resets all session state.
// Endpoint: DELETE accounts/individual/
func (c *Client) DeleteIndividualAccount(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("[DeleteIndividualAccount] email is required")
	}

	err := c.send(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "accounts/individual/",
		Body:   map[string]any{"email": email},
	}, nil)
	if err != nil {
		return err
	}

	c.resetIfSelf(email)
	return nil
}

// CreateServiceAccount creates a new account identified by a service name.
// Endpoint: POST accounts/service/
func (c *Client) CreateServiceAccount(ctx context.Context, name, password, role string) (*models.CreatedAccount, error) {
	if name == "" {
		return nil, errors.New("[CreateServiceAccount] name is required")
	}
	if password == "" {
		return nil, errors.New("[CreateServiceAccount] password is required")
	}
	if role == "" {
		return nil, errors.New("[CreateServiceAccount] role is required")
	}

	var result models.CreatedAccount
	err := c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "accounts/service/",
		Body: map[string]any{
			"name":     name,
			"password": password,
			"role":     role,
		},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteServiceAccount deletes a service account. Deleting the account of the
// active session resets all session state.
// Endpoint: DELETE accounts/service/
func (c *Client) DeleteServiceAccount(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("[DeleteServiceAccount] name is required")
	}

	err := c.send(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "accounts/service/",
		Body:   map[string]any{"name": name},
	}, nil)
	if err != nil {
		return err
	}

	c.resetIfSelf(name)
	return nil
}

// ResendVerificationCode resends the email verification code.
// Endpoint: PUT accounts/resend-verification-code/
func (c *Client) ResendVerificationCode(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("[ResendVerificationCode] email is required")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodPut,
		Path:   "accounts/resend-verification-code/",
		Body:   map[string]any{"email": email},
		Public: true,
	}, nil)
}

// VerifyAccount verifies the email of a created account.
// Endpoint: GET accounts/verify/
func (c *Client) VerifyAccount(ctx context.Context, email, code string) error {
	if email == "" {
		return errors.New("[VerifyAccount] email is required")
	}
	if code == "" {
		return errors.New("[VerifyAccount] code is required")
	}

	query := url.Values{}
	query.Set("email", email)
	query.Set("code", code)
	return c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "accounts/verify/",
		Query:  query,
		Public: true,
	}, nil)
}

// DeleteCurrentAccount deletes the account of the active session and resets
// all session state. Fails locally when no session is active.
// Endpoint: DELETE accounts/
func (c *Client) DeleteCurrentAccount(ctx context.Context) error {
	if !c.pipeline.HasToken() {
		return apierror.LocalPrecondition(apierror.ErrNoActiveSession)
	}

	err := c.send(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "accounts/",
	}, nil)
	if err != nil {
		return err
	}

	c.resetLoginData()
	return nil
}

// resetIfSelf resets the session when the deleted identity matches the
// session's login name, compared case-insensitively.
func (c *Client) resetIfSelf(deletedName string) {
	if strings.EqualFold(deletedName, c.LoginName()) && c.LoginName() != "" {
		c.resetLoginData()
	}
}
