package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-reco-client/api"
	"github.com/jrsteele09/go-reco-client/apierror"
	"github.com/jrsteele09/go-reco-client/models"
)

// CreateDatabase creates a new database. The id types describe how user and
// item identifiers are encoded (e.g. "uuid", "uint32", "S24").
// Endpoint: POST databases/
func (c *Client) CreateDatabase(ctx context.Context, name, description, itemIDType, userIDType string) (*models.CreatedDatabase, error) {
	if name == "" {
		return nil, errors.New("[CreateDatabase] name is required")
	}
	if itemIDType == "" {
		return nil, errors.New("[CreateDatabase] itemIDType is required")
	}
	if userIDType == "" {
		return nil, errors.New("[CreateDatabase] userIDType is required")
	}

	var result models.CreatedDatabase
	err := c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "databases/",
		Body: map[string]any{
			"name":         name,
			"description":  description,
			"item_id_type": itemIDType,
			"user_id_type": userIDType,
		},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAllDatabases retrieves one page of the organization's databases. Page
// numbering starts at 1; nil arguments use the server defaults.
// Endpoint: GET databases/
func (c *Client) ListAllDatabases(ctx context.Context, page, amt *int) (*models.ListAllDatabasesResult, error) {
	query := url.Values{}
	if page != nil {
		query.Set("page", strconv.Itoa(*page))
	}
	if amt != nil {
		query.Set("amt", strconv.Itoa(*amt))
	}

	var result models.ListAllDatabasesResult
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "databases/",
		Query:  query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCurrentDatabase retrieves the metadata of the database selected by the
// session.
// Endpoint: GET databases/current/
func (c *Client) GetCurrentDatabase(ctx context.Context) (*models.CurrentDatabase, error) {
	var result models.CurrentDatabase
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "databases/current/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCurrentDatabaseStatus retrieves the status of the database selected by
// the session. Recommendations are unavailable until the status is ready.
// Endpoint: GET databases/current/status/
func (c *Client) GetCurrentDatabaseStatus(ctx context.Context) (*models.CurrentDatabaseStatus, error) {
	var result models.CurrentDatabaseStatus
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "databases/current/status/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCurrentDatabase deletes the database selected by the session. The
// bearer token is retained but the database selection, refresh token and
// login name are cleared. Fails locally when no database is selected.
// Endpoint: DELETE databases/current/
func (c *Client) DeleteCurrentDatabase(ctx context.Context) error {
	if c.CurrentDatabase() == nil {
		return apierror.LocalPrecondition(apierror.ErrNoCurrentDatabase)
	}

	err := c.send(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "databases/current/",
	}, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.refreshToken = ""
	c.database = nil
	c.loginName = ""
	c.mu.Unlock()
	return nil
}
