package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-reco-client/api"
	"github.com/jrsteele09/go-reco-client/internal/utils"
	"github.com/jrsteele09/go-reco-client/models"
)

// ListAllUserProperties retrieves all user-property schemas of the current
// database.
// Endpoint: GET users-properties/
func (c *Client) ListAllUserProperties(ctx context.Context) (*models.ListAllUserPropertiesResult, error) {
	var result models.ListAllUserPropertiesResult
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "users-properties/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateUserProperty creates a new user-property, identified by its name
// (case-insensitive). The names "user_id" and "item_id" are reserved.
// Endpoint: POST users-properties/
func (c *Client) CreateUserProperty(ctx context.Context, propertyName, valueType string, repeated bool) error {
	if propertyName == "" {
		return errors.New("[CreateUserProperty] propertyName is required")
	}
	if valueType == "" {
		return errors.New("[CreateUserProperty] valueType is required")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "users-properties/",
		Body: map[string]any{
			"property_name": propertyName,
			"value_type":    valueType,
			"repeated":      repeated,
		},
	}, nil)
}

// GetUserProperty retrieves one user-property schema.
// Endpoint: GET users-properties/{name}/
func (c *Client) GetUserProperty(ctx context.Context, propertyName string) (*models.Property, error) {
	if propertyName == "" {
		return nil, errors.New("[GetUserProperty] propertyName is required")
	}

	var result models.Property
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "users-properties/" + url.PathEscape(propertyName) + "/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUserProperty deletes a user-property and all its values.
// Endpoint: DELETE users-properties/{name}/
func (c *Client) DeleteUserProperty(ctx context.Context, propertyName string) error {
	if propertyName == "" {
		return errors.New("[DeleteUserProperty] propertyName is required")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "users-properties/" + url.PathEscape(propertyName) + "/",
	}, nil)
}

// GetUser retrieves one user given its id.
// Endpoint: GET users/{id}/
func (c *Client) GetUser(ctx context.Context, userID any) (*models.User, error) {
	segment, err := utils.IDPathSegment(userID)
	if err != nil {
		return nil, errors.Wrap(err, "[GetUser] userID")
	}

	var result models.GetUserResult
	err = c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "users/" + segment + "/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result.User, nil
}

// CreateOrUpdateUser creates a new user, or updates it if the user id already
// exists. All properties need to be defined beforehand. The user id travels
// in the URL, never in the payload.
// Endpoint: PUT users/{id}/
func (c *Client) CreateOrUpdateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("[CreateOrUpdateUser] user is required")
	}
	segment, err := utils.IDPathSegment(user.UserID())
	if err != nil {
		return errors.Wrap(err, "[CreateOrUpdateUser] user_id property")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodPut,
		Path:   "users/" + segment + "/",
		Body:   map[string]any{"user": user.BodyProps()},
	}, nil)
}

// CreateOrUpdateUsersBulk creates many users, or updates the ones whose
// user_id already exists. Users are sent in sequential chunks; on failure the
// surfaced error carries the index of the last user sent successfully.
// A chunkSize of zero uses the client default.
// Endpoint: PUT users-bulk/
func (c *Client) CreateOrUpdateUsersBulk(ctx context.Context, users []models.User, chunkSize int) error {
	if len(users) == 0 {
		return errors.New("[CreateOrUpdateUsersBulk] users are required")
	}
	return sendChunked(ctx, c, http.MethodPut, "users-bulk/", "users", users, chunkSize)
}

// ListAllUsersBulk retrieves one cursor-paginated page of all users. Nil amt
// uses the server default.
// Endpoint: GET users-bulk/
func (c *Client) ListAllUsersBulk(ctx context.Context, amt *int, cursor string) (*models.ListAllUsersBulkResult, error) {
	query := url.Values{}
	if amt != nil {
		query.Set("amt", strconv.Itoa(*amt))
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var result models.ListAllUsersBulkResult
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "users-bulk/",
		Query:  query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListUsersByIDs retrieves multiple users given their ids. The response is
// not aligned with the input; missing users are simply absent.
// Endpoint: POST users-bulk/list/
func (c *Client) ListUsersByIDs(ctx context.Context, userIDs []any) (*models.ListUsersByIDsResult, error) {
	if len(userIDs) == 0 {
		return nil, errors.New("[ListUsersByIDs] userIDs are required")
	}

	var result models.ListUsersByIDsResult
	err := c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "users-bulk/list/",
		Body:   map[string]any{"users_id": userIDs},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
