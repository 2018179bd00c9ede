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

// ListAllItemProperties retrieves all item-property schemas of the current
// database.
// Endpoint: GET items-properties/
func (c *Client) ListAllItemProperties(ctx context.Context) (*models.ListAllItemPropertiesResult, error) {
	var result models.ListAllItemPropertiesResult
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "items-properties/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateItemProperty creates a new item-property, identified by its name
// (case-insensitive). The names "user_id" and "item_id" are reserved.
// Endpoint: POST items-properties/
func (c *Client) CreateItemProperty(ctx context.Context, propertyName, valueType string, repeated bool) error {
	if propertyName == "" {
		return errors.New("[CreateItemProperty] propertyName is required")
	}
	if valueType == "" {
		return errors.New("[CreateItemProperty] valueType is required")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "items-properties/",
		Body: map[string]any{
			"property_name": propertyName,
			"value_type":    valueType,
			"repeated":      repeated,
		},
	}, nil)
}

// GetItemProperty retrieves one item-property schema.
// Endpoint: GET items-properties/{name}/
func (c *Client) GetItemProperty(ctx context.Context, propertyName string) (*models.Property, error) {
	if propertyName == "" {
		return nil, errors.New("[GetItemProperty] propertyName is required")
	}

	var result models.Property
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "items-properties/" + url.PathEscape(propertyName) + "/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteItemProperty deletes an item-property and all its values.
// Endpoint: DELETE items-properties/{name}/
func (c *Client) DeleteItemProperty(ctx context.Context, propertyName string) error {
	if propertyName == "" {
		return errors.New("[DeleteItemProperty] propertyName is required")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "items-properties/" + url.PathEscape(propertyName) + "/",
	}, nil)
}

// GetItem retrieves one item given its id.
// Endpoint: GET items/{id}/
func (c *Client) GetItem(ctx context.Context, itemID any) (*models.Item, error) {
	segment, err := utils.IDPathSegment(itemID)
	if err != nil {
		return nil, errors.Wrap(err, "[GetItem] itemID")
	}

	var result models.GetItemResult
	err = c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "items/" + segment + "/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result.Item, nil
}

// CreateOrUpdateItem creates a new item, or updates it if the item id already
// exists. All properties need to be defined beforehand. The item id travels
// in the URL, never in the payload.
// Endpoint: PUT items/{id}/
func (c *Client) CreateOrUpdateItem(ctx context.Context, item *models.Item) error {
	if item == nil {
		return errors.New("[CreateOrUpdateItem] item is required")
	}
	segment, err := utils.IDPathSegment(item.ItemID())
	if err != nil {
		return errors.Wrap(err, "[CreateOrUpdateItem] item_id property")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodPut,
		Path:   "items/" + segment + "/",
		Body:   map[string]any{"item": item.BodyProps()},
	}, nil)
}

// CreateOrUpdateItemsBulk creates many items, or updates the ones whose
// item_id already exists. Items are sent in sequential chunks; on failure the
// surfaced error carries the index of the last item sent successfully.
// A chunkSize of zero uses the client default.
// Endpoint: PUT items-bulk/
func (c *Client) CreateOrUpdateItemsBulk(ctx context.Context, items []models.Item, chunkSize int) error {
	if len(items) == 0 {
		return errors.New("[CreateOrUpdateItemsBulk] items are required")
	}
	return sendChunked(ctx, c, http.MethodPut, "items-bulk/", "items", items, chunkSize)
}

// ListAllItemsBulk retrieves one cursor-paginated page of all items. Nil amt
// uses the server default.
// Endpoint: GET items-bulk/
func (c *Client) ListAllItemsBulk(ctx context.Context, amt *int, cursor string) (*models.ListAllItemsBulkResult, error) {
	query := url.Values{}
	if amt != nil {
		query.Set("amt", strconv.Itoa(*amt))
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var result models.ListAllItemsBulkResult
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "items-bulk/",
		Query:  query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListItemsByIDs retrieves multiple items given their ids. The response is
// not aligned with the input; missing items are simply absent.
// Endpoint: POST items-bulk/list/
func (c *Client) ListItemsByIDs(ctx context.Context, itemIDs []any) (*models.ListItemsByIDsResult, error) {
	if len(itemIDs) == 0 {
		return nil, errors.New("[ListItemsByIDs] itemIDs are required")
	}

	var result models.ListItemsByIDsResult
	err := c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "items-bulk/list/",
		Body:   map[string]any{"items_id": itemIDs},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
