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

// RecommendItemToItems retrieves items similar to a given item. Nil amt uses
// the server default; filters restrict results on item properties.
// Endpoint: GET recommendation/items/{id}/items/
func (c *Client) RecommendItemToItems(ctx context.Context, itemID any, amt *int, cursor string, filters []models.Filter) (*models.RecoItemsResult, error) {
	itemSegment, err := utils.IDPathSegment(itemID)
	if err != nil {
		return nil, errors.Wrap(err, "[RecommendItemToItems] itemID")
	}

	query := recoQuery(amt, cursor, filters)
	var result models.RecoItemsResult
	err = c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "recommendation/items/" + itemSegment + "/items/",
		Query:  query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SessionRecoParams describes an anonymous-session recommendation query. All
// fields are optional; zero values are omitted from the request.
type SessionRecoParams struct {
	// Ratings is the session's rating history.
	Ratings []models.RecoItemRating
	// UserProperties describe the anonymous user.
	UserProperties *models.PropertyBag
	// Filters restrict results on item properties.
	Filters []models.Filter
	// ExcludeRatedItems removes already rated items from the results.
	ExcludeRatedItems bool
	// Amt is the maximum amount of items returned.
	Amt *int
	// Cursor is the pagination cursor from a previous response.
	Cursor string
}

// RecommendSessionToItems retrieves items recommended for an anonymous
// session described by ratings and user properties.
// Endpoint: POST recommendation/sessions/items/
func (c *Client) RecommendSessionToItems(ctx context.Context, params SessionRecoParams) (*models.RecoItemsResult, error) {
	body := map[string]any{}
	if len(params.Ratings) > 0 {
		body["ratings"] = params.Ratings
	}
	if params.UserProperties.Len() > 0 {
		body["user_properties"] = params.UserProperties
	}
	if filters := models.FilterStrings(params.Filters); filters != nil {
		body["filters"] = filters
	}
	if params.ExcludeRatedItems {
		body["exclude_rated_items"] = true
	}
	if params.Amt != nil {
		body["amt"] = *params.Amt
	}
	if params.Cursor != "" {
		body["cursor"] = params.Cursor
	}

	var result models.RecoItemsResult
	err := c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "recommendation/sessions/items/",
		Body:   body,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RecommendUserToItems retrieves items recommended for a known user.
// Endpoint: GET recommendation/users/{id}/items/
func (c *Client) RecommendUserToItems(ctx context.Context, userID any, amt *int, cursor string, filters []models.Filter, excludeRatedItems bool) (*models.RecoItemsResult, error) {
	userSegment, err := utils.IDPathSegment(userID)
	if err != nil {
		return nil, errors.Wrap(err, "[RecommendUserToItems] userID")
	}

	query := recoQuery(amt, cursor, filters)
	if excludeRatedItems {
		query.Set("exclude_rated_items", "true")
	}

	var result models.RecoItemsResult
	err = c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "recommendation/users/" + userSegment + "/items/",
		Query:  query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// recoQuery renders the shared recommendation query parameters; filters
// expand into repeated "filters" values.
func recoQuery(amt *int, cursor string, filters []models.Filter) url.Values {
	query := url.Values{}
	if amt != nil {
		query.Set("amt", strconv.Itoa(*amt))
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	for _, filter := range filters {
		query.Add("filters", filter.String())
	}
	return query
}
