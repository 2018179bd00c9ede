package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-reco-client/api"
	"github.com/jrsteele09/go-reco-client/internal/utils"
	"github.com/jrsteele09/go-reco-client/models"
)

// CreateOrUpdateRating creates or updates a rating of one item by one user.
// A nil timestamp means "now" server-side.
// Endpoint: PUT users/{uid}/ratings/{iid}/
func (c *Client) CreateOrUpdateRating(ctx context.Context, userID, itemID any, rating float32, timestamp *time.Time) error {
	userSegment, err := utils.IDPathSegment(userID)
	if err != nil {
		return errors.Wrap(err, "[CreateOrUpdateRating] userID")
	}
	itemSegment, err := utils.IDPathSegment(itemID)
	if err != nil {
		return errors.Wrap(err, "[CreateOrUpdateRating] itemID")
	}

	body := map[string]any{"rating": rating}
	if timestamp != nil {
		body["timestamp"] = models.UnixSeconds(*timestamp)
	}

	return c.send(ctx, api.Request{
		Method: http.MethodPut,
		Path:   "users/" + userSegment + "/ratings/" + itemSegment + "/",
		Body:   body,
	}, nil)
}

// DeleteRating deletes a single rating.
// Endpoint: DELETE users/{uid}/ratings/{iid}/
func (c *Client) DeleteRating(ctx context.Context, userID, itemID any) error {
	userSegment, err := utils.IDPathSegment(userID)
	if err != nil {
		return errors.Wrap(err, "[DeleteRating] userID")
	}
	itemSegment, err := utils.IDPathSegment(itemID)
	if err != nil {
		return errors.Wrap(err, "[DeleteRating] itemID")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "users/" + userSegment + "/ratings/" + itemSegment + "/",
	}, nil)
}

// ListUserRatings retrieves one page of a user's ratings. Page numbering
// starts at 1; nil arguments use the server defaults.
// Endpoint: GET users/{uid}/ratings/
func (c *Client) ListUserRatings(ctx context.Context, userID any, amt, page *int) (*models.ListUserRatingsResult, error) {
	userSegment, err := utils.IDPathSegment(userID)
	if err != nil {
		return nil, errors.Wrap(err, "[ListUserRatings] userID")
	}

	query := url.Values{}
	if amt != nil {
		query.Set("amt", strconv.Itoa(*amt))
	}
	if page != nil {
		query.Set("page", strconv.Itoa(*page))
	}

	var result models.ListUserRatingsResult
	err = c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "users/" + userSegment + "/ratings/",
		Query:  query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateOrUpdateUserRatingsBulk creates or updates all ratings of one user.
// Ratings are sent in sequential chunks; on failure the surfaced error
// carries the index of the last rating sent successfully. A chunkSize of zero
// uses the client default.
// Endpoint: PUT users/{uid}/ratings/
func (c *Client) CreateOrUpdateUserRatingsBulk(ctx context.Context, userID any, ratings []models.ItemRating, chunkSize int) error {
	userSegment, err := utils.IDPathSegment(userID)
	if err != nil {
		return errors.Wrap(err, "[CreateOrUpdateUserRatingsBulk] userID")
	}
	if len(ratings) == 0 {
		return errors.New("[CreateOrUpdateUserRatingsBulk] ratings are required")
	}

	return sendChunked(ctx, c, http.MethodPut, "users/"+userSegment+"/ratings/", "ratings", ratings, chunkSize)
}

// DeleteUserRatings deletes all ratings of one user.
// Endpoint: DELETE users/{uid}/ratings/
func (c *Client) DeleteUserRatings(ctx context.Context, userID any) error {
	userSegment, err := utils.IDPathSegment(userID)
	if err != nil {
		return errors.Wrap(err, "[DeleteUserRatings] userID")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "users/" + userSegment + "/ratings/",
	}, nil)
}

// CreateOrUpdateRatingsBulk creates or updates ratings for many users at
// once, in sequential chunks; on failure the surfaced error carries the index
// of the last rating sent successfully. A chunkSize of zero uses the client
// default.
// Endpoint: PUT ratings-bulk/
func (c *Client) CreateOrUpdateRatingsBulk(ctx context.Context, ratings []models.UserItemRating, chunkSize int) error {
	if len(ratings) == 0 {
		return errors.New("[CreateOrUpdateRatingsBulk] ratings are required")
	}
	return sendChunked(ctx, c, http.MethodPut, "ratings-bulk/", "ratings", ratings, chunkSize)
}

// ListAllRatingsBulk retrieves one cursor-paginated page of all ratings of
// the database. Nil amt uses the server default.
// Endpoint: GET ratings-bulk/
func (c *Client) ListAllRatingsBulk(ctx context.Context, amt *int, cursor string) (*models.ListAllRatingsBulkResult, error) {
	query := url.Values{}
	if amt != nil {
		query.Set("amt", strconv.Itoa(*amt))
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var result models.ListAllRatingsBulkResult
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "ratings-bulk/",
		Query:  query,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
