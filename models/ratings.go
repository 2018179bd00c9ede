package models

import "time"

// ItemRating is a rating of one item, relative to an implied user.
type ItemRating struct {
	ItemID any     `json:"item_id"`
	Rating float32 `json:"rating"`
	// Timestamp is Unix seconds; zero means "now" server-side.
	Timestamp float64 `json:"timestamp,omitempty"`
}

// Time returns the rating timestamp as a time.Time.
func (r *ItemRating) Time() time.Time {
	return TimeFromUnixSeconds(r.Timestamp)
}

// SetTime stores the rating timestamp.
func (r *ItemRating) SetTime(t time.Time) {
	r.Timestamp = UnixSeconds(t)
}

// UserItemRating is a rating of one item by one user.
type UserItemRating struct {
	UserID    any     `json:"user_id"`
	ItemID    any     `json:"item_id"`
	Rating    float32 `json:"rating"`
	Timestamp float64 `json:"timestamp,omitempty"`
}

// Time returns the rating timestamp as a time.Time.
func (r *UserItemRating) Time() time.Time {
	return TimeFromUnixSeconds(r.Timestamp)
}

// SetTime stores the rating timestamp.
func (r *UserItemRating) SetTime(t time.Time) {
	r.Timestamp = UnixSeconds(t)
}

// RecoItemRating is a session rating used as recommendation context; it has
// no timestamp.
type RecoItemRating struct {
	ItemID any     `json:"item_id"`
	Rating float32 `json:"rating"`
}

// ListUserRatingsResult is one page of a user's ratings.
type ListUserRatingsResult struct {
	UserRatings []ItemRating `json:"user_ratings"`
	HasNext     bool         `json:"has_next"`
	NextPage    int          `json:"next_page"`
}

// ListAllRatingsBulkResult is one page of all ratings of the database.
type ListAllRatingsBulkResult struct {
	Ratings    []UserItemRating `json:"ratings"`
	HasNext    bool             `json:"has_next"`
	NextCursor string           `json:"next_cursor"`
}
