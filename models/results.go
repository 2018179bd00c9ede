package models

// GetUserResult is the response of the single-user fetch endpoint.
type GetUserResult struct {
	User User `json:"user"`
}

// GetItemResult is the response of the single-item fetch endpoint.
type GetItemResult struct {
	Item Item `json:"item"`
}

// ListAllUsersBulkResult is one cursor-paginated page of users.
type ListAllUsersBulkResult struct {
	Users      []User `json:"users"`
	HasNext    bool   `json:"has_next"`
	NextCursor string `json:"next_cursor"`
}

// ListAllItemsBulkResult is one cursor-paginated page of items.
type ListAllItemsBulkResult struct {
	Items      []Item `json:"items"`
	HasNext    bool   `json:"has_next"`
	NextCursor string `json:"next_cursor"`
}

// ListUsersByIDsResult holds the users found for a list of ids. Users that do
// not exist are simply absent; the response is not aligned with the input.
type ListUsersByIDsResult struct {
	Users []User `json:"users"`
}

// ListItemsByIDsResult holds the items found for a list of ids. Items that do
// not exist are simply absent; the response is not aligned with the input.
type ListItemsByIDsResult struct {
	Items []Item `json:"items"`
}
