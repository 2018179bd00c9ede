package models

// Database describes a recommendation database.
type Database struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// ItemIDType and UserIDType describe the flexible-id encoding configured
	// for the database (e.g. "uuid", "uint32", "S24").
	ItemIDType string `json:"item_id_type"`
	UserIDType string `json:"user_id_type"`
}

// LoginRootResult is the response of the root login endpoint.
type LoginRootResult struct {
	Token string `json:"token"`
}

// LoginResult is the response of the individual, service and refresh-token
// login endpoints.
type LoginResult struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	Database     *Database `json:"database"`
}
