package models

// Database statuses. Recommendations are unavailable until the status
// switches to ready.
const (
	DatabaseStatusPending = "pending"
	DatabaseStatusReady   = "ready"
)

// CreatedDatabase is the response of the database creation endpoint.
type CreatedDatabase struct {
	ID string `json:"id"`
}

// DatabaseCounters holds the record counts of a database.
type DatabaseCounters struct {
	Rating int `json:"rating"`
	User   int `json:"user"`
	Item   int `json:"item"`
}

// CurrentDatabase is the metadata of the database selected by the session.
type CurrentDatabase struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ItemIDType  string            `json:"item_id_type"`
	UserIDType  string            `json:"user_id_type"`
	Counters    *DatabaseCounters `json:"counters"`
	Metadata    map[string]any    `json:"metadata"`
}

// CurrentDatabaseStatus is the response of the database status endpoint.
type CurrentDatabaseStatus struct {
	Status string `json:"status"`
}

// ListAllDatabasesResult is one page of the organization's databases.
type ListAllDatabasesResult struct {
	HasNext   bool       `json:"has_next"`
	NextPage  int        `json:"next_page"`
	Databases []Database `json:"databases"`
}
