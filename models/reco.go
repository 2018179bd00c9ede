package models

import "fmt"

// Recommendation filter operators.
const (
	FilterOpEq       = "eq"
	FilterOpLt       = "lt"
	FilterOpLte      = "lte"
	FilterOpGt       = "gt"
	FilterOpGte      = "gte"
	FilterOpIn       = "in"
	FilterOpNeq      = "neq"
	FilterOpNotIn    = "notin"
	FilterOpNotEmpty = "notempty"
)

// Filter restricts recommendation results on an item property.
type Filter struct {
	Property string
	Operator string
	Value    string
}

// String renders the filter in the wire form "<property>:<operator>:<value>".
func (f Filter) String() string {
	if f.Operator == FilterOpNotEmpty {
		return fmt.Sprintf("%s:%s", f.Property, f.Operator)
	}
	return fmt.Sprintf("%s:%s:%s", f.Property, f.Operator, f.Value)
}

// FilterStrings renders a filter list to its wire form.
func FilterStrings(filters []Filter) []string {
	if len(filters) == 0 {
		return nil
	}
	rendered := make([]string, 0, len(filters))
	for _, f := range filters {
		rendered = append(rendered, f.String())
	}
	return rendered
}

// RecoItemsResult is one page of recommended item ids.
type RecoItemsResult struct {
	ItemsID    []string `json:"items_id"`
	NextCursor string   `json:"next_cursor"`
	Warnings   []string `json:"warnings"`
}
