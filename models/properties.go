package models

// Property is the schema of a user or item property. Names are
// case-insensitive; "user_id" and "item_id" are reserved.
type Property struct {
	PropertyName string `json:"property_name"`
	ValueType    string `json:"value_type"`
	// Repeated marks properties holding many values.
	Repeated bool `json:"repeated"`
}

// ListAllUserPropertiesResult lists the user-property schemas of the current
// database.
type ListAllUserPropertiesResult struct {
	Properties []Property `json:"properties"`
}

// ListAllItemPropertiesResult lists the item-property schemas of the current
// database.
type ListAllItemPropertiesResult struct {
	Properties []Property `json:"properties"`
}
