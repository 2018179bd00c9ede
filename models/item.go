package models

// ItemIDKey is the reserved property name carrying the item identifier.
const ItemIDKey = "item_id"

// Item is an item record: a property bag with a reserved item_id property.
// The id cannot be a "falsy" value such as an empty string or 0.
type Item struct {
	PropertyBag
}

// ItemID returns the reserved item_id property, or nil if unset.
func (i *Item) ItemID() any {
	id, _ := i.Get(ItemIDKey)
	return id
}

// SetItemID stores the reserved item_id property.
func (i *Item) SetItemID(id any) {
	i.Set(ItemIDKey, id)
}

// BodyProps returns the item's properties without the reserved item_id key,
// for endpoints that carry the id in the URL instead of the payload.
func (i *Item) BodyProps() *PropertyBag {
	return i.Without(ItemIDKey)
}
