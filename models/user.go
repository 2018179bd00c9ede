package models

// UserIDKey is the reserved property name carrying the user identifier.
const UserIDKey = "user_id"

// User is a user record: a property bag with a reserved user_id property.
// The id cannot be a "falsy" value such as an empty string or 0.
type User struct {
	PropertyBag
}

// UserID returns the reserved user_id property, or nil if unset.
func (u *User) UserID() any {
	id, _ := u.Get(UserIDKey)
	return id
}

// SetUserID stores the reserved user_id property.
func (u *User) SetUserID(id any) {
	u.Set(UserIDKey, id)
}

// BodyProps returns the user's properties without the reserved user_id key,
// for endpoints that carry the id in the URL instead of the payload.
func (u *User) BodyProps() *PropertyBag {
	return u.Without(UserIDKey)
}
