package models

// Identity scopes a cart to one customer: either an authenticated user
// id or an anonymous session id, never both. It is passed explicitly
// into every cart and checkout operation; there is no ambient session
// state.
type Identity struct {
	UserID    string
	SessionID string
}

// UserIdentity builds an identity for an authenticated user.
func UserIdentity(userID string) Identity {
	return Identity{UserID: userID}
}

// SessionIdentity builds an identity for an anonymous session.
func SessionIdentity(sessionID string) Identity {
	return Identity{SessionID: sessionID}
}

// IsZero reports whether neither a user nor a session id is set.
func (i Identity) IsZero() bool {
	return i.UserID == "" && i.SessionID == ""
}

// Owns reports whether the identity owns the given cart item.
func (i Identity) Owns(item *CartItem) bool {
	if i.UserID != "" {
		return item.UserID != nil && *item.UserID == i.UserID
	}
	return item.SessionID != nil && *item.SessionID == i.SessionID
}
