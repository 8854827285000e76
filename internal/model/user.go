package model

// User is the authenticated principal attached to a request by the
// auth middleware. A nil *User means the request is anonymous. The
// entitlement logic only consumes the boolean flags; account
// management itself lives with the identity provider.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Authenticated reports whether the receiver represents a signed-in
// user.
func (u *User) Authenticated() bool {
	return u != nil && u.ID != ""
}

// Privileged reports whether the user bypasses payment checks.
func (u *User) Privileged() bool {
	return u != nil && (u.IsStaff || u.IsSuperuser)
}
