package models

import "time"

// RoleProductor is the default role for users created through request
// approval when the request did not name one.
const RoleProductor = "Productor"

// User is an account that can use the application. Users are created
// either directly (admin form) or by approving an AccessRequest.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`

	// Active marks whether the account may log in. Defaults to true on
	// creation when the caller does not say otherwise.
	Active bool `json:"active"`

	// CreatedAt is set once at creation and never changed.
	CreatedAt time.Time `json:"createdAt"`
}

// UserPatch is a partial update; nil fields are left untouched.
// CreatedAt is deliberately not patchable.
type UserPatch struct {
	Name   *string
	Email  *string
	Role   *string
	Active *bool
}

// Apply merges the patch into the user, field by field.
func (u *User) Apply(p UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
}
