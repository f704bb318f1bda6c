package models

import "time"

// AccessRequest states. Pending is the only non-terminal state: a
// request moves to approved or rejected exactly once and never back.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// AccessRequest is a request for an account, created by the "request
// access" flow or automatically by the bootstrap policy.
type AccessRequest struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`

	// RequestedRole is the role the requester asked for; approval falls
	// back to RoleProductor when it is empty.
	RequestedRole string `json:"requestedRole"`

	Note   string `json:"note"`
	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`

	// System marks requests created by the bootstrap policy rather than
	// a person.
	System bool `json:"system,omitempty"`
}

// RequestPatch is a partial update; nil fields are left untouched.
// Identity fields (email, name, requestedRole) are not patchable once
// the request exists.
type RequestPatch struct {
	Note   *string
	Status *string
}

// Apply merges the patch into the request, field by field.
func (r *AccessRequest) Apply(p RequestPatch) {
	if p.Note != nil {
		r.Note = *p.Note
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}
