// Package domain contains the core access control entities and authorization rules.
//
// An Identity is the authenticated caller as seen by the rest of the application:
// a snapshot of who the user was at token issuance time. Authorization decisions
// are made by the Gate against static per-resource rules, never by handlers directly.
package domain

import (
	"github.com/google/uuid"
)

// Role classifies what a user is allowed to administer.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleStandard, RoleAdmin:
		return true
	}
	return false
}

// ApprovalState tracks where a user account is in the admin approval flow.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// Valid reports whether the approval state is one of the known values.
func (s ApprovalState) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Identity is the authenticated caller derived from a verified token.
// It is a snapshot taken at token issuance: role or approval changes made
// after issuance are not reflected until the user authenticates again.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     Role
	Approval ApprovalState
}

// Approved reports whether the identity passed admin approval.
func (i Identity) Approved() bool {
	return i.Approval == ApprovalApproved
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
