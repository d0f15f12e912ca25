package domain

import (
	"github.com/google/uuid"

	apperrors "github.com/artfolio/gallery/internal/errors"
)

// DenyReason classifies why a request was denied.
type DenyReason string

const (
	DenyUnauthenticated DenyReason = "unauthenticated"
	DenyNotApproved     DenyReason = "not_approved"
	DenyForbidden       DenyReason = "forbidden"
)

// AllowPath records which policy path granted access. Audit only; it never
// changes the decision.
type AllowPath string

const (
	AllowViaPublic AllowPath = "public"
	AllowViaOwner  AllowPath = "owner"
	AllowViaRole   AllowPath = "role"
)

// Request is the normalized descriptor of an inbound operation, as seen by
// the authorization gate. It carries no role or approval fields: those come
// exclusively from the verified identity.
type Request struct {
	Resource Resource
	Action   Action
	// OwnerID is the owner of the targeted resource when known, uuid.Nil
	// otherwise. Callers that cannot resolve ownership leave it zero and the
	// owner path simply never matches.
	OwnerID uuid.UUID
}

// Decision is the terminal outcome of a gate evaluation.
type Decision struct {
	Allowed bool
	Reason  DenyReason // set only when denied
	Via     AllowPath  // set only when allowed
}

func allowed(via AllowPath) Decision {
	return Decision{Allowed: true, Via: via}
}

func denied(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Err maps a denial to the application error taxonomy. Returns nil for
// allowed decisions.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case DenyUnauthenticated:
		return apperrors.ErrUnauthorized
	case DenyNotApproved:
		return apperrors.ErrNotApproved
	case DenyForbidden:
		return apperrors.ErrForbidden
	default:
		return apperrors.ErrForbidden
	}
}

// Decide evaluates the access policy for a request. It is a pure function of
// the verified identity snapshot and the request descriptor; it never consults
// client-supplied claims.
//
// identity is nil for anonymous requests. Unknown roles, approval states, or
// operations fail closed.
func Decide(identity *Identity, req Request) Decision {
	rule, ok := LookupRule(req.Resource, req.Action)
	if !ok {
		if identity == nil {
			return denied(DenyUnauthenticated)
		}
		return denied(DenyForbidden)
	}

	if rule.Public {
		return allowed(AllowViaPublic)
	}

	if identity == nil {
		return denied(DenyUnauthenticated)
	}
	if !identity.Role.Valid() || !identity.Approval.Valid() {
		return denied(DenyForbidden)
	}

	isOwner := req.OwnerID != uuid.Nil && req.OwnerID == identity.UserID

	// Approval gate. Applies to administrators too: a pending admin is denied.
	// Pending accounts keep the owner path for the few rules that opt in
	// (self-profile read, logout).
	switch identity.Approval {
	case ApprovalApproved:
	case ApprovalPending, ApprovalRejected:
		if rule.AllowPending && rule.Standard == StandardOwner && isOwner {
			return allowed(AllowViaOwner)
		}
		return denied(DenyNotApproved)
	default:
		return denied(DenyForbidden)
	}

	// Ownership path is evaluated before the role path, so an administrator
	// who owns the resource is recorded as allowed via ownership.
	if rule.Standard == StandardOwner && isOwner {
		return allowed(AllowViaOwner)
	}

	switch identity.Role {
	case RoleAdmin:
		return allowed(AllowViaRole)
	case RoleStandard:
		if rule.Standard == StandardAny {
			return allowed(AllowViaRole)
		}
		return denied(DenyForbidden)
	default:
		return denied(DenyForbidden)
	}
}
