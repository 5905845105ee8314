// Package authz is the single authorization decision point. Every handler
// and page-level gate goes through Authorize instead of re-implementing
// role checks per route.
package authz

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Session is the authenticated identity attached to a request, or nil for
// anonymous callers.
type Session struct {
	UserID string
	Role   models.UserRole
}

// Resource describes the ownership and scope of the thing being accessed.
// The zero value is a plain protected resource: any authenticated caller
// may touch it.
type Resource struct {
	// AdminOnly marks operations reserved for administrators (list all
	// users, approve companies, force-create jobs).
	AdminOnly bool

	// CompanyScoped marks resources owned by a company (its jobs, the
	// applications to them). CompanyOwnerID is the user id of the owning
	// account and CompanyApproved its moderation state.
	CompanyScoped   bool
	CompanyOwnerID  string
	CompanyApproved bool

	// OwnerUserID marks user-scoped resources (own profile, own
	// applications). Empty means not user-scoped.
	OwnerUserID string
}

const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonForbidden       = "forbidden"
	ReasonNotApproved     = "company profile not approved"
)

// Decision is the authorization outcome. Reason is set only on deny.
type Decision struct {
	Allow  bool
	Reason string
}

func allow() Decision {
	return Decision{Allow: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorize evaluates the rule chain in order, first match wins. It is pure:
// no side effects, never panics, identical inputs yield identical decisions.
func Authorize(session *Session, action Action, res Resource) Decision {
	if session == nil || session.UserID == "" {
		return deny(ReasonUnauthenticated)
	}

	if res.AdminOnly && session.Role != models.UserRoleAdmin {
		return deny(ReasonForbidden)
	}

	if res.CompanyScoped {
		if session.Role != models.UserRoleCompany {
			return deny(ReasonForbidden)
		}
		if res.CompanyOwnerID != session.UserID {
			return deny(ReasonForbidden)
		}
		if !res.CompanyApproved {
			return deny(ReasonNotApproved)
		}
	}

	if res.OwnerUserID != "" && res.OwnerUserID != session.UserID && session.Role != models.UserRoleAdmin {
		return deny(ReasonForbidden)
	}

	return allow()
}

// Error maps a deny decision to the application error the HTTP layer
// understands. Allow decisions map to nil.
func (d Decision) Error() *apperrors.AppError {
	if d.Allow {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthenticated:
		return apperrors.ErrUnauthorized
	case ReasonNotApproved:
		return apperrors.ErrCompanyNotApproved
	default:
		return apperrors.ErrForbidden
	}
}
