package auth

import (
	"fmt"

	"auction-spot/internal/auctionerrors"
	model "auction-spot/internal/models"
)

// GuestID identifies callers that supplied no identity
const GuestID = "guest"

// Principal is the authenticated caller of an operation
type Principal struct {
	UserID string
	Role   model.Role
}

// Guest returns the principal used for anonymous requests
func Guest() Principal {
	return Principal{UserID: GuestID, Role: model.RoleViewer}
}

// IsAdmin reports whether the principal holds the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// RequireAdmin returns ErrForbidden unless the principal is an admin
func (p Principal) RequireAdmin() error {
	if !p.IsAdmin() {
		return fmt.Errorf("%w - admin role required, caller %s has role %s", auctionerrors.ErrForbidden, p.UserID, p.Role)
	}
	return nil
}
