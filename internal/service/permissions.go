package service

import "context"

// PermissionChecker is the festival-level authorization predicate. This
// service only forwards to it — admin/committee/owner rules live in the
// festival service.
type PermissionChecker interface {
	CanModifyVenue(ctx context.Context, actorID string, venueID uint) bool
}

// AllowAll grants every actor. Used until the festival service supplies
// a real predicate.
type AllowAll struct{}

func (AllowAll) CanModifyVenue(ctx context.Context, actorID string, venueID uint) bool {
	return true
}
