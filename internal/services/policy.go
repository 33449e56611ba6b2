// internal/services/policy.go
package services

import (
	"github.com/burim/garant-backend/internal/models"
)

// Identity is the authenticated actor for a request, supplied by the auth
// middleware. The deal engine only ever reads it.
type Identity struct {
	ID   uint
	Role models.UserRole
}

// Authorization predicates for deal operations. Each takes the identity and
// the deal and answers allow/deny, so the rules stay testable apart from the
// state machine.

func isParty(identity Identity, deal *models.Deal) bool {
	return deal.IsParty(identity.ID)
}

func isSeller(identity Identity, deal *models.Deal) bool {
	return deal.IsSeller(identity.ID)
}

func isConsumer(identity Identity, deal *models.Deal) bool {
	return deal.IsConsumer(identity.ID)
}

func canModerate(identity Identity) bool {
	return identity.Role == models.UserRoleModerator || identity.Role == models.UserRoleAdmin
}
