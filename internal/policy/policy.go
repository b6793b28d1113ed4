// Package policy is the single authorization gate. Every handler asks it
// whether the caller may perform an action on a resource class, and how wide
// the caller's view of orders is.
package policy

import "restaurant_api/internal/models"

type Resource int

const (
	ResourceMenuItem Resource = iota
	ResourceCategory
	ResourceManagerRoster
	ResourceDeliveryRoster
	ResourceCart
	ResourceOrder
)

type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// requirement is the minimum standing a caller needs for one cell of the
// access matrix.
type requirement int

const (
	never requirement = iota
	anyone
	authenticated
	managerOrAdmin
	adminOnly
)

// rules is the access matrix, indexed by Action. Cart rows grant the
// authenticated caller access to their own entries only; the repositories
// scope every cart query by the caller's id, so ownership needs no check
// here. Order reads are scoped separately via OrderListScope/CanReadOrder.
var rules = map[Resource][4]requirement{
	ResourceMenuItem:       {anyone, adminOnly, managerOrAdmin, adminOnly},
	ResourceCategory:       {anyone, adminOnly, never, never},
	ResourceManagerRoster:  {managerOrAdmin, managerOrAdmin, never, adminOnly},
	ResourceDeliveryRoster: {adminOnly, adminOnly, never, managerOrAdmin},
	ResourceCart:           {authenticated, authenticated, never, authenticated},
	ResourceOrder:          {authenticated, authenticated, managerOrAdmin, managerOrAdmin},
}

// Allow reports whether the actor (nil for anonymous) may perform the action
// on the resource class. The superuser flag grants admin standing.
func Allow(actor *models.User, res Resource, act Action) bool {
	reqs, ok := rules[res]
	if !ok {
		return false
	}
	switch reqs[act] {
	case anyone:
		return true
	case authenticated:
		return actor != nil
	case managerOrAdmin:
		return actor != nil && (actor.IsSuperuser || actor.HasRole(models.RoleManager))
	case adminOnly:
		return actor != nil && actor.IsSuperuser
	default:
		return false
	}
}

// OrderScope is how much of the order table a caller's list view covers.
type OrderScope int

const (
	ScopeOwn      OrderScope = iota // orders the caller placed
	ScopeAssigned                   // orders assigned to the caller for delivery
	ScopeAll                        // every order
)

// OrderListScope returns the caller's visibility for order listings:
// managers and superusers see everything, delivery crew see their assigned
// orders, everyone else sees their own.
func OrderListScope(actor *models.User) OrderScope {
	if actor.IsSuperuser || actor.HasRole(models.RoleManager) {
		return ScopeAll
	}
	if actor.HasRole(models.RoleDeliveryCrew) {
		return ScopeAssigned
	}
	return ScopeOwn
}

// CanReadOrder governs the single-order view. It is deliberately narrower
// than OrderListScope: delivery crew get no special access to orders merely
// assigned to them, only managers, superusers, and the owner may read.
func CanReadOrder(actor *models.User, order *models.Order) bool {
	if actor == nil {
		return false
	}
	if actor.IsSuperuser || actor.HasRole(models.RoleManager) {
		return true
	}
	return order.UserID == actor.ID
}

// RosterResource maps a staff role to the roster resource guarding it.
func RosterResource(role models.Role) Resource {
	if role == models.RoleManager {
		return ResourceManagerRoster
	}
	return ResourceDeliveryRoster
}
