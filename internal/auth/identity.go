package auth

import (
	"context"

	"themesjet/internal/domain"
	"themesjet/internal/errors"
)

// Identity is the resolved caller passed explicitly into use cases. A zero
// UserID means the request is anonymous.
type Identity struct {
	UserID uint
	Role   string
}

func (i Identity) Authenticated() bool {
	return i.UserID != 0
}

type Capability string

const (
	CapManageProducts Capability = "manage-products"
	CapManageOrders   Capability = "manage-orders"
	CapManageReviews  Capability = "manage-reviews"
	CapManagePosts    Capability = "manage-posts"
	CapManageRequests Capability = "manage-requests"
	CapViewDashboard  Capability = "view-dashboard"
)

// Authorizer answers whether a caller may exercise a capability. It is
// deliberately independent of any session or token technology.
type Authorizer interface {
	Require(identity Identity, capability Capability) error
}

type RoleAuthorizer struct {
	grants map[string]map[Capability]bool
}

func NewRoleAuthorizer() *RoleAuthorizer {
	adminCaps := map[Capability]bool{
		CapManageProducts: true,
		CapManageOrders:   true,
		CapManageReviews:  true,
		CapManagePosts:    true,
		CapManageRequests: true,
		CapViewDashboard:  true,
	}

	return &RoleAuthorizer{
		grants: map[string]map[Capability]bool{
			domain.RoleAdmin: adminCaps,
		},
	}
}

func (a *RoleAuthorizer) Require(identity Identity, capability Capability) error {
	if !identity.Authenticated() {
		return errors.NewUnauthorizedError("authentication required")
	}

	if caps, ok := a.grants[identity.Role]; ok && caps[capability] {
		return nil
	}

	return errors.NewUnauthorizedError("insufficient permissions")
}

type contextKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

func FromContext(ctx context.Context) Identity {
	if identity, ok := ctx.Value(contextKey{}).(Identity); ok {
		return identity
	}
	return Identity{}
}
