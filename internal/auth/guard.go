package auth

import "context"

// Authorize is the single access guard for dashboard-scoped operations. It
// accepts the raw Authorization header value (with or without the "Bearer "
// scheme), resolves the caller, and enforces role membership plus entity
// ownership for the target family.
//
// Decisions are pure per-request: the same inputs always yield the same
// outcome. Terminal results are exactly {authorized account, tagged error}.
func (s *Service) Authorize(ctx context.Context, rawToken string, entityID int64, kind EntityKind) (*Account, error) {
	account, err := s.ResolveAccount(ctx, StripBearer(rawToken))
	if err != nil {
		return nil, err
	}

	scoped := kind.AdminRole()
	if account.Role != RoleAdmin && account.Role != scoped {
		return nil, &RoleError{Role: account.Role}
	}

	// Global admins pass any entity; scoped admins only their own.
	if account.Role == scoped && !account.AdministersEntity(entityID) {
		return nil, &ScopeError{Kind: kind, EntityID: entityID, OwnedID: account.EntityID}
	}
	return account, nil
}
