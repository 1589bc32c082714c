package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"studenthub.org/internal/auth"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

// requireAccount resolves the bearer token to an active account or writes the
// 401 itself. Used for endpoints open to any authenticated member.
func (a *API) requireAccount(w http.ResponseWriter, r *http.Request) (*auth.Account, bool) {
	token, err := extractBearerToken(r.Header.Get(authHeader))
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, err.Error())
		return nil, false
	}
	account, err := a.auth.ResolveAccount(r.Context(), token)
	if err != nil {
		handleAuthError(w, r, err)
		return nil, false
	}
	return account, true
}

// requireAdmin is requireAccount restricted to the global ADMIN role.
func (a *API) requireAdmin(w http.ResponseWriter, r *http.Request) (*auth.Account, bool) {
	account, ok := a.requireAccount(w, r)
	if !ok {
		return nil, false
	}
	if account.Role != auth.RoleAdmin {
		writeError(w, r, http.StatusForbidden, "insufficient permissions")
		return nil, false
	}
	return account, true
}
