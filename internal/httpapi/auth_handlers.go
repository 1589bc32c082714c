package httpapi

import (
	"net/http"
	"strings"

	"studenthub.org/internal/auth"
)

type registerRequest struct {
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Password     string `json:"password"`
	PhoneNumber  string `json:"phone_number"`
	StudentID    string `json:"student_id"`
	Department   string `json:"department"`
	YearOfStudy  int    `json:"year_of_study"`
	MembershipID string `json:"membership_id"`
	Role         string `json:"role"`
	EntityID     *int64 `json:"entity_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string        `json:"token"`
	Account *auth.Account `json:"account"`
}

type changePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	role := auth.RoleMember
	if strings.TrimSpace(req.Role) != "" {
		parsed, err := auth.ParseRole(req.Role)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}
		role = parsed
	}

	account, err := a.auth.Register(r.Context(), auth.RegisterRequest{
		Email:        req.Email,
		FullName:     req.FullName,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		StudentID:    req.StudentID,
		Department:   req.Department,
		YearOfStudy:  req.YearOfStudy,
		MembershipID: req.MembershipID,
		Role:         role,
		EntityID:     req.EntityID,
	})
	if err != nil {
		handleAuthError(w, r, err)
		return
	}

	a.audit(r.Context(), "auth.account.register", map[string]any{
		"email": account.Email,
		"role":  string(account.Role),
	})
	writeJSON(w, http.StatusCreated, account)
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, account, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleAuthError(w, r, err)
		return
	}

	a.audit(r.Context(), "auth.login", map[string]any{"email": account.Email})
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Account: account})
}

// handleLogout acknowledges the client discarding its token. Legacy tokens
// are stateless so there is nothing to revoke server side.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	token, _ := extractBearerToken(r.Header.Get(authHeader))
	a.auth.Logout(r.Context(), token)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// handleVerify reports whether the presented token resolves to an active
// account, and if so returns it.
func (a *API) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}
	token, err := extractBearerToken(r.Header.Get(authHeader))
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"valid": false})
		return
	}
	account, err := a.auth.ResolveAccount(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"valid": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":   true,
		"account": account,
	})
}

func (a *API) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	account, ok := a.requireAccount(w, r)
	if !ok {
		return
	}
	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = account.Email
	}
	// Only admins may rotate someone else's password.
	if email != account.Email && account.Role != auth.RoleAdmin {
		writeError(w, r, http.StatusForbidden, "insufficient permissions")
		return
	}
	if err := a.auth.ChangePassword(r.Context(), email, req.CurrentPassword, req.NewPassword); err != nil {
		handleAuthError(w, r, err)
		return
	}
	a.audit(r.Context(), "auth.password.change", map[string]any{"email": email})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	account, ok := a.requireAccount(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, account)
}
