package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"studenthub.org/internal/auth"
)

func TestRegisterLoginProfileFlow(t *testing.T) {
	f := newTestAPI(t)
	token := f.register(t, "alice@x.edu", auth.RoleMember, nil)

	rr := f.do(t, http.MethodGet, "/api/auth/profile", nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("profile: status %d body %s", rr.Code, rr.Body.String())
	}
	var account auth.Account
	if err := json.Unmarshal(rr.Body.Bytes(), &account); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if account.Email != "alice@x.edu" || account.Role != auth.RoleMember {
		t.Fatalf("unexpected profile: %+v", account)
	}
	if !account.Active {
		t.Fatalf("new account should be active")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	f := newTestAPI(t)
	f.register(t, "bob@x.edu", auth.RoleMember, nil)

	rr := f.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":     "bob@x.edu",
		"full_name": "Other Bob",
		"password":  "different",
	}, "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body %s", rr.Code, rr.Body.String())
	}
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	f := newTestAPI(t)
	f.register(t, "carol@x.edu", auth.RoleMember, nil)

	cases := map[string]map[string]any{
		"wrong password": {"email": "carol@x.edu", "password": "nope"},
		"unknown email":  {"email": "ghost@x.edu", "password": "secret123"},
	}
	var bodies []string
	for name, body := range cases {
		rr := f.do(t, http.MethodPost, "/api/auth/login", body, "")
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rr.Code)
		}
		var payload map[string]any
		if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
			t.Fatalf("%s: decode: %v", name, err)
		}
		bodies = append(bodies, payload["error"].(string))
	}
	// Both failure modes produce the same message.
	if bodies[0] != bodies[1] {
		t.Fatalf("login errors leak information: %q vs %q", bodies[0], bodies[1])
	}
}

func TestVerifyReportsTokenValidity(t *testing.T) {
	f := newTestAPI(t)
	token := f.register(t, "dave@x.edu", auth.RoleMember, nil)

	rr := f.do(t, http.MethodGet, "/api/auth/verify", nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("verify: status %d", rr.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["valid"] != true {
		t.Fatalf("expected valid token: %v", payload)
	}

	rr = f.do(t, http.MethodGet, "/api/auth/verify", nil, "garbage")
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["valid"] != false {
		t.Fatalf("expected invalid token: %v", payload)
	}
}

func TestLogoutIsAcknowledgedButStateless(t *testing.T) {
	f := newTestAPI(t)
	token := f.register(t, "erin@x.edu", auth.RoleMember, nil)

	rr := f.do(t, http.MethodPost, "/api/auth/logout", nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("logout: status %d", rr.Code)
	}

	// Tokens carry no server-side state, so the token still resolves.
	rr = f.do(t, http.MethodGet, "/api/auth/profile", nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("profile after logout: status %d", rr.Code)
	}
}

func TestChangePasswordRotatesCredential(t *testing.T) {
	f := newTestAPI(t)
	token := f.register(t, "frank@x.edu", auth.RoleMember, nil)

	rr := f.do(t, http.MethodPost, "/api/auth/change-password", map[string]any{
		"current_password": "secret123",
		"new_password":     "rotated456",
	}, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("change-password: status %d body %s", rr.Code, rr.Body.String())
	}

	// Old password no longer works, new one does.
	rr = f.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "frank@x.edu",
		"password": "secret123",
	}, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("old password still accepted: %d", rr.Code)
	}
	f.login(t, "frank@x.edu", "rotated456")
}

func TestChangePasswordForOthersRequiresAdmin(t *testing.T) {
	f := newTestAPI(t)
	f.register(t, "victim@x.edu", auth.RoleMember, nil)
	memberToken := f.register(t, "mallory@x.edu", auth.RoleMember, nil)

	rr := f.do(t, http.MethodPost, "/api/auth/change-password", map[string]any{
		"email":            "victim@x.edu",
		"current_password": "secret123",
		"new_password":     "hacked",
	}, memberToken)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	f := newTestAPI(t)
	rr := f.do(t, http.MethodGet, "/api/auth/profile", nil, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
