package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studenthub.org/internal/auth"
	"studenthub.org/internal/content"
	"studenthub.org/internal/stream"
)

type fixture struct {
	api      *API
	auth     *auth.Service
	content  *content.Service
	accounts *auth.InMemoryAccounts
}

func newTestAPI(t *testing.T) *fixture {
	t.Helper()
	accounts := auth.NewInMemoryAccounts()
	authSvc, err := auth.NewService(accounts)
	if err != nil {
		t.Fatalf("auth.NewService: %v", err)
	}
	contentSvc, err := content.NewService(content.NewInMemory())
	if err != nil {
		t.Fatalf("content.NewService: %v", err)
	}
	api := New(authSvc, contentSvc, stream.New(), ReadyProbe{}, "test")
	return &fixture{api: api, auth: authSvc, content: contentSvc, accounts: accounts}
}

// register creates an account through the HTTP surface and returns a login token.
func (f *fixture) register(t *testing.T, email string, role auth.Role, entityID *int64) string {
	t.Helper()
	body := map[string]any{
		"email":     email,
		"full_name": "Test Account",
		"password":  "secret123",
		"role":      string(role),
	}
	if entityID != nil {
		body["entity_id"] = *entityID
	}
	rr := f.do(t, http.MethodPost, "/api/auth/register", body, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, rr.Code, rr.Body.String())
	}
	return f.login(t, email, "secret123")
}

func (f *fixture) login(t *testing.T, email, password string) string {
	t.Helper()
	rr := f.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, rr.Code, rr.Body.String())
	}
	var resp loginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("login returned empty token")
	}
	return resp.Token
}

func (f *fixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(authHeader, bearer+token)
	}
	rr := httptest.NewRecorder()
	f.api.Handler().ServeHTTP(rr, req)
	return rr
}

func int64Ptr(v int64) *int64 { return &v }

func TestHealthz(t *testing.T) {
	f := newTestAPI(t)
	rr := f.do(t, http.MethodGet, "/healthz", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["service"] != "studenthub-api" {
		t.Fatalf("unexpected service name: %v", body["service"])
	}
}

func TestReadyzWithoutDatabase(t *testing.T) {
	f := newTestAPI(t)
	rr := f.do(t, http.MethodGet, "/readyz", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected ready without db, got %d", rr.Code)
	}
}

func TestInfoReturnsVersion(t *testing.T) {
	f := newTestAPI(t)
	rr := f.do(t, http.MethodGet, "/v1/info", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["version"] != "test" {
		t.Fatalf("unexpected version: %v", body["version"])
	}
}

func TestUnknownPathReturns404(t *testing.T) {
	f := newTestAPI(t)
	rr := f.do(t, http.MethodGet, "/nope", nil, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	f := newTestAPI(t)
	rr := f.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "a@x.edu",
		"password": "pw",
		"bogus":    true,
	}, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rr.Code)
	}
}
