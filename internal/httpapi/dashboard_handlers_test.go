package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"studenthub.org/internal/auth"
	"studenthub.org/internal/content"
)

func seedSociety(t *testing.T, f *fixture, name string) *content.Society {
	t.Helper()
	soc, err := f.content.CreateSociety(context.Background(), &content.Society{Name: name})
	if err != nil {
		t.Fatalf("CreateSociety: %v", err)
	}
	return soc
}

func seedCouncil(t *testing.T, f *fixture, name string) *content.Council {
	t.Helper()
	c, err := f.content.CreateCouncil(context.Background(), &content.Council{Name: name})
	if err != nil {
		t.Fatalf("CreateCouncil: %v", err)
	}
	return c
}

func TestDashboardScopedAdminManagesOwnSociety(t *testing.T) {
	f := newTestAPI(t)
	soc := seedSociety(t, f, "Robotics Society")
	token := f.register(t, "alice@x.edu", auth.RoleSocietyAdmin, int64Ptr(soc.ID))

	base := "/api/society-dashboard/society/"
	path := base + itoa(soc.ID)

	rr := f.do(t, http.MethodGet, path, nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("dashboard get: status %d body %s", rr.Code, rr.Body.String())
	}

	rr = f.do(t, http.MethodPost, path+"/past-events", map[string]any{
		"title":      "Tech Fest",
		"event_date": "2025-03-10T00:00:00Z",
	}, token)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create past event: status %d body %s", rr.Code, rr.Body.String())
	}
	var event content.PastEvent
	if err := json.Unmarshal(rr.Body.Bytes(), &event); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if event.SocietyID == nil || *event.SocietyID != soc.ID {
		t.Fatalf("event not bound to society: %+v", event)
	}

	rr = f.do(t, http.MethodPut, path+"/past-events/"+itoa(event.ID), map[string]any{
		"title": "Tech Fest 2025",
	}, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("update past event: status %d body %s", rr.Code, rr.Body.String())
	}

	rr = f.do(t, http.MethodDelete, path+"/past-events/"+itoa(event.ID), nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete past event: status %d", rr.Code)
	}
}

func TestDashboardScopedAdminBlockedOnForeignEntity(t *testing.T) {
	f := newTestAPI(t)
	mine := seedSociety(t, f, "Robotics Society")
	other := seedSociety(t, f, "Drama Club")
	token := f.register(t, "alice@x.edu", auth.RoleSocietyAdmin, int64Ptr(mine.ID))

	rr := f.do(t, http.MethodGet, "/api/society-dashboard/society/"+itoa(other.ID), nil, token)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body %s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["kind"] != "society" {
		t.Fatalf("missing scope kind: %v", payload)
	}
	if payload["entity_id"] != float64(other.ID) {
		t.Fatalf("missing target entity: %v", payload)
	}
	if payload["owned_id"] != float64(mine.ID) {
		t.Fatalf("missing owned entity: %v", payload)
	}
}

func TestDashboardGlobalAdminPassesAnyEntity(t *testing.T) {
	f := newTestAPI(t)
	soc := seedSociety(t, f, "Robotics Society")
	council := seedCouncil(t, f, "Engineering Council")
	token := f.register(t, "root@x.edu", auth.RoleAdmin, nil)

	rr := f.do(t, http.MethodGet, "/api/society-dashboard/society/"+itoa(soc.ID), nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin on society dashboard: %d", rr.Code)
	}
	rr = f.do(t, http.MethodGet, "/api/council-dashboard/council/"+itoa(council.ID), nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin on council dashboard: %d", rr.Code)
	}
}

func TestDashboardMemberForbidden(t *testing.T) {
	f := newTestAPI(t)
	soc := seedSociety(t, f, "Robotics Society")
	token := f.register(t, "m@x.edu", auth.RoleMember, nil)

	rr := f.do(t, http.MethodGet, "/api/society-dashboard/society/"+itoa(soc.ID), nil, token)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Role failures carry no entity scope details.
	if _, ok := payload["kind"]; ok {
		t.Fatalf("role failure leaked scope payload: %v", payload)
	}
}

func TestDashboardKindCrossingForbidden(t *testing.T) {
	f := newTestAPI(t)
	council := seedCouncil(t, f, "Engineering Council")
	// A society admin, even one with a matching entity id, has no business on
	// the council dashboard.
	token := f.register(t, "alice@x.edu", auth.RoleSocietyAdmin, int64Ptr(council.ID))

	rr := f.do(t, http.MethodGet, "/api/council-dashboard/council/"+itoa(council.ID), nil, token)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestDashboardInvalidTokenUnauthorized(t *testing.T) {
	f := newTestAPI(t)
	soc := seedSociety(t, f, "Robotics Society")

	for _, token := range []string{"", "garbage", "hub_token_123"} {
		rr := f.do(t, http.MethodGet, "/api/society-dashboard/society/"+itoa(soc.ID), nil, token)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: expected 401, got %d", token, rr.Code)
		}
	}
}

func TestDashboardCrossFamilyRecordHidden(t *testing.T) {
	f := newTestAPI(t)
	soc := seedSociety(t, f, "Robotics Society")
	council := seedCouncil(t, f, "Engineering Council")
	adminToken := f.register(t, "root@x.edu", auth.RoleAdmin, nil)

	// Create an achievement under the council.
	rr := f.do(t, http.MethodPost, "/api/council-dashboard/council/"+itoa(council.ID)+"/achievements", map[string]any{
		"title": "Best Chapter",
	}, adminToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create achievement: %d body %s", rr.Code, rr.Body.String())
	}
	var ach content.Achievement
	if err := json.Unmarshal(rr.Body.Bytes(), &ach); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Even a global admin cannot edit it through a society dashboard.
	rr = f.do(t, http.MethodPut, "/api/society-dashboard/society/"+itoa(soc.ID)+"/achievements/"+itoa(ach.ID), map[string]any{
		"title": "Hijacked",
	}, adminToken)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-family edit, got %d", rr.Code)
	}
}

func TestDashboardCouncilUpdateProfile(t *testing.T) {
	f := newTestAPI(t)
	council := seedCouncil(t, f, "Engineering Council")
	token := f.register(t, "chair@x.edu", auth.RoleCouncilAdmin, int64Ptr(council.ID))

	rr := f.do(t, http.MethodPut, "/api/council-dashboard/council/"+itoa(council.ID), map[string]any{
		"name":         "Engineering Council",
		"chair_person": "Jordan Li",
	}, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("update council: %d body %s", rr.Code, rr.Body.String())
	}
	var updated content.Council
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.ChairPerson != "Jordan Li" {
		t.Fatalf("update lost: %+v", updated)
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
