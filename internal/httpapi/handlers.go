package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"studenthub.org/internal/audit"
	"studenthub.org/internal/auth"
	"studenthub.org/internal/content"
	"studenthub.org/internal/obs"
	"studenthub.org/internal/stream"
)

const serviceName = "studenthub-api"

// ReadyProbe reports readiness, typically by pinging the database.
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

// API is the HTTP layer of the portal backend.
type API struct {
	mux        *http.ServeMux
	auth       *auth.Service
	content    *content.Service
	stream     *stream.Stream
	readyProbe ReadyProbe
	version    string
}

func New(authSvc *auth.Service, contentSvc *content.Service, notifications *stream.Stream, rp ReadyProbe, version string) *API {
	a := &API{
		mux:        http.NewServeMux(),
		auth:       authSvc,
		content:    contentSvc,
		stream:     notifications,
		readyProbe: rp,
		version:    version,
	}

	// health/ready/info
	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)
	a.mux.HandleFunc("/v1/info", a.Info)

	// Prometheus metrics
	a.mux.Handle("/metrics", obs.Handler())

	// account endpoints
	a.mux.HandleFunc("/api/auth/register", a.handleRegister)
	a.mux.HandleFunc("/api/auth/login", a.handleLogin)
	a.mux.HandleFunc("/api/auth/logout", a.handleLogout)
	a.mux.HandleFunc("/api/auth/verify", a.handleVerify)
	a.mux.HandleFunc("/api/auth/change-password", a.handleChangePassword)
	a.mux.HandleFunc("/api/auth/profile", a.handleProfile)

	// public portal content
	a.mux.HandleFunc("/api/societies", a.handleSocieties)
	a.mux.HandleFunc("/api/societies/", a.handleSocietyResource)
	a.mux.HandleFunc("/api/councils", a.handleCouncils)
	a.mux.HandleFunc("/api/councils/", a.handleCouncilResource)
	a.mux.HandleFunc("/api/events/past", a.handlePastEvents)
	a.mux.HandleFunc("/api/events/upcoming", a.handleUpcomingEvents)
	a.mux.HandleFunc("/api/events/upcoming/", a.handleUpcomingEventResource)
	a.mux.HandleFunc("/api/achievements", a.handleAchievements)
	a.mux.HandleFunc("/api/achievements/featured", a.handleFeaturedAchievements)
	a.mux.HandleFunc("/api/gallery", a.handleGallery)
	a.mux.HandleFunc("/api/notifications", a.handleNotifications)
	a.mux.HandleFunc("/api/notifications/", a.handleNotificationResource)
	a.mux.HandleFunc("/api/notifications/stream", a.StreamNotifications)
	a.mux.HandleFunc("/api/hero-slides", a.handleHeroSlides)
	a.mux.HandleFunc("/api/hero-slides/", a.handleHeroSlideResource)
	a.mux.HandleFunc("/api/search", a.handleSearch)
	a.mux.HandleFunc("/api/stats", a.handleStats)

	// entity dashboards, guarded per family
	a.mux.HandleFunc("/api/society-dashboard/society/", func(w http.ResponseWriter, r *http.Request) {
		a.handleDashboard(w, r, "/api/society-dashboard/society/", auth.KindSociety, content.OwnerSociety)
	})
	a.mux.HandleFunc("/api/council-dashboard/council/", func(w http.ResponseWriter, r *http.Request) {
		a.handleDashboard(w, r, "/api/council-dashboard/council/", auth.KindCouncil, content.OwnerCouncil)
	})

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return a
}

// Handler returns the instrumented http.Handler for the server.
func (a *API) Handler() http.Handler {
	return obs.Instrument(a.mux)
}

// --- probes ---

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": serviceName,
		"version": a.version,
	})
}

func (a *API) Ready(w http.ResponseWriter, r *http.Request) {
	if err := a.readyProbe.Check(r.Context()); err != nil {
		obs.SetReady(false)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	obs.SetReady(true)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}

func (a *API) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    serviceName,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"version": a.version,
	})
}

// --- shared helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	payload := map[string]any{
		"error": msg,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	reader := http.MaxBytesReader(w, r.Body, 1<<20)
	defer reader.Close()
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

// handleAuthError maps auth failures to HTTP statuses. Authentication failures
// are 401, authorization failures 403. The scope payload helps dashboard
// clients explain which entity the admin actually owns.
func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var scopeErr *auth.ScopeError
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		writeError(w, r, http.StatusUnauthorized, "invalid token")
	case errors.As(err, &scopeErr):
		payload := map[string]any{
			"error":     scopeErr.Error(),
			"kind":      string(scopeErr.Kind),
			"entity_id": scopeErr.EntityID,
		}
		if scopeErr.OwnedID != nil {
			payload["owned_id"] = *scopeErr.OwnedID
		}
		if rid := RequestIDFromContext(r.Context()); rid != "" {
			payload["request_id"] = rid
		}
		writeJSON(w, http.StatusForbidden, payload)
	case errors.Is(err, auth.ErrInsufficientRole):
		writeError(w, r, http.StatusForbidden, "insufficient permissions")
	case errors.Is(err, auth.ErrCredentialMismatch):
		writeError(w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrConflict):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func handleContentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, content.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, content.ErrConflict):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, content.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func (a *API) audit(ctx context.Context, event string, fields map[string]any) {
	_ = audit.LogEvent(ctx, event, fields)
}
