package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"studenthub.org/internal/content"
)

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Societies ----------------------------------------------------------------

func (a *API) handleSocieties(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		activeOnly := r.URL.Query().Get("include_inactive") != "true"
		societies, err := a.content.ListSocieties(r.Context(), activeOnly)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, societies)
	case http.MethodPost:
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		var soc content.Society
		if err := decodeJSON(w, r, &soc); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		created, err := a.content.CreateSociety(r.Context(), &soc)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		a.audit(r.Context(), "content.society.create", map[string]any{"name": created.Name})
		w.Header().Set("Location", "/api/societies/"+strconv.FormatInt(created.ID, 10))
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleSocietyResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/societies/"), "/")
	if name, ok := strings.CutPrefix(path, "name/"); ok {
		soc, err := a.content.GetSocietyByName(r.Context(), name)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, soc)
		return
	}
	id, ok := parseID(path)
	if !ok {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	soc, err := a.content.GetSociety(r.Context(), id)
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, soc)
}

// Councils -----------------------------------------------------------------

func (a *API) handleCouncils(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		activeOnly := r.URL.Query().Get("include_inactive") != "true"
		councils, err := a.content.ListCouncils(r.Context(), activeOnly)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, councils)
	case http.MethodPost:
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		var c content.Council
		if err := decodeJSON(w, r, &c); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		created, err := a.content.CreateCouncil(r.Context(), &c)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		a.audit(r.Context(), "content.council.create", map[string]any{"name": created.Name})
		w.Header().Set("Location", "/api/councils/"+strconv.FormatInt(created.ID, 10))
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleCouncilResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/councils/"), "/")
	if name, ok := strings.CutPrefix(path, "name/"); ok {
		c, err := a.content.GetCouncilByName(r.Context(), name)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
		return
	}
	id, ok := parseID(path)
	if !ok {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	c, err := a.content.GetCouncil(r.Context(), id)
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Events -------------------------------------------------------------------

func (a *API) handlePastEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	events, err := a.content.ListPastEvents(r.Context())
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (a *API) handleUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	events, err := a.content.ListUpcomingEvents(r.Context())
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

type registerForEventRequest struct {
	SpecialRequirements string `json:"special_requirements"`
}

func (a *API) handleUpcomingEventResource(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/events/upcoming/"), "/")
	parts := strings.Split(path, "/")
	id, ok := parseID(parts[0])
	if !ok {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}

	switch {
	case len(parts) == 1:
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, http.MethodGet)
			return
		}
		event, err := a.content.GetUpcomingEvent(r.Context(), id)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, event)
	case len(parts) == 2 && parts[1] == "register":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, r, http.MethodPost)
			return
		}
		account, ok := a.requireAccount(w, r)
		if !ok {
			return
		}
		var req registerForEventRequest
		if err := decodeJSON(w, r, &req); err != nil && err.Error() != "request body is required" {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		reg, err := a.content.RegisterForEvent(r.Context(), account.ID, id, req.SpecialRequirements)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		a.audit(r.Context(), "content.event.register", map[string]any{
			"event_id": id,
			"user_id":  account.ID,
		})
		writeJSON(w, http.StatusCreated, reg)
	case len(parts) == 2 && parts[1] == "registrations":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, http.MethodGet)
			return
		}
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		regs, err := a.content.ListEventRegistrations(r.Context(), id)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, regs)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

// Achievements and gallery -------------------------------------------------

func (a *API) handleAchievements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	achievements, err := a.content.ListAchievements(r.Context())
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, achievements)
}

func (a *API) handleFeaturedAchievements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	achievements, err := a.content.ListFeaturedAchievements(r.Context())
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, achievements)
}

func (a *API) handleGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		items, err := a.content.ListGalleryByCategory(r.Context(), category)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}
	items, err := a.content.ListGallery(r.Context())
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Search and stats ---------------------------------------------------------

func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	results, err := a.content.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	stats, err := a.content.Stats(r.Context())
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Notifications ------------------------------------------------------------

func (a *API) handleNotifications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		unreadOnly := r.URL.Query().Get("unread") == "true"
		notifications, err := a.content.ListNotifications(r.Context(), unreadOnly)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, notifications)
	case http.MethodPost:
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		var n content.Notification
		if err := decodeJSON(w, r, &n); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		published, err := a.content.PublishNotification(r.Context(), &n)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		if a.stream != nil {
			a.stream.Publish(published)
		}
		a.audit(r.Context(), "content.notification.publish", map[string]any{
			"notification_id": published.ID,
			"title":           published.Title,
		})
		writeJSON(w, http.StatusCreated, published)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleNotificationResource(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/notifications/"), "/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[1] != "read" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	id, ok := parseID(parts[0])
	if !ok {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	if _, ok := a.requireAccount(w, r); !ok {
		return
	}
	if err := a.content.MarkNotificationRead(r.Context(), id); err != nil {
		handleContentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Hero slides --------------------------------------------------------------

func (a *API) handleHeroSlides(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		activeOnly := r.URL.Query().Get("include_inactive") != "true"
		slides, err := a.content.ListHeroSlides(r.Context(), activeOnly)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, slides)
	case http.MethodPost:
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		var h content.HeroSlide
		if err := decodeJSON(w, r, &h); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		created, err := a.content.CreateHeroSlide(r.Context(), &h)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		a.audit(r.Context(), "content.heroslide.create", map[string]any{"title": created.Title})
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleHeroSlideResource(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/hero-slides/"), "/")
	id, ok := parseID(path)
	if !ok {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	switch r.Method {
	case http.MethodPut:
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		var h content.HeroSlide
		if err := decodeJSON(w, r, &h); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := a.content.UpdateHeroSlide(r.Context(), id, &h)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if _, ok := a.requireAdmin(w, r); !ok {
			return
		}
		if err := a.content.DeleteHeroSlide(r.Context(), id); err != nil {
			handleContentError(w, r, err)
			return
		}
		a.audit(r.Context(), "content.heroslide.delete", map[string]any{"slide_id": id})
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	default:
		methodNotAllowed(w, r, http.MethodPut, http.MethodDelete)
	}
}
