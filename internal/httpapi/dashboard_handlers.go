package httpapi

import (
	"net/http"
	"strings"

	"studenthub.org/internal/auth"
	"studenthub.org/internal/content"
)

// handleDashboard dispatches the entity dashboard families. Every request is
// authorized against the target entity before any routing below it: global
// admins pass for any entity, scoped admins only for their own.
func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request, prefix string, kind auth.EntityKind, owner content.OwnerKind) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	parts := strings.Split(path, "/")
	entityID, ok := parseID(parts[0])
	if !ok {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}

	account, err := a.auth.Authorize(r.Context(), r.Header.Get(authHeader), entityID, kind)
	if err != nil {
		handleAuthError(w, r, err)
		return
	}
	r = r.WithContext(auth.ContextWithAccount(r.Context(), account))

	rest := parts[1:]
	switch {
	case len(rest) == 0:
		a.dashboardEntity(w, r, kind, entityID)
	case rest[0] == "past-events":
		a.dashboardPastEvents(w, r, owner, entityID, rest[1:])
	case rest[0] == "upcoming-events":
		a.dashboardUpcomingEvents(w, r, owner, entityID, rest[1:])
	case rest[0] == "achievements":
		a.dashboardAchievements(w, r, owner, entityID, rest[1:])
	case rest[0] == "gallery":
		a.dashboardGallery(w, r, owner, entityID, rest[1:])
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

// dashboardEntity serves the entity profile itself.
func (a *API) dashboardEntity(w http.ResponseWriter, r *http.Request, kind auth.EntityKind, entityID int64) {
	switch r.Method {
	case http.MethodGet:
		if kind == auth.KindCouncil {
			c, err := a.content.GetCouncil(r.Context(), entityID)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, c)
			return
		}
		soc, err := a.content.GetSociety(r.Context(), entityID)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, soc)
	case http.MethodPut:
		if kind == auth.KindCouncil {
			var c content.Council
			if err := decodeJSON(w, r, &c); err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			updated, err := a.content.UpdateCouncil(r.Context(), entityID, &c)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.council.update", map[string]any{"council_id": entityID})
			writeJSON(w, http.StatusOK, updated)
			return
		}
		var soc content.Society
		if err := decodeJSON(w, r, &soc); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := a.content.UpdateSociety(r.Context(), entityID, &soc)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		a.audit(r.Context(), "dashboard.society.update", map[string]any{"society_id": entityID})
		writeJSON(w, http.StatusOK, updated)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}

func (a *API) dashboardPastEvents(w http.ResponseWriter, r *http.Request, owner content.OwnerKind, entityID int64, rest []string) {
	switch {
	case len(rest) == 0:
		switch r.Method {
		case http.MethodGet:
			events, err := a.content.ListOwnedPastEvents(r.Context(), owner, entityID)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, events)
		case http.MethodPost:
			var e content.PastEvent
			if err := decodeJSON(w, r, &e); err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			created, err := a.content.CreateOwnedPastEvent(r.Context(), owner, entityID, &e)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.pastevent.create", map[string]any{
				"event_id": created.ID,
				"owner":    string(owner),
			})
			writeJSON(w, http.StatusCreated, created)
		default:
			methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		}
	case len(rest) == 1:
		eventID, ok := parseID(rest[0])
		if !ok {
			writeError(w, r, http.StatusNotFound, "resource not found")
			return
		}
		switch r.Method {
		case http.MethodPut:
			var e content.PastEvent
			if err := decodeJSON(w, r, &e); err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			updated, err := a.content.UpdateOwnedPastEvent(r.Context(), owner, entityID, eventID, &e)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.pastevent.update", map[string]any{"event_id": eventID})
			writeJSON(w, http.StatusOK, updated)
		case http.MethodDelete:
			if err := a.content.DeleteOwnedPastEvent(r.Context(), owner, entityID, eventID); err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.pastevent.delete", map[string]any{"event_id": eventID})
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
		default:
			methodNotAllowed(w, r, http.MethodPut, http.MethodDelete)
		}
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) dashboardUpcomingEvents(w http.ResponseWriter, r *http.Request, owner content.OwnerKind, entityID int64, rest []string) {
	switch {
	case len(rest) == 0:
		switch r.Method {
		case http.MethodGet:
			events, err := a.content.ListOwnedUpcomingEvents(r.Context(), owner, entityID)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, events)
		case http.MethodPost:
			var e content.UpcomingEvent
			if err := decodeJSON(w, r, &e); err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			created, err := a.content.CreateOwnedUpcomingEvent(r.Context(), owner, entityID, &e)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.upcomingevent.create", map[string]any{
				"event_id": created.ID,
				"owner":    string(owner),
			})
			writeJSON(w, http.StatusCreated, created)
		default:
			methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		}
	case len(rest) == 1:
		eventID, ok := parseID(rest[0])
		if !ok {
			writeError(w, r, http.StatusNotFound, "resource not found")
			return
		}
		switch r.Method {
		case http.MethodPut:
			var e content.UpcomingEvent
			if err := decodeJSON(w, r, &e); err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			updated, err := a.content.UpdateOwnedUpcomingEvent(r.Context(), owner, entityID, eventID, &e)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.upcomingevent.update", map[string]any{"event_id": eventID})
			writeJSON(w, http.StatusOK, updated)
		case http.MethodDelete:
			if err := a.content.DeleteOwnedUpcomingEvent(r.Context(), owner, entityID, eventID); err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.upcomingevent.delete", map[string]any{"event_id": eventID})
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
		default:
			methodNotAllowed(w, r, http.MethodPut, http.MethodDelete)
		}
	case len(rest) == 2 && rest[1] == "registrations":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, http.MethodGet)
			return
		}
		eventID, ok := parseID(rest[0])
		if !ok {
			writeError(w, r, http.StatusNotFound, "resource not found")
			return
		}
		// Confirm the event belongs to this dashboard before listing.
		event, err := a.content.GetUpcomingEvent(r.Context(), eventID)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		if !content.OwnedBy(owner, entityID, event.SocietyID, event.CouncilID) {
			writeError(w, r, http.StatusNotFound, "resource not found")
			return
		}
		regs, err := a.content.ListEventRegistrations(r.Context(), eventID)
		if err != nil {
			handleContentError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, regs)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) dashboardAchievements(w http.ResponseWriter, r *http.Request, owner content.OwnerKind, entityID int64, rest []string) {
	switch {
	case len(rest) == 0:
		switch r.Method {
		case http.MethodGet:
			achievements, err := a.content.ListOwnedAchievements(r.Context(), owner, entityID)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, achievements)
		case http.MethodPost:
			var ach content.Achievement
			if err := decodeJSON(w, r, &ach); err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			created, err := a.content.CreateOwnedAchievement(r.Context(), owner, entityID, &ach)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.achievement.create", map[string]any{"achievement_id": created.ID})
			writeJSON(w, http.StatusCreated, created)
		default:
			methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		}
	case len(rest) == 1:
		achievementID, ok := parseID(rest[0])
		if !ok {
			writeError(w, r, http.StatusNotFound, "resource not found")
			return
		}
		switch r.Method {
		case http.MethodPut:
			var ach content.Achievement
			if err := decodeJSON(w, r, &ach); err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			updated, err := a.content.UpdateOwnedAchievement(r.Context(), owner, entityID, achievementID, &ach)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.achievement.update", map[string]any{"achievement_id": achievementID})
			writeJSON(w, http.StatusOK, updated)
		case http.MethodDelete:
			if err := a.content.DeleteOwnedAchievement(r.Context(), owner, entityID, achievementID); err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.achievement.delete", map[string]any{"achievement_id": achievementID})
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
		default:
			methodNotAllowed(w, r, http.MethodPut, http.MethodDelete)
		}
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) dashboardGallery(w http.ResponseWriter, r *http.Request, owner content.OwnerKind, entityID int64, rest []string) {
	switch {
	case len(rest) == 0:
		switch r.Method {
		case http.MethodGet:
			items, err := a.content.ListOwnedGallery(r.Context(), owner, entityID)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, items)
		case http.MethodPost:
			var g content.GalleryItem
			if err := decodeJSON(w, r, &g); err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			created, err := a.content.CreateOwnedGalleryItem(r.Context(), owner, entityID, &g)
			if err != nil {
				handleContentError(w, r, err)
				return
			}
			a.audit(r.Context(), "dashboard.gallery.create", map[string]any{"item_id": created.ID})
			writeJSON(w, http.StatusCreated, created)
		default:
			methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		}
	case len(rest) == 1:
		itemID, ok := parseID(rest[0])
		if !ok {
			writeError(w, r, http.StatusNotFound, "resource not found")
			return
		}
		if r.Method != http.MethodDelete {
			methodNotAllowed(w, r, http.MethodDelete)
			return
		}
		if err := a.content.DeleteOwnedGalleryItem(r.Context(), owner, entityID, itemID); err != nil {
			handleContentError(w, r, err)
			return
		}
		a.audit(r.Context(), "dashboard.gallery.delete", map[string]any{"item_id": itemID})
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}
