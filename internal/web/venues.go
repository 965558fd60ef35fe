package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/crucial707/scheduler/internal/middleware"
	"github.com/crucial707/scheduler/internal/repo"
)

// VenueHandler serves the venue pages. Venues are global records; the add
// routes are public while listing requires a session, matching the original
// application (see DESIGN.md for the open-question note).
type VenueHandler struct {
	Venues *repo.VenueRepo
}

func (h *VenueHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "add_venue.html", map[string]interface{}{
		"Flash": popFlash(w, r),
	})
}

func (h *VenueHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	location := strings.TrimSpace(r.FormValue("location"))

	if name == "" || location == "" {
		setFlash(w, "Both name and location are required.")
		http.Redirect(w, r, "/add_venue", http.StatusFound)
		return
	}

	if _, err := h.Venues.Create(r.Context(), name, location); err != nil {
		slog.Error("add venue", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "Venue added successfully.")
	http.Redirect(w, r, "/", http.StatusFound)
}

// List shows all venues ordered by name.
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.UserFrom(r.Context())
	username := ""
	if sess != nil {
		username = sess.Username
	}

	venues, err := h.Venues.List(r.Context())
	if err != nil {
		slog.Error("list venues", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	renderTemplate(w, "venues.html", map[string]interface{}{
		"Flash":    popFlash(w, r),
		"Username": username,
		"Venues":   venues,
	})
}
