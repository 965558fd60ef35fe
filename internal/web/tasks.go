package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/crucial707/scheduler/internal/metrics"
	"github.com/crucial707/scheduler/internal/middleware"
	"github.com/crucial707/scheduler/internal/repo"
)

// TaskHandler serves the schedule pages. Every operation reads the owner from
// the session context; ownership filtering itself happens in the repo SQL.
type TaskHandler struct {
	Tasks  *repo.TaskRepo
	Venues *repo.VenueRepo
}

// Index lists the signed-in user's entries plus all venues.
func (h *TaskHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	tasks, err := h.Tasks.ListByUser(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("index: list tasks", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	venues, err := h.Venues.List(r.Context())
	if err != nil {
		slog.Error("index: list venues", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	renderTemplate(w, "index.html", map[string]interface{}{
		"Flash":    popFlash(w, r),
		"Username": sess.Username,
		"Tasks":    tasks,
		"Venues":   venues,
	})
}

// Add creates an entry for the signed-in user. Empty optional fields are
// normalized to nil before storage so they persist as NULL.
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		setFlash(w, "Task title required.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	date := optional(r.FormValue("date"))
	timeOfDay := optional(r.FormValue("time"))
	notes := optional(r.FormValue("notes"))

	if _, err := h.Tasks.Create(r.Context(), sess.UserID, title, date, timeOfDay, notes); err != nil {
		slog.Error("add task", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	metrics.IncTaskMutation("add")
	http.Redirect(w, r, "/", http.StatusFound)
}

// EditForm shows the edit form for an entry owned by the signed-in user.
// A missing or non-owned id reads as "not found" and returns to the list.
func (h *TaskHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		setFlash(w, "Task not found.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	task, err := h.Tasks.GetByID(r.Context(), id, sess.UserID)
	if err != nil {
		slog.Error("edit form: get task", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if task == nil {
		setFlash(w, "Task not found.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	renderTemplate(w, "edit.html", map[string]interface{}{
		"Flash":    popFlash(w, r),
		"Username": sess.Username,
		"Task":     task,
	})
}

// Edit performs a full-field update of an entry owned by the signed-in user.
func (h *TaskHandler) Edit(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		setFlash(w, "Task not found.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		setFlash(w, "Title required.")
		http.Redirect(w, r, "/edit/"+idStr, http.StatusFound)
		return
	}

	date := optional(r.FormValue("date"))
	timeOfDay := optional(r.FormValue("time"))
	notes := optional(r.FormValue("notes"))

	updated, err := h.Tasks.Update(r.Context(), id, sess.UserID, title, date, timeOfDay, notes)
	if err != nil {
		slog.Error("edit task", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !updated {
		setFlash(w, "Task not found.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	metrics.IncTaskMutation("edit")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Delete removes an entry owned by the signed-in user. Missing or non-owned
// ids delete nothing and still redirect to the list; the operation is
// idempotent.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := h.Tasks.Delete(r.Context(), id, sess.UserID); err != nil {
		slog.Error("delete task", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	metrics.IncTaskMutation("delete")
	http.Redirect(w, r, "/", http.StatusFound)
}

// optional trims a form value and maps "" to nil so it is stored as NULL.
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
