package web

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/crucial707/scheduler/internal/repo"
	"github.com/crucial707/scheduler/internal/session"
)

// uniqueViolation is the postgres error code for a duplicate key.
const uniqueViolation = "23505"

// AuthHandler serves the register/login/logout flows.
type AuthHandler struct {
	Users    *repo.UserRepo
	Sessions *session.Manager
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "register.html", map[string]interface{}{
		"Flash": popFlash(w, r),
	})
}

// Register creates the user with a bcrypt-hashed credential. Duplicate or
// missing fields send the caller back to the form; success redirects to the
// login form without starting a session.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		setFlash(w, "Username and password required.")
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}
	// bcrypt rejects inputs over 72 bytes.
	if len(password) > 72 {
		setFlash(w, "Password must be at most 72 characters.")
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("register: hash password", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := h.Users.Create(r.Context(), username, string(hash)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			setFlash(w, "Username already taken.")
			http.Redirect(w, r, "/register", http.StatusFound)
			return
		}
		slog.Error("register: create user", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "Registered. Please log in.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Sessions.FromRequest(r); err == nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	renderTemplate(w, "login.html", map[string]interface{}{
		"Flash": popFlash(w, r),
	})
}

// Login verifies the credential and starts a session. Unknown username and
// wrong password produce the same generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.Users.GetByUsername(r.Context(), username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("login: get user", "error", err)
		}
		setFlash(w, "Invalid credentials.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		setFlash(w, "Invalid credentials.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := h.Sessions.Issue(w, user); err != nil {
		slog.Error("login: issue session", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
