package web

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crucial707/scheduler/internal/middleware"
	"github.com/crucial707/scheduler/internal/repo"
	"github.com/crucial707/scheduler/internal/session"
)

// NewRouter wires repositories, handlers, and the middleware chain into the
// full route table. hsts should be true when the server terminates TLS.
func NewRouter(db *sql.DB, sessions *session.Manager, hsts bool) http.Handler {
	users := repo.NewUserRepo(db)
	tasks := repo.NewTaskRepo(db)
	venues := repo.NewVenueRepo(db)

	auth := &AuthHandler{Users: users, Sessions: sessions}
	taskH := &TaskHandler{Tasks: tasks, Venues: venues}
	venueH := &VenueHandler{Venues: venues}

	authRL := middleware.AuthRateLimiter()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(hsts))
	r.Use(middleware.Prometheus)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method("GET", "/metrics", promhttp.Handler())

	// Public
	r.Get("/register", auth.RegisterForm)
	r.With(authRL.Middleware).Post("/register", auth.Register)
	r.Get("/login", auth.LoginForm)
	r.With(authRL.Middleware).Post("/login", auth.Login)
	// add_venue is deliberately public while /venues is not; the original
	// behaves this way and the asymmetry is preserved, not fixed.
	r.Get("/add_venue", venueH.AddForm)
	r.Post("/add_venue", venueH.Add)

	// Protected: the session gate runs before any handler or storage access.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser(sessions))
		r.Get("/", taskH.Index)
		r.Get("/logout", auth.Logout)
		r.Get("/venues", venueH.List)
		r.Post("/add", taskH.Add)
		r.Post("/delete/{id}", taskH.Delete)
		r.Get("/edit/{id}", taskH.EditForm)
		r.Post("/edit/{id}", taskH.Edit)
	})

	return r
}
