package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/crucial707/scheduler/internal/session"
)

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	sessions := session.NewManager([]byte("test-secret"), time.Hour)
	return NewRouter(db, sessions, false), mock
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Errorf("body: got %q, want ok", rr.Body.String())
	}
}

func TestRouter_ProtectedRoutesRedirectAnonymous(t *testing.T) {
	router, mock := newTestRouter(t)

	// The gate must run before any storage access: no query expectations are
	// registered, so a handler reaching the database would fail the test.
	for _, tc := range []struct{ method, path string }{
		{"GET", "/"},
		{"GET", "/venues"},
		{"GET", "/logout"},
		{"POST", "/add"},
		{"POST", "/delete/1"},
		{"GET", "/edit/1"},
		{"POST", "/edit/1"},
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != http.StatusFound {
			t.Errorf("%s %s: status got %d, want 302", tc.method, tc.path, rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/login" {
			t.Errorf("%s %s: redirect got %q, want /login", tc.method, tc.path, loc)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/login", "/register", "/add_venue"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
		if rr.Code != http.StatusOK {
			t.Errorf("GET %s: status got %d, want 200", path, rr.Code)
		}
	}
}

func TestRouter_LoginThenIndex(t *testing.T) {
	router, mock := newTestRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	mock.ExpectQuery(`SELECT id, username, password_hash`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(1, "alice", string(hash)))

	form := url.Values{"username": {"alice"}, "password": {"pw123"}}
	loginReq := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	loginReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	loginRR := httptest.NewRecorder()
	router.ServeHTTP(loginRR, loginReq)

	if loginRR.Code != http.StatusFound {
		t.Fatalf("login status: got %d, want 302", loginRR.Code)
	}
	if loc := loginRR.Header().Get("Location"); loc != "/" {
		t.Fatalf("login redirect: got %q, want /", loc)
	}

	var sessCookie *http.Cookie
	for _, c := range loginRR.Result().Cookies() {
		if c.Name == session.CookieName {
			sessCookie = c
		}
	}
	if sessCookie == nil || sessCookie.Value == "" {
		t.Fatal("expected session cookie after login")
	}

	mock.ExpectQuery(`SELECT id, user_id, title, date::text, time::text, notes`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "date", "time", "notes"}).
			AddRow(1, 1, "Meeting", "2024-03-01", nil, nil))
	mock.ExpectQuery(`SELECT id, name, location FROM venue`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}))

	indexReq := httptest.NewRequest("GET", "/", nil)
	indexReq.AddCookie(sessCookie)
	indexRR := httptest.NewRecorder()
	router.ServeHTTP(indexRR, indexReq)

	if indexRR.Code != http.StatusOK {
		t.Fatalf("index status: got %d, want 200", indexRR.Code)
	}
	if !strings.Contains(indexRR.Body.String(), "Meeting") {
		t.Error("index page missing the user's task")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/login", nil))

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options: got %q", got)
	}
}
