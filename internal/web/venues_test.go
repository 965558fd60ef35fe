package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/crucial707/scheduler/internal/repo"
)

func TestVenueHandler_Add_NoSessionRequired(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO venue \(name, location\)`).
		WithArgs("Hall A", "Downtown").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}).AddRow(1, "Hall A", "Downtown"))

	h := &VenueHandler{Venues: repo.NewVenueRepo(db)}
	rr := httptest.NewRecorder()
	// No session on the request; the add-venue operation is public.
	h.Add(rr, newFormRequest("/add_venue", url.Values{"name": {" Hall A "}, "location": {"Downtown"}}))

	if rr.Code != http.StatusFound {
		t.Errorf("status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect: got %q, want /", loc)
	}
	if msg := flashMessage(t, rr); msg != "Venue added successfully." {
		t.Errorf("flash: got %q", msg)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestVenueHandler_Add_MissingField(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := &VenueHandler{Venues: repo.NewVenueRepo(db)}
	rr := httptest.NewRecorder()
	h.Add(rr, newFormRequest("/add_venue", url.Values{"name": {"Hall A"}, "location": {"  "}}))

	if loc := rr.Header().Get("Location"); loc != "/add_venue" {
		t.Errorf("redirect: got %q, want /add_venue", loc)
	}
	if msg := flashMessage(t, rr); msg != "Both name and location are required." {
		t.Errorf("flash: got %q", msg)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestVenueHandler_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, location FROM venue ORDER BY name ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}).
			AddRow(2, "Annex", "East Side").
			AddRow(1, "Hall A", "Downtown"))

	h := &VenueHandler{Venues: repo.NewVenueRepo(db)}
	rr := httptest.NewRecorder()
	h.List(rr, taskRequest("GET", "/venues", nil, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Hall A") || !strings.Contains(body, "Annex") {
		t.Errorf("page missing venues: %s", body)
	}
	// Name-ascending order is part of the contract.
	if strings.Index(body, "Annex") > strings.Index(body, "Hall A") {
		t.Error("venues not ordered by name")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
