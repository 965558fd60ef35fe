package repo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestVenueRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO venue \(name, location\)`).
		WithArgs("Hall A", "Downtown").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}).AddRow(1, "Hall A", "Downtown"))

	repo := NewVenueRepo(db)
	venue, err := repo.Create(context.Background(), "Hall A", "Downtown")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if venue.ID != 1 || venue.Name != "Hall A" || venue.Location != "Downtown" {
		t.Errorf("unexpected venue: %+v", venue)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestVenueRepo_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, location FROM venue ORDER BY name ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}).
			AddRow(2, "Annex", "East Side").
			AddRow(1, "Hall A", "Downtown"))

	repo := NewVenueRepo(db)
	venues, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(venues) != 2 || venues[0].Name != "Annex" || venues[1].Name != "Hall A" {
		t.Errorf("unexpected venues: %+v", venues)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestVenueRepo_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM venue`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	repo := NewVenueRepo(db)
	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
