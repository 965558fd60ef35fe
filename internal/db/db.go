package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/crucial707/scheduler/internal/config"
)

// Connect opens the postgres pool with the configured limits and verifies it
// with a ping. The pool is shared by all requests; each handler borrows a
// connection for the duration of its queries and database/sql returns it.
func Connect(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPass,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
