// Package sqlite is the embedded-database backend, for installations that
// outgrow the whole-file JSON store but do not run a database server.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return s, nil
}

func (s *Storage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			username      TEXT PRIMARY KEY,
			age           TEXT NOT NULL DEFAULT '',
			sex           TEXT NOT NULL DEFAULT '',
			reason        TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			salt          TEXT NOT NULL,
			created_at    DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS records (
			id       TEXT PRIMARY KEY,
			username TEXT NOT NULL REFERENCES accounts(username),
			category TEXT NOT NULL,
			rec_date TEXT NOT NULL,
			rec_time TEXT NOT NULL DEFAULT '',
			fields   TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_records_owner ON records(username, category);
	`)

	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}
