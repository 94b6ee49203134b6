package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures the question-bank schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:paperpress.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/paperpress?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS questions (
  id TEXT PRIMARY KEY,
  class_id TEXT NOT NULL,
  subject TEXT NOT NULL,
  chapter_number INTEGER NOT NULL DEFAULT 0,
  chapter_name TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL CHECK(type IN ('mcq','short','long')),
  question_text TEXT NOT NULL,
  options_json TEXT,
  correct_option INTEGER,
  difficulty TEXT NOT NULL DEFAULT 'medium',
  marks INTEGER NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_class_subject
  ON questions (class_id, subject);
CREATE INDEX IF NOT EXISTS idx_questions_type
  ON questions (type);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS questions (
  id TEXT PRIMARY KEY,
  class_id TEXT NOT NULL,
  subject TEXT NOT NULL,
  chapter_number INTEGER NOT NULL DEFAULT 0,
  chapter_name TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL CHECK(type IN ('mcq','short','long')),
  question_text TEXT NOT NULL,
  options_json TEXT,
  correct_option INTEGER,
  difficulty TEXT NOT NULL DEFAULT 'medium',
  marks INTEGER NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_class_subject
  ON questions (class_id, subject);
CREATE INDEX IF NOT EXISTS idx_questions_type
  ON questions (type);
`
