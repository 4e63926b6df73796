package store

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every collection as one row in a collections table.
type SQLiteStore struct {
	db *sqlx.DB
}

func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func NewSQLiteStore(db *sqlx.DB) (*SQLiteStore, error) {
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS collections(
  name TEXT PRIMARY KEY,
  data TEXT NOT NULL,
  version INTEGER NOT NULL DEFAULT 1,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *SQLiteStore) Load(name string) ([]byte, int64, bool, error) {
	var row struct {
		Data    string `db:"data"`
		Version int64  `db:"version"`
	}
	err := s.db.Get(&row, `SELECT data, version FROM collections WHERE name = ?`, name)
	if err == sql.ErrNoRows {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, err
	}
	return []byte(row.Data), row.Version, true, nil
}

func (s *SQLiteStore) Replace(name string, data []byte, version int64) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if version == 0 {
		res, err := tx.Exec(`
		  INSERT INTO collections(name, data, version, updated_at)
		  VALUES(?, ?, 1, CURRENT_TIMESTAMP)
		  ON CONFLICT(name) DO NOTHING
		`, name, string(data))
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrVersionConflict
		}
		return tx.Commit()
	}

	res, err := tx.Exec(`
	  UPDATE collections
	  SET data = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
	  WHERE name = ? AND version = ?
	`, string(data), name, version)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVersionConflict
	}
	return tx.Commit()
}
