package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// PgStore keeps slots in a single app_state table, for offices that already
// run the school PostgreSQL server and want receipts on it too.
type PgStore struct {
	db *sql.DB
}

// NewPgStore connects, verifies the connection and ensures the app_state
// table exists.
func NewPgStore(dsn string) (*PgStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if err := bootstrap(db); err != nil {
		db.Close()
		return nil, err
	}
	log.Println("Connected to PostgreSQL state store")
	return &PgStore{db: db}, nil
}

func (s *PgStore) Close() error {
	return s.db.Close()
}

// bootstrap applies the single schema migration the store needs.
func bootstrap(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS app_state (
			slot TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create app_state table: %w", err)
	}
	return nil
}

func (s *PgStore) Load(slot string, into any) (bool, error) {
	var data []byte
	query := `SELECT data FROM app_state WHERE slot = $1`
	err := s.db.QueryRow(query, slot).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read slot %s: %w", slot, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return false, fmt.Errorf("decode slot %s: %w", slot, err)
	}
	return true, nil
}

func (s *PgStore) Save(slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}
	query := `INSERT INTO app_state (slot, data, updated_at) VALUES ($1, $2, NOW())
			  ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`
	if _, err := s.db.Exec(query, slot, data); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}
