package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"TaskFilterService/models"
)

const createPreferencesTable = `CREATE TABLE IF NOT EXISTS filter_preferences (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    payload JSON NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// MySQLConfig builds the driver configuration for the preference database.
func MySQLConfig(user, password, addr, dbName string) *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = addr
	cfg.DBName = dbName
	cfg.AllowNativePasswords = true
	cfg.ParseTime = true
	return cfg
}

// MySQLStore keeps each saved preference set as one row of filter_preferences.
type MySQLStore struct {
	base
	db *sql.DB
}

// OpenMySQL connects to dsn and returns a store over it.
func OpenMySQL(ctx context.Context, dsn string, opts ...Option) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping preference database: %w", err)
	}
	return NewMySQLStore(db, opts...), nil
}

func NewMySQLStore(db *sql.DB, opts ...Option) *MySQLStore {
	return &MySQLStore{base: newBase("mysql", opts), db: db}
}

func (s *MySQLStore) Close() error { return s.db.Close() }

func (s *MySQLStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createPreferencesTable); err != nil {
		return s.writeFailed("initialize preferences", err)
	}
	return nil
}

func (s *MySQLStore) Load(ctx context.Context) models.PreferenceDocument {
	if _, err := s.db.ExecContext(ctx, createPreferencesTable); err != nil {
		return s.fallback(err)
	}
	rows, err := s.db.QueryContext(ctx, "SELECT payload FROM filter_preferences ORDER BY id")
	if err != nil {
		return s.fallback(err)
	}
	defer rows.Close()

	doc := models.EmptyDocument()
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return s.fallback(fmt.Errorf("failed to scan preference row: %v", err))
		}
		var pref models.Preference
		if err := models.Decode(payload, &pref); err != nil {
			return s.fallback(err)
		}
		doc.SavedPreferences = append(doc.SavedPreferences, pref)
	}
	if err := rows.Err(); err != nil {
		return s.fallback(err)
	}
	return doc
}

func (s *MySQLStore) Save(ctx context.Context, entry models.Preference) error {
	stamped := s.stamp(entry)
	payload, err := json.Marshal(stamped)
	if err != nil {
		return s.writeFailed("save preferences", err)
	}
	if err := s.replace(ctx, payload); err != nil {
		return s.writeFailed("save preferences", err)
	}
	s.wrote("save preferences", models.PreferenceDocument{SavedPreferences: []models.Preference{stamped}})
	return nil
}

func (s *MySQLStore) Clear(ctx context.Context) error {
	if err := s.replace(ctx, nil); err != nil {
		return s.writeFailed("clear preferences", err)
	}
	s.wrote("clear preferences", models.EmptyDocument())
	return nil
}

// replace deletes every stored row and, when payload is non-nil, inserts it
// as the only row, all in one transaction.
func (s *MySQLStore) replace(ctx context.Context, payload []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM filter_preferences"); err != nil {
		return fmt.Errorf("failed to execute SQL statement: %w", err)
	}
	if payload != nil {
		if _, err := tx.ExecContext(ctx, "INSERT INTO filter_preferences(payload) VALUES(?)", payload); err != nil {
			return fmt.Errorf("failed to execute SQL statement: %w", err)
		}
	}
	return tx.Commit()
}
