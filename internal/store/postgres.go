package store

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore persists documents in a single documents table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres opens a connection and runs the schema migration.
func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	// Note: In production, use dedicated migration tools (e.g., golang-migrate/migrate)
	// that run as a separate deployment step before app services start.
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			filename TEXT,
			content TEXT,
			created_at TIMESTAMPTZ DEFAULT now()
		)`)
	return err
}

func (s *PostgresStore) Put(ctx context.Context, doc Document) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents(id, filename, content, created_at)
		VALUES($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET filename=excluded.filename, content=excluded.content, created_at=excluded.created_at`,
		doc.ID, doc.Filename, doc.Text, doc.CreatedAt)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Document, error) {
	var doc Document
	row := s.db.QueryRowContext(ctx, `SELECT id, filename, content, created_at FROM documents WHERE id=$1`, id)
	if err := row.Scan(&doc.ID, &doc.Filename, &doc.Text, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrDocumentNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// Close closes the underlying database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
