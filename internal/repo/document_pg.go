package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgDocumentStore keeps the trip document in a single jsonb row of the
// trip_documents table, keyed by file name. It is the self-hosted stand-in
// for the remote document API and has the same whole-document semantics.
type pgDocumentStore struct {
	db db
}

// NewPostgresDocumentStore constructs a DocumentStore backed by the provided
// db connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewPostgresDocumentStore(db db) DocumentStore {
	return &pgDocumentStore{db: db}
}

// Fetch reads the stored document. A missing row is an empty collection.
func (s *pgDocumentStore) Fetch(ctx context.Context) (Document, error) {
	const q = `
		SELECT jsonb_build_object('file_data', file_data)
		FROM trip_documents
		WHERE file_name = @file_name`

	var raw []byte
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"file_name": documentFileName}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{Trips: []domain.Trip{}}, nil
		}
		return Document{}, fmt.Errorf("repo.DocumentStore.Fetch: %w", err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return Document{}, fmt.Errorf("repo.DocumentStore.Fetch: %w", err)
	}
	return doc, nil
}

// Replace upserts the whole document row.
func (s *pgDocumentStore) Replace(ctx context.Context, doc Document) error {
	const q = `
		INSERT INTO trip_documents (file_name, file_data, region_name, is_public)
		VALUES (@file_name, @file_data::jsonb, @region_name, @is_public)
		ON CONFLICT (file_name) DO UPDATE
		SET file_data   = EXCLUDED.file_data,
		    updated_at  = now()`

	data, err := json.Marshal(fileData{Trips: tripsOf(doc)})
	if err != nil {
		return fmt.Errorf("repo.DocumentStore.Replace: encode: %w", err)
	}

	_, err = s.db.Exec(ctx, q, pgx.NamedArgs{
		"file_name":   documentFileName,
		"file_data":   string(data),
		"region_name": documentRegionName,
		"is_public":   documentIsPublic,
	})
	if err != nil {
		return fmt.Errorf("repo.DocumentStore.Replace: %w", err)
	}
	return nil
}
