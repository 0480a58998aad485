package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	_ "github.com/lib/pq" // PostgreSQL driver
)

type Repository struct {
	DB *sql.DB
}

// NewRepository creates a PostgreSQL endpoint repository with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

// NewRepositoryWithPoolConfig creates a PostgreSQL endpoint repository with a custom pool
func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Repository{
		DB: db,
	}, nil
}

const columns = "id, url, is_primary, headers, is_active, created_at, updated_at"

// Get fetches a single endpoint by id
func (r *Repository) Get(ctx context.Context, id int64) (endpoint.Endpoint, error) {
	query := "SELECT " + columns + " FROM endpoints WHERE id = $1"

	e, err := scanEndpoint(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return endpoint.Endpoint{}, endpoint.ErrNotFound
	}
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("selecting endpoint: %w", err)
	}

	return e, nil
}

// List returns all endpoints, primary first, then insertion order
func (r *Repository) List(ctx context.Context) ([]endpoint.Endpoint, error) {
	query := "SELECT " + columns + " FROM endpoints ORDER BY is_primary DESC, id ASC"
	return r.selectEndpoints(ctx, query)
}

// Active returns the endpoints with is_active = true
func (r *Repository) Active(ctx context.Context) ([]endpoint.Endpoint, error) {
	query := "SELECT " + columns + " FROM endpoints WHERE is_active = TRUE ORDER BY is_primary DESC, id ASC"
	return r.selectEndpoints(ctx, query)
}

func (r *Repository) selectEndpoints(ctx context.Context, query string) ([]endpoint.Endpoint, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting endpoints: %w", err)
	}
	defer rows.Close()

	var endpoints []endpoint.Endpoint
	for rows.Next() {
		e, err := scanEndpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning endpoint: %w", err)
		}
		endpoints = append(endpoints, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating endpoints: %w", err)
	}

	return endpoints, nil
}

/* Insert stores a new endpoint
 * The clear-then-set of the primary flag runs in one transaction so two
 * concurrent "set primary" calls cannot leave two primaries behind.
 */
func (r *Repository) Insert(ctx context.Context, e endpoint.Endpoint) (endpoint.Endpoint, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if e.IsPrimary {
		if _, err := tx.ExecContext(ctx, "UPDATE endpoints SET is_primary = FALSE WHERE is_primary = TRUE"); err != nil {
			return endpoint.Endpoint{}, fmt.Errorf("clearing primary flags: %w", err)
		}
	}

	query := `
		INSERT INTO endpoints (url, is_primary, headers, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns

	created, err := scanEndpoint(tx.QueryRowContext(ctx, query, e.URL, e.IsPrimary, marshalHeaders(e.Headers), e.IsActive))
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("inserting endpoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("committing transaction: %w", err)
	}

	return created, nil
}

// Update applies only the provided fields and refreshes updated_at
func (r *Repository) Update(ctx context.Context, id int64, changes endpoint.Changes) (endpoint.Endpoint, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if changes.IsPrimary != nil && *changes.IsPrimary {
		if _, err := tx.ExecContext(ctx, "UPDATE endpoints SET is_primary = FALSE WHERE id <> $1 AND is_primary = TRUE", id); err != nil {
			return endpoint.Endpoint{}, fmt.Errorf("clearing primary flags: %w", err)
		}
	}

	query := `
		UPDATE endpoints
		SET url = COALESCE($1, url),
			is_primary = COALESCE($2, is_primary),
			is_active = COALESCE($3, is_active),
			headers = COALESCE($4, headers),
			updated_at = now()
		WHERE id = $5
		RETURNING ` + columns

	var headers sql.NullString
	if changes.Headers != nil {
		headers = sql.NullString{String: marshalHeaders(changes.Headers).String, Valid: true}
	}

	updated, err := scanEndpoint(tx.QueryRowContext(ctx, query,
		nullString(changes.URL),
		nullBool(changes.IsPrimary),
		nullBool(changes.IsActive),
		headers,
		id,
	))
	if err == sql.ErrNoRows {
		return endpoint.Endpoint{}, endpoint.ErrNotFound
	}
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("updating endpoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("committing transaction: %w", err)
	}

	return updated, nil
}

// Delete removes an endpoint by id. No cascade: logs keep their URL copies.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM endpoints WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting endpoint: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return endpoint.ErrNotFound
	}

	return nil
}

// Close closes the database connection
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// CreateTable creates the endpoints table (used at startup and in tests)
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS endpoints (
			id SERIAL PRIMARY KEY,
			url TEXT NOT NULL,
			is_primary BOOLEAN NOT NULL DEFAULT FALSE,
			headers TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	return nil
}

// DropTable removes the endpoints table (used in tests)
func (r *Repository) DropTable(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS endpoints CASCADE"); err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEndpoint(row rowScanner) (endpoint.Endpoint, error) {
	var (
		e       endpoint.Endpoint
		headers sql.NullString
	)
	err := row.Scan(&e.ID, &e.URL, &e.IsPrimary, &headers, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return endpoint.Endpoint{}, err
	}

	if headers.Valid && headers.String != "" {
		// A corrupt headers column should not make the endpoint unreadable
		_ = json.Unmarshal([]byte(headers.String), &e.Headers)
	}

	return e, nil
}

func marshalHeaders(headers map[string]string) sql.NullString {
	if headers == nil {
		return sql.NullString{}
	}
	data, err := json.Marshal(headers)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
