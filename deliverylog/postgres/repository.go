package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/deliverylog"
	_ "github.com/lib/pq" // PostgreSQL driver
)

type Repository struct {
	DB *sql.DB
}

// NewRepository creates a PostgreSQL delivery log repository with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Repository{
		DB: db,
	}, nil
}

// Append stores one delivery attempt record
func (r *Repository) Append(ctx context.Context, entry deliverylog.Entry) error {
	query := `
		INSERT INTO webhook_logs (webhook_id, direction, endpoint_url, method, headers, body, status_code, response_body, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	headers, err := json.Marshal(entry.Headers)
	if err != nil {
		return fmt.Errorf("marshaling headers: %w", err)
	}

	var endpointURL sql.NullString
	if entry.EndpointURL != "" {
		endpointURL = sql.NullString{String: entry.EndpointURL, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		entry.WebhookID,
		entry.Direction.String(),
		endpointURL,
		entry.Method,
		string(headers),
		entry.Body,
		entry.StatusCode,
		entry.ResponseBody,
		entry.ResponseTime,
	)
	if err != nil {
		return fmt.Errorf("inserting log entry: %w", err)
	}

	return nil
}

// List returns entries matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter deliverylog.Filter) ([]deliverylog.Entry, error) {
	query := "SELECT id, webhook_id, direction, endpoint_url, method, headers, body, status_code, response_body, response_time_ms, created_at FROM webhook_logs"

	var (
		args  []any
		where string
	)
	if filter.WebhookID != "" {
		args = append(args, filter.WebhookID)
		where = fmt.Sprintf(" WHERE webhook_id = $%d", len(args))
	}
	if filter.EndpointURL != "" {
		args = append(args, filter.EndpointURL)
		if where == "" {
			where = fmt.Sprintf(" WHERE endpoint_url = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND endpoint_url = $%d", len(args))
		}
	}

	args = append(args, filter.Limit, filter.Skip)
	query += where + fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting log entries: %w", err)
	}
	defer rows.Close()

	var entries []deliverylog.Entry
	for rows.Next() {
		var (
			e           deliverylog.Entry
			direction   string
			endpointURL sql.NullString
			headers     sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.WebhookID, &direction, &endpointURL, &e.Method, &headers, &e.Body, &e.StatusCode, &e.ResponseBody, &e.ResponseTime, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		e.Direction = deliverylog.NewDirection(direction)
		e.EndpointURL = endpointURL.String
		if headers.Valid && headers.String != "" {
			_ = json.Unmarshal([]byte(headers.String), &e.Headers)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log entries: %w", err)
	}

	return entries, nil
}

// DeleteAll removes every log entry (bulk clear)
func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM webhook_logs"); err != nil {
		return fmt.Errorf("clearing log entries: %w", err)
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

// CreateTable creates the webhook_logs table and its indices
func (r *Repository) CreateTable(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS webhook_logs (
			id SERIAL PRIMARY KEY,
			webhook_id TEXT NOT NULL,
			direction TEXT NOT NULL,
			endpoint_url TEXT,
			method TEXT NOT NULL,
			headers TEXT,
			body TEXT,
			status_code INTEGER NOT NULL DEFAULT 0,
			response_body TEXT,
			response_time_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_webhook_logs_webhook_id ON webhook_logs(webhook_id)",
		"CREATE INDEX IF NOT EXISTS idx_webhook_logs_created_at ON webhook_logs(created_at)",
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}

	return nil
}

// DropTable removes the webhook_logs table (used in tests)
func (r *Repository) DropTable(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS webhook_logs CASCADE"); err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}
	return nil
}
