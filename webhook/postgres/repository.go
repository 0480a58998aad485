package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/webhook"
	_ "github.com/lib/pq" // PostgreSQL driver
)

type Repository struct {
	DB *sql.DB
}

// NewRepository creates a PostgreSQL inbound webhook repository with the default pool (25, 5, 5 min)
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

const columns = "id, method, headers, body, source_ip, user_agent, processing_status, response_status, response_body, created_at"

// Store persists a new inbound webhook record
func (r *Repository) Store(ctx context.Context, wh webhook.InboundWebhook) error {
	query := `
		INSERT INTO incoming_webhooks (id, method, headers, body, source_ip, user_agent, processing_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	headers, err := json.Marshal(wh.Headers)
	if err != nil {
		return fmt.Errorf("marshaling headers: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		wh.ID,
		wh.Method,
		string(headers),
		wh.Body,
		wh.SourceIP,
		wh.UserAgent,
		wh.Status.String(),
		wh.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting inbound webhook: %w", err)
	}

	return nil
}

// Get fetches a single inbound webhook record by id
func (r *Repository) Get(ctx context.Context, id string) (webhook.InboundWebhook, error) {
	query := "SELECT " + columns + " FROM incoming_webhooks WHERE id = $1"

	wh, err := scanWebhook(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return webhook.InboundWebhook{}, webhook.ErrNotFound
	}
	if err != nil {
		return webhook.InboundWebhook{}, fmt.Errorf("selecting inbound webhook: %w", err)
	}

	return wh, nil
}

// List returns inbound records, newest first
func (r *Repository) List(ctx context.Context, limit, skip int) ([]webhook.InboundWebhook, error) {
	query := "SELECT " + columns + " FROM incoming_webhooks ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2"
	return r.selectWebhooks(ctx, query, limit, skip)
}

// ListByRange returns records with created_at in [start, end] inclusive, oldest first
func (r *Repository) ListByRange(ctx context.Context, start, end time.Time) ([]webhook.InboundWebhook, error) {
	query := "SELECT " + columns + " FROM incoming_webhooks WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at ASC, id ASC"
	return r.selectWebhooks(ctx, query, start, end)
}

func (r *Repository) selectWebhooks(ctx context.Context, query string, args ...any) ([]webhook.InboundWebhook, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting inbound webhooks: %w", err)
	}
	defer rows.Close()

	var webhooks []webhook.InboundWebhook
	for rows.Next() {
		wh, err := scanWebhook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inbound webhook: %w", err)
		}
		webhooks = append(webhooks, wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inbound webhooks: %w", err)
	}

	return webhooks, nil
}

// UpdateResult moves a record to its terminal state, exactly once after fan-out
func (r *Repository) UpdateResult(ctx context.Context, id string, status webhook.Status, responseStatus int, responseBody string) error {
	query := `
		UPDATE incoming_webhooks
		SET processing_status = $1, response_status = $2, response_body = $3
		WHERE id = $4
	`

	result, err := r.DB.ExecContext(ctx, query, status.String(), responseStatus, responseBody, id)
	if err != nil {
		return fmt.Errorf("updating inbound webhook: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return webhook.ErrNotFound
	}

	return nil
}

// DeleteAll removes every inbound record (bulk clear)
func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM incoming_webhooks"); err != nil {
		return fmt.Errorf("clearing inbound webhooks: %w", err)
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

// CreateTable creates the incoming_webhooks table and its index
func (r *Repository) CreateTable(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS incoming_webhooks (
			id TEXT PRIMARY KEY,
			method TEXT NOT NULL,
			headers TEXT,
			body TEXT,
			source_ip TEXT,
			user_agent TEXT,
			processing_status TEXT NOT NULL DEFAULT 'pending',
			response_status INTEGER,
			response_body TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_incoming_webhooks_created_at ON incoming_webhooks(created_at)",
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}

	return nil
}

// DropTable removes the incoming_webhooks table (used in tests)
func (r *Repository) DropTable(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, "DROP TABLE IF EXISTS incoming_webhooks CASCADE"); err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWebhook(row rowScanner) (webhook.InboundWebhook, error) {
	var (
		wh             webhook.InboundWebhook
		headers        sql.NullString
		status         string
		responseStatus sql.NullInt64
		responseBody   sql.NullString
	)
	err := row.Scan(&wh.ID, &wh.Method, &headers, &wh.Body, &wh.SourceIP, &wh.UserAgent, &status, &responseStatus, &responseBody, &wh.CreatedAt)
	if err != nil {
		return webhook.InboundWebhook{}, err
	}

	wh.Status = webhook.NewStatus(status)
	wh.ResponseStatus = int(responseStatus.Int64)
	wh.ResponseBody = responseBody.String
	if headers.Valid && headers.String != "" {
		_ = json.Unmarshal([]byte(headers.String), &wh.Headers)
	}

	return wh, nil
}
