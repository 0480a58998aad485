package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLCollector derives metrics straight from the three persistence tables,
// so the numbers always agree with what the API reports.
type SQLCollector struct {
	DB *sql.DB
}

// NewSQLCollector creates a collector over an existing database handle
func NewSQLCollector(db *sql.DB) *SQLCollector {
	return &SQLCollector{DB: db}
}

// Collect gathers all metrics in one pass
func (c *SQLCollector) Collect(ctx context.Context) (Metrics, error) {
	statusCounts, err := c.GetStatusCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting status counts: %w", err)
	}

	deliveryCounts, err := c.GetDeliveryCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting delivery counts: %w", err)
	}

	throughput, err := c.GetThroughput(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting throughput: %w", err)
	}

	return Metrics{
		StatusCounts:   statusCounts,
		DeliveryCounts: deliveryCounts,
		Throughput:     throughput,
		Timestamp:      time.Now(),
	}, nil
}

// GetStatusCounts returns inbound webhook counts grouped by processing status
func (c *SQLCollector) GetStatusCounts(ctx context.Context) (map[string]int64, error) {
	query := "SELECT processing_status, COUNT(*) FROM incoming_webhooks GROUP BY processing_status"

	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting status counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}

	return counts, nil
}

// GetDeliveryCounts returns outgoing delivery attempt counts by outcome
func (c *SQLCollector) GetDeliveryCounts(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT CASE WHEN status_code BETWEEN 200 AND 299 THEN 'success' ELSE 'failure' END AS outcome, COUNT(*)
		FROM webhook_logs
		WHERE direction = 'outgoing'
		GROUP BY outcome
	`

	rows, err := c.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting delivery counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			outcome string
			count   int64
		)
		if err := rows.Scan(&outcome, &count); err != nil {
			return nil, fmt.Errorf("scanning delivery count: %w", err)
		}
		counts[outcome] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating delivery counts: %w", err)
	}

	return counts, nil
}

// GetThroughput returns outgoing delivery attempts over 1m/5m/15m windows
func (c *SQLCollector) GetThroughput(ctx context.Context) (ThroughputMetrics, error) {
	var (
		throughput ThroughputMetrics
		now        = time.Now()
	)

	windows := []struct {
		since time.Time
		dest  *int64
	}{
		{now.Add(-1 * time.Minute), &throughput.LastMinute},
		{now.Add(-5 * time.Minute), &throughput.LastFiveMinutes},
		{now.Add(-15 * time.Minute), &throughput.LastFifteenMinutes},
	}

	query := "SELECT COUNT(*) FROM webhook_logs WHERE direction = 'outgoing' AND created_at >= $1"
	for _, w := range windows {
		if err := c.DB.QueryRowContext(ctx, query, w.since).Scan(w.dest); err != nil {
			return ThroughputMetrics{}, fmt.Errorf("selecting throughput: %w", err)
		}
	}

	return throughput, nil
}
