package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the fan-out system.
type Metrics struct {
	// StatusCounts maps processing status name to count of inbound webhooks
	StatusCounts map[string]int64 `json:"status_counts"`

	// DeliveryCounts maps delivery outcome ("success"/"failure") to count of
	// outgoing delivery attempts
	DeliveryCounts map[string]int64 `json:"delivery_counts"`

	// Throughput represents outgoing deliveries per time window
	Throughput ThroughputMetrics `json:"throughput"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// ThroughputMetrics represents outgoing deliveries over different time windows.
type ThroughputMetrics struct {
	// LastMinute is deliveries attempted in the last 1 minute
	LastMinute int64 `json:"last_minute"`

	// LastFiveMinutes is deliveries attempted in the last 5 minutes
	LastFiveMinutes int64 `json:"last_five_minutes"`

	// LastFifteenMinutes is deliveries attempted in the last 15 minutes
	LastFifteenMinutes int64 `json:"last_fifteen_minutes"`
}

// Collector defines the interface for collecting metrics from the fan-out system.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetStatusCounts returns the count of inbound webhooks by processing status
	GetStatusCounts(ctx context.Context) (map[string]int64, error)

	// GetDeliveryCounts returns the count of outgoing deliveries by outcome
	GetDeliveryCounts(ctx context.Context) (map[string]int64, error)

	// GetThroughput returns outgoing deliveries over time windows
	GetThroughput(ctx context.Context) (ThroughputMetrics, error)
}
