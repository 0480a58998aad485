package endpoint

import "time"

/* Endpoint represents one configured fan-out destination
 * Uses value semantics as it represents data, not behavior
 */
type Endpoint struct {
	ID        int64
	URL       string
	IsPrimary bool
	Headers   map[string]string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

/* Changes carries a partial update for an endpoint
 * Nil fields keep their current value
 */
type Changes struct {
	URL       *string
	IsPrimary *bool
	IsActive  *bool
	Headers   map[string]string
}
