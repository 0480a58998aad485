package webhook

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a webhook id does not exist.
var ErrNotFound = errors.New("webhook not found")

// Reader provides read operations for inbound webhook records
type Reader interface {
	Get(ctx context.Context, id string) (InboundWebhook, error)
	// List returns inbound records, newest first
	List(ctx context.Context, limit, skip int) ([]InboundWebhook, error)
	/* ListByRange returns records with created_at within [start, end]
	 * inclusive, oldest first, so a range replay runs in a reproducible
	 * order
	 */
	ListByRange(ctx context.Context, start, end time.Time) ([]InboundWebhook, error)
}

// Writer provides write operations for inbound webhook records
type Writer interface {
	Store(ctx context.Context, webhook InboundWebhook) error
	/* UpdateResult moves a record from pending to its terminal state and
	 * persists the response used for the decision. Called exactly once per
	 * record, after fan-out completes.
	 */
	UpdateResult(ctx context.Context, id string, status Status, responseStatus int, responseBody string) error
	DeleteAll(ctx context.Context) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
