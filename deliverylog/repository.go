package deliverylog

import "context"

/* Filter narrows a log listing
 * Zero values mean "no filter"; Limit falls back to a server-side default
 */
type Filter struct {
	WebhookID   string
	EndpointURL string
	Limit       int
	Skip        int
}

// Writer provides the append-only write side of the delivery log
type Writer interface {
	Append(ctx context.Context, entry Entry) error
}

// Reader provides filtered, paginated retrieval, newest first
type Reader interface {
	List(ctx context.Context, filter Filter) ([]Entry, error)
}

type Repository interface {
	Writer
	Reader
	// DeleteAll is the only mutation allowed besides Append
	DeleteAll(ctx context.Context) error
	Close(ctx context.Context) error
}
