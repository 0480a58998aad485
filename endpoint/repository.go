package endpoint

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an endpoint id does not exist.
var ErrNotFound = errors.New("endpoint not found")

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 * Written for users of the API, not just for testing
 */

// Reader provides read operations for endpoints
type Reader interface {
	Get(ctx context.Context, id int64) (Endpoint, error)
	/* List returns every endpoint, primary first, then insertion order
	 * so the dashboard always shows the forwarded endpoint at the top
	 */
	List(ctx context.Context) ([]Endpoint, error)
	// Active returns the subset the fan-out engine targets for live traffic
	Active(ctx context.Context) ([]Endpoint, error)
}

// Writer provides write operations for endpoints
type Writer interface {
	/* Insert stores a new endpoint and returns it with its assigned id
	 * and timestamps. When the endpoint is primary, every other primary
	 * flag is cleared in the same transaction.
	 */
	Insert(ctx context.Context, e Endpoint) (Endpoint, error)
	/* Update applies only the fields set in changes and refreshes
	 * updated_at. Clearing of sibling primary flags happens in the same
	 * transaction when IsPrimary is set true.
	 */
	Update(ctx context.Context, id int64, changes Changes) (Endpoint, error)
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
