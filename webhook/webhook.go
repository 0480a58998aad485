package webhook

import "time"

/* InboundWebhook represents one received webhook call in the system
 * Uses value semantics as it represents data, not behavior
 *
 * A replay creates a brand-new record; the original is never mutated.
 */
type InboundWebhook struct {
	ID        string
	Method    string
	Headers   map[string]string
	Body      string
	SourceIP  string
	UserAgent string
	Status    Status
	// ResponseStatus and ResponseBody hold the result used for the status
	// decision, written exactly once when fan-out completes
	ResponseStatus int
	ResponseBody   string
	CreatedAt      time.Time
}
