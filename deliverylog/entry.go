package deliverylog

import "time"

/* Entry is one audit record of a single delivery attempt
 * incoming = received from the original sender
 * outgoing = one dispatch attempt to one destination endpoint
 */
type Entry struct {
	ID          int64
	WebhookID   string
	Direction   Direction
	EndpointURL string
	Method      string
	Headers     map[string]string
	Body        string
	// StatusCode 0 signals a transport failure, not an HTTP response
	StatusCode   int
	ResponseBody string
	// ResponseTime is elapsed wall clock in milliseconds, 0 on transport failure
	ResponseTime int64
	CreatedAt    time.Time
}
