package fanout

import "net/http"

/* Hop-by-hop headers are meaningful only for the original connection and
 * must not be forwarded to destination endpoints. Host is stripped with
 * them so a stale Host value never reaches a destination.
 */
var hopByHop = []string{
	"Host",
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailers",
	"Transfer-Encoding",
	"Upgrade",
}

/* MergeHeaders builds the outbound header set for one endpoint.
 * Keys are canonicalized so the override and the strip list are
 * case-insensitive. Endpoint custom headers win on collision.
 */
func MergeHeaders(incoming, custom map[string]string) map[string]string {
	merged := make(map[string]string, len(incoming)+len(custom))
	for key, value := range incoming {
		merged[http.CanonicalHeaderKey(key)] = value
	}
	for key, value := range custom {
		merged[http.CanonicalHeaderKey(key)] = value
	}
	for _, key := range hopByHop {
		delete(merged, key)
	}
	return merged
}
