package fanout

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/deliverylog"
	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single dispatch so one hanging endpoint cannot
// block the aggregate result indefinitely.
const DefaultTimeout = 30 * time.Second

// Request is the inbound event being fanned out, reconstructed verbatim.
// The body is opaque text; the engine never interprets it.
type Request struct {
	WebhookID string
	Method    string
	Headers   map[string]string
	Body      string
}

// Result is the outcome of one dispatch attempt to one endpoint
type Result struct {
	EndpointID      int64
	IsPrimary       bool
	Success         bool
	StatusCode      int
	ResponseBody    string
	ResponseHeaders map[string]string
	ResponseTime    int64
}

// Dispatcher fans one request out to a set of target endpoints
type Dispatcher interface {
	/* Dispatch delivers the request to every target independently and
	 * returns exactly one Result per target. It returns only after every
	 * dispatch has completed or failed: callers need the complete set to
	 * pick the primary's outcome.
	 */
	Dispatch(ctx context.Context, req Request, targets []endpoint.Endpoint) []Result
}

type Engine struct {
	client *http.Client
	logs   deliverylog.Writer
	logger zerolog.Logger
}

// NewEngine creates a fan-out engine with a bounded per-dispatch timeout
func NewEngine(timeout time.Duration, logs deliverylog.Writer, logger zerolog.Logger) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{
		client: &http.Client{Timeout: timeout},
		logs:   logs,
		logger: logger,
	}
}

/* Dispatch runs one goroutine per target. There is no ordering dependency
 * between endpoints, and no cross-endpoint cancellation: one endpoint's
 * failure never cancels in-flight requests to its siblings.
 */
func (e *Engine) Dispatch(ctx context.Context, req Request, targets []endpoint.Endpoint) []Result {
	results := make([]Result, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target endpoint.Endpoint) {
			defer wg.Done()
			results[i] = e.deliver(ctx, req, target)
		}(i, target)
	}
	wg.Wait()

	return results
}

// deliver attempts one endpoint and records the outcome in the delivery log
func (e *Engine) deliver(ctx context.Context, req Request, target endpoint.Endpoint) Result {
	merged := MergeHeaders(req.Headers, target.Headers)

	entry := deliverylog.Entry{
		WebhookID:   req.WebhookID,
		Direction:   deliverylog.Outgoing,
		EndpointURL: target.URL,
		Method:      req.Method,
		Headers:     merged,
		Body:        req.Body,
	}
	result := Result{
		EndpointID: target.ID,
		IsPrimary:  target.IsPrimary,
	}

	resp, elapsed, err := e.send(ctx, req, target.URL, merged)
	if err != nil {
		// Transport failure: no HTTP response, so status 0 and no duration
		entry.StatusCode = 0
		entry.ResponseBody = fmt.Sprintf("Error: %v", err)
		entry.ResponseTime = 0
		result.StatusCode = 0
		result.ResponseBody = entry.ResponseBody
		e.logger.Warn().Err(err).Str("endpoint_url", target.URL).Str("webhook_id", req.WebhookID).Msg("webhook dispatch failed")
	} else {
		entry.StatusCode = resp.statusCode
		entry.ResponseBody = resp.body
		entry.ResponseTime = elapsed
		result.Success = resp.statusCode >= 200 && resp.statusCode < 300
		result.StatusCode = resp.statusCode
		result.ResponseBody = resp.body
		result.ResponseHeaders = resp.headers
		result.ResponseTime = elapsed
	}

	/* The log write is best effort: losing an audit record is preferable
	 * to losing delivery to a reachable endpoint, so a failed append never
	 * aborts the loop or suppresses the result.
	 */
	if err := e.logs.Append(ctx, entry); err != nil {
		e.logger.Error().Err(err).Str("endpoint_url", target.URL).Str("webhook_id", req.WebhookID).Msg("failed to record delivery attempt")
	}

	return result
}

type response struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (e *Engine) send(ctx context.Context, req Request, url string, headers map[string]string) (*response, int64, error) {
	var body io.Reader
	// GET and HEAD requests carry no body
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, 0, err
	}
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	start := time.Now()
	httpResp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, 0, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, 0, err
	}
	elapsed := time.Since(start).Milliseconds()

	respHeaders := make(map[string]string, len(httpResp.Header))
	for key, values := range httpResp.Header {
		if len(values) > 0 {
			respHeaders[key] = values[0]
		}
	}

	return &response{
		statusCode: httpResp.StatusCode,
		body:       string(respBody),
		headers:    respHeaders,
	}, elapsed, nil
}
