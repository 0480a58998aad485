package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/deliverylog"
	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"github.com/Greenrenge/cf-webhook-fanout/fanout"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

/* ErrNoActiveEndpoints means an inbound call arrived with nothing to fan
 * out to. Silently dropping a webhook is a worse outcome than surfacing the
 * misconfiguration, so the receiver turns this into a server error.
 */
var ErrNoActiveEndpoints = errors.New("no active endpoints configured")

// DefaultLimit caps unpaginated inbound record listings.
const DefaultLimit = 50

// IncomingRequest is one inbound webhook call as seen by the receiver
type IncomingRequest struct {
	Method    string
	Headers   map[string]string
	Body      string
	SourceIP  string
	UserAgent string
}

/* Reply is what the original caller receives.
 * Mirrored is true when status, body and headers come verbatim from the
 * primary endpoint's response.
 */
type Reply struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Mirrored   bool
}

// UseCase defines the business operations around inbound webhooks
type UseCase interface {
	Receive(ctx context.Context, req IncomingRequest) (Reply, error)
	List(ctx context.Context, limit, skip int) ([]InboundWebhook, error)
	Clear(ctx context.Context) error
	ReplayByID(ctx context.Context, id string, targetEndpointID *int64) (ReplayOutcome, error)
	ReplayByRange(ctx context.Context, start, end time.Time, targetEndpointID *int64) ([]ReplayOutcome, error)
}

type Service struct {
	Repo      Repository
	Endpoints endpoint.UseCase
	Fanout    fanout.Dispatcher
	Logs      deliverylog.Writer

	logger zerolog.Logger
}

// NewService creates a new webhook service with dependency injection
func NewService(repo Repository, endpoints endpoint.UseCase, dispatcher fanout.Dispatcher, logs deliverylog.Writer, logger zerolog.Logger) *Service {
	return &Service{
		Repo:      repo,
		Endpoints: endpoints,
		Fanout:    dispatcher,
		Logs:      logs,
		logger:    logger,
	}
}

/* Receive accepts an inbound webhook, fans it out to the active endpoints
 * and forms the response for the original caller.
 *
 * The inbound record is persisted before any fan-out is attempted, so it
 * exists even if fan-out subsequently fails entirely.
 */
func (s *Service) Receive(ctx context.Context, req IncomingRequest) (Reply, error) {
	record := InboundWebhook{
		ID:        uuid.New().String(),
		Method:    req.Method,
		Headers:   req.Headers,
		Body:      req.Body,
		SourceIP:  req.SourceIP,
		UserAgent: req.UserAgent,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Store(ctx, record); err != nil {
		return Reply{}, fmt.Errorf("storing inbound webhook: %w", err)
	}

	return s.process(ctx, record)
}

/* process runs the fan-out for an already-persisted inbound record and
 * applies the terminal status update. Shared by Receive and the replay
 * operations, so a replay walks the exact same path as live traffic.
 */
func (s *Service) process(ctx context.Context, record InboundWebhook) (Reply, error) {
	s.logIncoming(ctx, record)

	targets, err := s.Endpoints.Active(ctx)
	if err != nil {
		s.fail(ctx, record.ID)
		return Reply{}, fmt.Errorf("reading active endpoints: %w", err)
	}
	if len(targets) == 0 {
		s.fail(ctx, record.ID)
		return Reply{}, ErrNoActiveEndpoints
	}

	return s.dispatch(ctx, record, targets)
}

// processTargets runs the fan-out against an explicit target set, used by
// targeted replay
func (s *Service) processTargets(ctx context.Context, record InboundWebhook, targets []endpoint.Endpoint) (Reply, error) {
	s.logIncoming(ctx, record)
	return s.dispatch(ctx, record, targets)
}

// logIncoming writes the incoming audit entry; it exists regardless of
// fan-out outcome
func (s *Service) logIncoming(ctx context.Context, record InboundWebhook) {
	if err := s.Logs.Append(ctx, deliverylog.Entry{
		WebhookID: record.ID,
		Direction: deliverylog.Incoming,
		Method:    record.Method,
		Headers:   record.Headers,
		Body:      record.Body,
	}); err != nil {
		s.logger.Error().Err(err).Str("webhook_id", record.ID).Msg("failed to record incoming webhook")
	}
}

func (s *Service) dispatch(ctx context.Context, record InboundWebhook, targets []endpoint.Endpoint) (Reply, error) {
	results := s.Fanout.Dispatch(ctx, fanout.Request{
		WebhookID: record.ID,
		Method:    record.Method,
		Headers:   record.Headers,
		Body:      record.Body,
	}, targets)

	status, chosen, mirrored := decide(results)

	if err := s.Repo.UpdateResult(ctx, record.ID, status, chosen.StatusCode, chosen.ResponseBody); err != nil {
		s.logger.Error().Err(err).Str("webhook_id", record.ID).Msg("failed to update inbound webhook result")
	}

	if mirrored {
		return Reply{
			StatusCode: chosen.StatusCode,
			Body:       chosen.ResponseBody,
			Headers:    chosen.ResponseHeaders,
			Mirrored:   true,
		}, nil
	}

	/* The original caller cannot act on downstream failures, so anything
	 * short of a mirrored primary response is acknowledged with a plain
	 * 200.
	 */
	return Reply{
		StatusCode: 200,
		Body:       `{"message":"Webhook processed successfully"}`,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}, nil
}

/* decide picks the terminal status and the result whose response is
 * persisted on the inbound record.
 *
 * Completed when any endpoint succeeded. The primary's response is
 * mirrored to the original caller only when the primary itself succeeded;
 * otherwise the first successful result is used for record keeping only.
 * When everything failed, the primary's failure (or the first failure) is
 * what gets recorded.
 */
func decide(results []fanout.Result) (Status, fanout.Result, bool) {
	var primary *fanout.Result
	for i := range results {
		if results[i].IsPrimary {
			primary = &results[i]
			break
		}
	}

	if primary != nil && primary.Success {
		return Completed, *primary, true
	}

	for _, r := range results {
		if r.Success {
			return Completed, r, false
		}
	}

	if primary != nil {
		return Failed, *primary, false
	}
	if len(results) > 0 {
		return Failed, results[0], false
	}
	return Failed, fanout.Result{}, false
}

// fail marks a record failed when fan-out could not start at all
func (s *Service) fail(ctx context.Context, id string) {
	if err := s.Repo.UpdateResult(ctx, id, Failed, 0, ""); err != nil {
		s.logger.Error().Err(err).Str("webhook_id", id).Msg("failed to mark inbound webhook failed")
	}
}

// List returns stored inbound records, newest first
func (s *Service) List(ctx context.Context, limit, skip int) ([]InboundWebhook, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	webhooks, err := s.Repo.List(ctx, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("listing inbound webhooks: %w", err)
	}
	return webhooks, nil
}

// Clear removes every stored inbound record
func (s *Service) Clear(ctx context.Context) error {
	if err := s.Repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing inbound webhooks: %w", err)
	}
	return nil
}
