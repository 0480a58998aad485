package webhook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"github.com/google/uuid"
)

// ReplayMarker is appended to the user agent of a replayed record so
// replays are distinguishable from live traffic in the stored data.
const ReplayMarker = "[REPLAY]"

/* ReplayOutcome summarizes one webhook's replay.
 * Resolution failures (unknown webhook, unknown or inactive target
 * endpoint) surface as errors from the Replay* methods; failures during
 * the replay itself are captured here with Status "error".
 */
type ReplayOutcome struct {
	OriginalID     string
	NewID          string
	Method         string
	OriginalDate   time.Time
	Status         string
	Error          string
	ResponseStatus int
}

/* ReplayByID re-runs the fan-out for a stored inbound webhook against the
 * current endpoint configuration. A fresh record is created for the replay;
 * the original is never mutated. When targetEndpointID is set, delivery is
 * restricted to that single endpoint, which must exist and be active.
 */
func (s *Service) ReplayByID(ctx context.Context, id string, targetEndpointID *int64) (ReplayOutcome, error) {
	original, err := s.Repo.Get(ctx, id)
	if err != nil {
		return ReplayOutcome{}, fmt.Errorf("loading webhook %s: %w", id, err)
	}

	target, err := s.resolveTarget(ctx, targetEndpointID)
	if err != nil {
		return ReplayOutcome{}, err
	}

	return s.replayOne(ctx, original, target), nil
}

/* ReplayByRange replays every stored webhook with createdAt in
 * [start, end] inclusive, oldest first. Each webhook's replay is isolated:
 * one item's failure is recorded in its outcome and does not stop the
 * batch.
 */
func (s *Service) ReplayByRange(ctx context.Context, start, end time.Time, targetEndpointID *int64) ([]ReplayOutcome, error) {
	target, err := s.resolveTarget(ctx, targetEndpointID)
	if err != nil {
		return nil, err
	}

	originals, err := s.Repo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("selecting webhooks in range: %w", err)
	}

	outcomes := make([]ReplayOutcome, 0, len(originals))
	for _, original := range originals {
		outcomes = append(outcomes, s.replayOne(ctx, original, target))
	}

	return outcomes, nil
}

// resolveTarget validates an optional single-endpoint restriction
func (s *Service) resolveTarget(ctx context.Context, targetEndpointID *int64) (*endpoint.Endpoint, error) {
	if targetEndpointID == nil {
		return nil, nil
	}

	e, err := s.Endpoints.Get(ctx, *targetEndpointID)
	if err != nil {
		return nil, fmt.Errorf("resolving target endpoint %d: %w", *targetEndpointID, err)
	}
	if !e.IsActive {
		return nil, fmt.Errorf("target endpoint %d: %w", *targetEndpointID, endpoint.ErrInactive)
	}

	return &e, nil
}

// replayOne synthesizes a new inbound record from a stored one and re-runs
// the same fan-out path used for live traffic
func (s *Service) replayOne(ctx context.Context, original InboundWebhook, target *endpoint.Endpoint) ReplayOutcome {
	outcome := ReplayOutcome{
		OriginalID:   original.ID,
		Method:       original.Method,
		OriginalDate: original.CreatedAt,
	}

	record := InboundWebhook{
		ID:        uuid.New().String(),
		Method:    original.Method,
		Headers:   original.Headers,
		Body:      original.Body,
		SourceIP:  original.SourceIP,
		UserAgent: strings.TrimSpace(original.UserAgent + " " + ReplayMarker),
		Status:    Pending,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Store(ctx, record); err != nil {
		outcome.Status = "error"
		outcome.Error = err.Error()
		return outcome
	}
	outcome.NewID = record.ID

	var (
		reply Reply
		err   error
	)
	if target != nil {
		reply, err = s.processTargets(ctx, record, []endpoint.Endpoint{*target})
	} else {
		reply, err = s.process(ctx, record)
	}
	if err != nil {
		outcome.Status = "error"
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Status = "success"
	outcome.ResponseStatus = reply.StatusCode
	return outcome
}
