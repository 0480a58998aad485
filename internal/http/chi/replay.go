package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"github.com/Greenrenge/cf-webhook-fanout/webhook"
	"github.com/go-chi/chi/v5"
)

type replayRequest struct {
	EndpointID *int64 `json:"endpointId"`
}

type replayRangeRequest struct {
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	EndpointID *int64 `json:"endpointId"`
}

type replayOutcomeResponse struct {
	OriginalID     string    `json:"originalWebhookId"`
	NewID          string    `json:"newWebhookId,omitempty"`
	Method         string    `json:"method"`
	OriginalDate   time.Time `json:"originalDate"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	ResponseStatus int       `json:"responseStatus,omitempty"`
}

func toReplayOutcomeResponse(o webhook.ReplayOutcome) replayOutcomeResponse {
	return replayOutcomeResponse{
		OriginalID:     o.OriginalID,
		NewID:          o.NewID,
		Method:         o.Method,
		OriginalDate:   o.OriginalDate,
		Status:         o.Status,
		Error:          o.Error,
		ResponseStatus: o.ResponseStatus,
	}
}

func replayByID(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhookID := chi.URLParam(r, "webhook_id")

		var body replayRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		outcome, err := service.ReplayByID(r.Context(), webhookID, body.EndpointID)
		if err != nil {
			writeReplayError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Webhook replayed",
			"result":  toReplayOutcomeResponse(outcome),
		})
	})
}

func replayByRange(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body replayRangeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if body.StartDate == "" || body.EndDate == "" {
			writeError(w, http.StatusBadRequest, "startDate and endDate are required")
			return
		}
		start, err := time.Parse(time.RFC3339, body.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid startDate, expected RFC3339")
			return
		}
		end, err := time.Parse(time.RFC3339, body.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid endDate, expected RFC3339")
			return
		}

		outcomes, err := service.ReplayByRange(r.Context(), start, end, body.EndpointID)
		if err != nil {
			writeReplayError(w, err)
			return
		}
		results := make([]replayOutcomeResponse, 0, len(outcomes))
		for _, o := range outcomes {
			results = append(results, toReplayOutcomeResponse(o))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "Replay completed",
			"replayed": len(results),
			"results":  results,
		})
	})
}

func writeReplayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, webhook.ErrNotFound):
		writeError(w, http.StatusNotFound, "webhook not found")
	case errors.Is(err, endpoint.ErrNotFound):
		writeError(w, http.StatusNotFound, "endpoint not found")
	case errors.Is(err, endpoint.ErrInactive):
		writeError(w, http.StatusNotFound, "endpoint is not active")
	default:
		writeError(w, http.StatusInternalServerError, "failed to replay webhook")
	}
}
