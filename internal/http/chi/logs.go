package chi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/deliverylog"
	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
)

type logResponse struct {
	ID           int64     `json:"id"`
	WebhookID    string    `json:"webhookId"`
	Direction    string    `json:"direction"`
	EndpointURL  string    `json:"endpointUrl,omitempty"`
	Method       string    `json:"method"`
	StatusCode   int       `json:"statusCode"`
	ResponseBody string    `json:"responseBody,omitempty"`
	ResponseTime int64     `json:"responseTimeMs"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toLogResponse(e deliverylog.Entry) logResponse {
	return logResponse{
		ID:           e.ID,
		WebhookID:    e.WebhookID,
		Direction:    e.Direction.String(),
		EndpointURL:  e.EndpointURL,
		Method:       e.Method,
		StatusCode:   e.StatusCode,
		ResponseBody: e.ResponseBody,
		ResponseTime: e.ResponseTime,
		CreatedAt:    e.CreatedAt,
	}
}

func getLogs(service deliverylog.UseCase, endpoints endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := deliverylog.Filter{
			WebhookID:   r.URL.Query().Get("webhookId"),
			EndpointURL: r.URL.Query().Get("endpoint"),
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			filter.Limit = n
		}
		if v := r.URL.Query().Get("skip"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "invalid skip")
				return
			}
			filter.Skip = n
		}

		// The dashboard filters by endpoint id, which gets translated
		// to the endpoint URL the log entries record.
		if v := r.URL.Query().Get("endpointId"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid endpointId")
				return
			}
			target, err := endpoints.Get(r.Context(), id)
			if err != nil {
				if errors.Is(err, endpoint.ErrNotFound) {
					writeError(w, http.StatusNotFound, "endpoint not found")
					return
				}
				writeError(w, http.StatusInternalServerError, "failed to resolve endpoint")
				return
			}
			filter.EndpointURL = target.URL
		}

		entries, err := service.List(r.Context(), filter)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list logs")
			return
		}
		out := make([]logResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, toLogResponse(e))
		}
		writeJSON(w, http.StatusOK, map[string]any{"logs": out})
	})
}

func clearLogs(service deliverylog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.Clear(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to clear logs")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "All logs cleared"})
	})
}
