package chi

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/webhook"
)

type webhookResponse struct {
	ID             string    `json:"id"`
	Method         string    `json:"method"`
	Body           string    `json:"body"`
	SourceIP       string    `json:"sourceIp"`
	UserAgent      string    `json:"userAgent"`
	Status         string    `json:"processingStatus"`
	ResponseStatus int       `json:"responseStatus,omitempty"`
	ResponseBody   string    `json:"responseBody,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toWebhookResponse(in webhook.InboundWebhook) webhookResponse {
	return webhookResponse{
		ID:             in.ID,
		Method:         in.Method,
		Body:           in.Body,
		SourceIP:       in.SourceIP,
		UserAgent:      in.UserAgent,
		Status:         in.Status.String(),
		ResponseStatus: in.ResponseStatus,
		ResponseBody:   in.ResponseBody,
		CreatedAt:      in.CreatedAt,
	}
}

// receiveWebhook captures the raw inbound request and hands it to the
// service. The reply mirrors the primary endpoint response when one
// was received, otherwise a generic acknowledgement goes out.
func receiveWebhook(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		headers := make(map[string]string, len(r.Header))
		for name, values := range r.Header {
			if len(values) > 0 {
				headers[name] = values[0]
			}
		}

		reply, err := service.Receive(r.Context(), webhook.IncomingRequest{
			Method:    r.Method,
			Headers:   headers,
			Body:      string(body),
			SourceIP:  clientIP(r),
			UserAgent: r.UserAgent(),
		})
		if err != nil {
			if errors.Is(err, webhook.ErrNoActiveEndpoints) {
				writeError(w, http.StatusInternalServerError, "no active endpoints configured")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to process webhook")
			return
		}

		for name, value := range reply.Headers {
			switch name {
			case "Content-Length", "Transfer-Encoding", "Connection":
				continue
			}
			w.Header().Set(name, value)
		}
		w.WriteHeader(reply.StatusCode)
		w.Write([]byte(reply.Body))
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.IndexByte(forwarded, ','); idx >= 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func getWebhooks(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, skip, err := paginationParams(r, webhook.DefaultLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		list, err := service.List(r.Context(), limit, skip)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list webhooks")
			return
		}
		out := make([]webhookResponse, 0, len(list))
		for _, in := range list {
			out = append(out, toWebhookResponse(in))
		}
		writeJSON(w, http.StatusOK, map[string]any{"webhooks": out})
	})
}

func clearWebhooks(service webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.Clear(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to clear webhooks")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "All webhooks cleared"})
	})
}
