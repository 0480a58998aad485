package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/config"
	"github.com/Greenrenge/cf-webhook-fanout/deliverylog"
	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"github.com/Greenrenge/cf-webhook-fanout/webhook"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
)

// Handlers sets up the full HTTP surface: the inbound receiver, the
// management API behind bearer auth, and the operational endpoints
func Handlers(ctx context.Context, cfg *config.Config, endpoints endpoint.UseCase, webhooks webhook.UseCase, logs deliverylog.UseCase, metricsHandler http.Handler) *chi.Mux {
	logger := httplog.NewLogger("webhook-fanout", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Service info
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "Webhook Fanout Service",
			"version":   "1.0.0",
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	// Inbound receiver accepts any HTTP method on the configured path
	webhookPath := cfg.WebhookPath
	if webhookPath == "" {
		webhookPath = "/webhook"
	}
	r.Handle(webhookPath, receiveWebhook(webhooks))

	// Management API
	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(cfg.AuthSecret))

		r.Method(http.MethodGet, "/config/endpoints", getEndpoints(endpoints))
		r.Method(http.MethodPost, "/config/endpoints", postEndpoint(endpoints))
		r.Method(http.MethodPatch, "/config/endpoints/{id}", patchEndpoint(endpoints))
		r.Method(http.MethodDelete, "/config/endpoints/{id}", deleteEndpoint(endpoints))

		r.Method(http.MethodGet, "/logs", getLogs(logs, endpoints))
		r.Method(http.MethodDelete, "/logs", clearLogs(logs))

		r.Method(http.MethodGet, "/webhooks", getWebhooks(webhooks))
		r.Method(http.MethodDelete, "/webhooks", clearWebhooks(webhooks))

		r.Method(http.MethodPost, "/replay", replayByRange(webhooks))
		r.Method(http.MethodPost, "/replay/{webhook_id}", replayByID(webhooks))
	})

	return r
}

func paginationParams(r *http.Request, defaultLimit int) (limit, skip int, err error) {
	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			return 0, 0, errInvalidLimit
		}
	}
	if v := r.URL.Query().Get("skip"); v != "" {
		skip, err = strconv.Atoi(v)
		if err != nil || skip < 0 {
			return 0, 0, errInvalidSkip
		}
	}
	return limit, skip, nil
}

var (
	errInvalidLimit = errors.New("invalid limit")
	errInvalidSkip  = errors.New("invalid skip")
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
