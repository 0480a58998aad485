package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"github.com/go-chi/chi/v5"
)

type endpointResponse struct {
	ID        int64             `json:"id"`
	URL       string            `json:"url"`
	IsPrimary bool              `json:"isPrimary"`
	Headers   map[string]string `json:"headers"`
	IsActive  bool              `json:"isActive"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func toEndpointResponse(e endpoint.Endpoint) endpointResponse {
	headers := e.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	return endpointResponse{
		ID:        e.ID,
		URL:       e.URL,
		IsPrimary: e.IsPrimary,
		Headers:   headers,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type createEndpointRequest struct {
	URL       string            `json:"url"`
	IsPrimary bool              `json:"isPrimary"`
	Headers   map[string]string `json:"headers"`
}

type updateEndpointRequest struct {
	URL       *string           `json:"url"`
	IsPrimary *bool             `json:"isPrimary"`
	IsActive  *bool             `json:"isActive"`
	Headers   map[string]string `json:"headers"`
}

func getEndpoints(service endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list, err := service.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list endpoints")
			return
		}
		out := make([]endpointResponse, 0, len(list))
		for _, e := range list {
			out = append(out, toEndpointResponse(e))
		}
		writeJSON(w, http.StatusOK, map[string]any{"endpoints": out})
	})
}

func postEndpoint(service endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body createEndpointRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		created, err := service.Create(r.Context(), body.URL, body.Headers, body.IsPrimary)
		if err != nil {
			if errors.Is(err, endpoint.ErrURLRequired) {
				writeError(w, http.StatusBadRequest, "url is required")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to create endpoint")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"endpoint": toEndpointResponse(created)})
	})
}

func patchEndpoint(service endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid endpoint id")
			return
		}
		var body updateEndpointRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		updated, err := service.Update(r.Context(), id, endpoint.Changes{
			URL:       body.URL,
			IsPrimary: body.IsPrimary,
			IsActive:  body.IsActive,
			Headers:   body.Headers,
		})
		if err != nil {
			switch {
			case errors.Is(err, endpoint.ErrNotFound):
				writeError(w, http.StatusNotFound, "endpoint not found")
			case errors.Is(err, endpoint.ErrURLRequired):
				writeError(w, http.StatusBadRequest, "url cannot be empty")
			default:
				writeError(w, http.StatusInternalServerError, "failed to update endpoint")
			}
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"endpoint": toEndpointResponse(updated)})
	})
}

func deleteEndpoint(service endpoint.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid endpoint id")
			return
		}
		if err := service.Delete(r.Context(), id); err != nil {
			if errors.Is(err, endpoint.ErrNotFound) {
				writeError(w, http.StatusNotFound, "endpoint not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to delete endpoint")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Endpoint deleted"})
	})
}
