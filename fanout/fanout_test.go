package fanout_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Greenrenge/cf-webhook-fanout/deliverylog"
	"github.com/Greenrenge/cf-webhook-fanout/deliverylog/mocks"
	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"github.com/Greenrenge/cf-webhook-fanout/fanout"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*fanout.Engine, *mocks.Writer) {
	logs := mocks.NewWriter(t)
	return fanout.NewEngine(5*time.Second, logs, zerolog.Nop()), logs
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers body and merged headers", func(t *testing.T) {
		var gotBody string
		var gotHeader http.Header
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			gotHeader = r.Header.Clone()
			w.Header().Set("X-Request-Id", "abc-123")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"received":true}`))
		}))
		defer server.Close()

		engine, logs := newEngine(t)
		logs.On("Append", ctx, mock.MatchedBy(func(e deliverylog.Entry) bool {
			return e.Direction == deliverylog.Outgoing &&
				e.EndpointURL == server.URL &&
				e.StatusCode == http.StatusCreated
		})).Return(nil)

		results := engine.Dispatch(ctx, fanout.Request{
			WebhookID: "wh-1",
			Method:    "POST",
			Headers:   map[string]string{"Content-Type": "application/json", "Host": "inbox.example.com"},
			Body:      `{"event":"order.created"}`,
		}, []endpoint.Endpoint{
			{ID: 1, URL: server.URL, IsPrimary: true, Headers: map[string]string{"X-Api-Key": "secret"}},
		})

		require.Len(t, results, 1)
		r := results[0]
		assert.True(t, r.Success)
		assert.True(t, r.IsPrimary)
		assert.Equal(t, http.StatusCreated, r.StatusCode)
		assert.Equal(t, `{"received":true}`, r.ResponseBody)
		assert.Equal(t, "abc-123", r.ResponseHeaders["X-Request-Id"])
		assert.GreaterOrEqual(t, r.ResponseTime, int64(0))

		assert.Equal(t, `{"event":"order.created"}`, gotBody)
		assert.Equal(t, "secret", gotHeader.Get("X-Api-Key"))
		assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	})

	t.Run("results keep target order", func(t *testing.T) {
		fast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer fast.Close()
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer slow.Close()

		engine, logs := newEngine(t)
		logs.On("Append", ctx, mock.Anything).Return(nil)

		results := engine.Dispatch(ctx, fanout.Request{WebhookID: "wh-1", Method: "POST", Body: "x"}, []endpoint.Endpoint{
			{ID: 1, URL: slow.URL},
			{ID: 2, URL: fast.URL},
		})

		require.Len(t, results, 2)
		assert.Equal(t, int64(1), results[0].EndpointID)
		assert.Equal(t, http.StatusAccepted, results[0].StatusCode)
		assert.Equal(t, int64(2), results[1].EndpointID)
		assert.Equal(t, http.StatusOK, results[1].StatusCode)
	})

	t.Run("one unreachable endpoint does not affect the others", func(t *testing.T) {
		healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer healthy.Close()

		engine, logs := newEngine(t)
		logs.On("Append", ctx, mock.Anything).Return(nil)

		results := engine.Dispatch(ctx, fanout.Request{WebhookID: "wh-1", Method: "POST", Body: "x"}, []endpoint.Endpoint{
			{ID: 1, URL: "http://127.0.0.1:1"},
			{ID: 2, URL: healthy.URL},
		})

		require.Len(t, results, 2)
		assert.False(t, results[0].Success)
		assert.Equal(t, 0, results[0].StatusCode)
		assert.True(t, strings.HasPrefix(results[0].ResponseBody, "Error: "))
		assert.Zero(t, results[0].ResponseTime)
		assert.True(t, results[1].Success)
	})

	t.Run("non-2xx is a failed delivery with response recorded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("try later"))
		}))
		defer server.Close()

		engine, logs := newEngine(t)
		logs.On("Append", ctx, mock.MatchedBy(func(e deliverylog.Entry) bool {
			return e.StatusCode == http.StatusServiceUnavailable && e.ResponseBody == "try later"
		})).Return(nil)

		results := engine.Dispatch(ctx, fanout.Request{WebhookID: "wh-1", Method: "POST", Body: "x"}, []endpoint.Endpoint{
			{ID: 1, URL: server.URL},
		})

		require.Len(t, results, 1)
		assert.False(t, results[0].Success)
		assert.Equal(t, http.StatusServiceUnavailable, results[0].StatusCode)
		assert.Equal(t, "try later", results[0].ResponseBody)
	})

	t.Run("GET forwards without a body", func(t *testing.T) {
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		engine, logs := newEngine(t)
		logs.On("Append", ctx, mock.Anything).Return(nil)

		results := engine.Dispatch(ctx, fanout.Request{WebhookID: "wh-1", Method: "GET", Body: "should not be sent"}, []endpoint.Endpoint{
			{ID: 1, URL: server.URL},
		})

		require.Len(t, results, 1)
		assert.True(t, results[0].Success)
		assert.Empty(t, gotBody)
	})

	t.Run("failed log append never suppresses the result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		engine, logs := newEngine(t)
		logs.On("Append", ctx, mock.Anything).Return(assert.AnError)

		results := engine.Dispatch(ctx, fanout.Request{WebhookID: "wh-1", Method: "POST", Body: "x"}, []endpoint.Endpoint{
			{ID: 1, URL: server.URL},
		})

		require.Len(t, results, 1)
		assert.True(t, results[0].Success)
	})

	t.Run("no targets", func(t *testing.T) {
		engine, _ := newEngine(t)

		results := engine.Dispatch(ctx, fanout.Request{WebhookID: "wh-1", Method: "POST"}, nil)

		assert.Empty(t, results)
	})
}
