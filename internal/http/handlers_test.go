package http

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mauv0809/matchup-stats/internal/database"
	"github.com/mauv0809/matchup-stats/internal/metrics"
	"github.com/mauv0809/matchup-stats/internal/processor"
	"github.com/mauv0809/matchup-stats/internal/pubsub"
	"github.com/mauv0809/matchup-stats/internal/stats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("connection refused") }

// setupTestServer wires a server to an in-memory database and a mocked store.
func setupTestServer(t *testing.T) (*Server, *stats.MockStore) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	store := stats.NewMock()
	proc := processor.New(store, metricsSvc, pubsub.NewMock())

	return NewServer(db, proc, metrics.NewMetricsHandler(reg), 0), store
}

func pushBody(t *testing.T, payload []byte) string {
	t.Helper()
	return `{"subscription":"projects/p/subscriptions/picks","message":{"messageId":"1","data":"` +
		base64.StdEncoding.EncodeToString(payload) + `"}}`
}

func TestHealthCheckHandler(t *testing.T) {
	t.Run("ok when the database answers", func(t *testing.T) {
		server, _ := setupTestServer(t)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK!", rr.Body.String())
	})

	t.Run("unavailable when the database does not", func(t *testing.T) {
		server := NewServer(failingPinger{}, nil, http.NotFoundHandler(), 0)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)
	rr := httptest.NewRecorder()

	server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "matchup_picks_recorded_total")
}

func TestPickPushHandler(t *testing.T) {
	event, err := msgpack.Marshal(pubsub.PickEvent{
		TeamA: "Yankees", TeamB: "RedSox", PlayerName: "Aaron Judge", PlayerID: "000123",
	})
	require.NoError(t, err)

	t.Run("records the pick", func(t *testing.T) {
		server, store := setupTestServer(t)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pubsub/picks", strings.NewReader(pushBody(t, event))))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		require.Len(t, store.RecordPickCalls, 1)
		assert.Equal(t, "Aaron Judge", store.RecordPickCalls[0].PlayerName)
	})

	t.Run("rejects other methods", func(t *testing.T) {
		server, _ := setupTestServer(t)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pubsub/picks", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("bad envelope", func(t *testing.T) {
		server, store := setupTestServer(t)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pubsub/picks", strings.NewReader("{not json")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, store.RecordPickCalls)
	})

	t.Run("bad base64", func(t *testing.T) {
		server, _ := setupTestServer(t)
		rr := httptest.NewRecorder()

		body := `{"message":{"data":"%%%"}}`
		server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pubsub/picks", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("acknowledges invalid events", func(t *testing.T) {
		server, store := setupTestServer(t)
		incomplete, err := msgpack.Marshal(pubsub.PickEvent{TeamA: "Yankees"})
		require.NoError(t, err)
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pubsub/picks", strings.NewReader(pushBody(t, incomplete))))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, store.RecordPickCalls)
	})

	t.Run("rate limited", func(t *testing.T) {
		db, teardown, err := database.InitDB(":memory:", "", "")
		require.NoError(t, err)
		t.Cleanup(teardown)
		store := stats.NewMock()
		server := NewServer(db, processor.New(store, metrics.NewMock(), pubsub.NewMock()), http.NotFoundHandler(), 1)

		first := httptest.NewRecorder()
		server.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/pubsub/picks", strings.NewReader(pushBody(t, event))))
		second := httptest.NewRecorder()
		server.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/pubsub/picks", strings.NewReader(pushBody(t, event))))

		assert.Equal(t, http.StatusNoContent, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, "1", second.Header().Get("Retry-After"))
		assert.Len(t, store.RecordPickCalls, 1)
	})

	t.Run("store failure asks for redelivery", func(t *testing.T) {
		server, store := setupTestServer(t)
		store.RecordPickFunc = func(context.Context, stats.TeamPair, string, string) error {
			return errors.New("database is locked")
		}
		rr := httptest.NewRecorder()

		server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pubsub/picks", strings.NewReader(pushBody(t, event))))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
