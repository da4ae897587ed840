package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/eventplan-api/internal/api"
	"github.com/phrazzld/eventplan-api/internal/mocks"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/phrazzld/eventplan-api/internal/service"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler    http.Handler
	userStore  *mocks.MockUserStore
	eventStore *mocks.MockEventStore
	hasher     *mocks.MockPasswordHasher
	logs       *logger.TestLogBuffer
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func newTestServer(t *testing.T, opts ...func(*api.RouterConfig)) *testServer {
	t.Helper()
	logBuf, log := logger.SetupTestLogger(t)

	ts := &testServer{
		logs:       logBuf,
		userStore:  mocks.NewMockUserStore(),
		eventStore: mocks.NewMockEventStore(),
		hasher:     &mocks.MockPasswordHasher{},
	}

	cfg := api.RouterConfig{
		Users:  service.NewUserService(ts.userStore, ts.hasher, log),
		Events: service.NewEventService(ts.eventStore, log),
		DB:     stubPinger{},
		Logger: log,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ts.handler = api.NewRouter(cfg)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

var errBoom = errors.New("dial tcp 10.1.2.3:5432: connect: connection refused")
