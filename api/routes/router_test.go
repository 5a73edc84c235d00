package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavazidev/mavazi-backend/internal/transactions"
	"github.com/mavazidev/mavazi-backend/pkg/config"
	"github.com/mavazidev/mavazi-backend/pkg/db/models"
	"github.com/mavazidev/mavazi-backend/pkg/enums"
	"github.com/mavazidev/mavazi-backend/pkg/logger"
	"github.com/mavazidev/mavazi-backend/pkg/pagination"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type stubLedger struct {
	recorded []models.TransactionRecord
}

func (s *stubLedger) Record(_ context.Context, name string, amountCents int64, txType enums.TransactionType) (*models.TransactionRecord, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	record := models.TransactionRecord{
		ID:              uuid.New(),
		TransactionCode: "TXN-" + uuid.NewString(),
		AmountCents:     amountCents,
		Name:            name,
		Type:            txType,
	}
	s.recorded = append(s.recorded, record)
	return &record, nil
}

func (s *stubLedger) List(context.Context) ([]models.TransactionRecord, error) {
	return s.recorded, nil
}

func (s *stubLedger) ListPage(context.Context, pagination.Params) (*transactions.Page, error) {
	return &transactions.Page{Records: s.recorded}, nil
}

func newTestRouter(t *testing.T, dbErr, redisErr error) http.Handler {
	router, _ := newTestRouterWithLedger(t, dbErr, redisErr)
	return router
}

func newTestRouterWithLedger(t *testing.T, dbErr, redisErr error) (http.Handler, *stubLedger) {
	t.Helper()
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	graph := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{}}`))
	})
	ledger := &stubLedger{}
	return NewRouter(cfg, logg, stubPinger{err: dbErr}, stubPinger{err: redisErr}, ledger, graph), ledger
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Header().Get("X-Mavazi-Env"))
	assert.Contains(t, rec.Body.String(), "live")
}

func TestHealthReady(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")
}

func TestHealthReadyFailsWhenDatabaseDown(t *testing.T) {
	router := newTestRouter(t, errors.New("connection refused"), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEPENDENCY_ERROR")
}

func TestHealthReadyFailsWhenRedisDown(t *testing.T) {
	router := newTestRouter(t, nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGraphQLRouteIsMounted(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{}}`, rec.Body.String())
}

func TestRecordTransactionEndpoint(t *testing.T) {
	router, ledger := newTestRouterWithLedger(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/transactions",
		strings.NewReader(`{"name":"manual top-up","amount":5000,"type":"deposit"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "TXN-")
	assert.Contains(t, rec.Body.String(), "manual top-up")
	require.Len(t, ledger.recorded, 1)
	assert.Equal(t, int64(5000), ledger.recorded[0].AmountCents)
	assert.Equal(t, enums.TransactionTypeDeposit, ledger.recorded[0].Type)
}

func TestRecordTransactionRejectsBadBody(t *testing.T) {
	router, ledger := newTestRouterWithLedger(t, nil, nil)

	cases := []string{
		`{"name":"x","amount":-5,"type":"deposit"}`,
		`{"name":"x","amount":100,"type":"transfer"}`,
		`{"amount":100,"type":"deposit"}`,
		`{"name":`,
	}
	for _, body := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/transactions",
			strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR", "body %s", body)
	}
	assert.Empty(t, ledger.recorded)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
