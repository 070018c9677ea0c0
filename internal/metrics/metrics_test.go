package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMetrics_Observe(t *testing.T) {
	reg := NewRegistry()
	m := NewStoreMetrics(reg)

	m.Observe("create_list", ResultOK)
	m.Observe("create_list", ResultOK)
	m.Observe("create_list", "duplicate_name")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("create_list", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("create_list", "duplicate_name")))
}

func TestStoreMetrics_NilSafe(t *testing.T) {
	var m *StoreMetrics
	assert.NotPanics(t, func() {
		m.Observe("add_todo", ResultOK)
		m.SetSessions(3)
	})
}

func TestHandler_ServesRegisteredMetrics(t *testing.T) {
	reg := NewRegistry()
	m := NewStoreMetrics(reg)
	m.SetSessions(4)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "todo_sessions_active 4")
}
