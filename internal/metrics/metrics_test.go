package metrics

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/restauflow/internal/pricing"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.LineResolved()
	m.LineResolved()
	m.SelectionRejected(fmt.Errorf("wrapped: %w", pricing.ErrMissingVariant))
	m.SelectionRejected(pricing.ErrMissingVariant)
	m.SelectionRejected(fmt.Errorf("boom"))
	m.Checkout("submitted")
	m.ObserveRPC("/restauflow.v1.OrderService/AddItem", "ok", 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.linesResolved))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.selectionErrors.WithLabelValues("missing_variant")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.selectionErrors.WithLabelValues("other")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkouts.WithLabelValues("submitted")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rpcDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.LineResolved()
	m.SelectionRejected(pricing.ErrInvalidQuantity)
	m.Checkout("failed")
	m.ObserveRPC("x", "ok", time.Second)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Checkout("rejected")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `restauflow_checkouts_total{outcome="rejected"} 1`))
}
