package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numbox/random-number-service/internal/metrics"
)

func TestHandler_ExposesCollectors(t *testing.T) {
	m := metrics.New()
	m.NumbersGenerated.Inc()
	m.RequestDuration.WithLabelValues("/random/", "200").Observe(0.001)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "random_numbers_generated_total 1")
	assert.Contains(t, string(body), "http_request_duration_seconds")

	assert.InDelta(t, 1, testutil.ToFloat64(m.NumbersGenerated), 0)
}

func TestNew_RegistriesAreIndependent(t *testing.T) {
	// Two instances must not collide on collector registration.
	first := metrics.New()
	second := metrics.New()

	first.NumbersGenerated.Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(first.NumbersGenerated), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(second.NumbersGenerated), 0)
}
