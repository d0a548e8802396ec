package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetricScopePrometheus(t *testing.T) {
	scope, closer, handler, err := InitMetricScope(Config{
		Prometheus: PrometheusConfig{Enable: true},
	}, "vm-sched", 10*time.Millisecond)
	require.NoError(t, err)
	defer closer.Close()
	require.NotNil(t, handler)

	scope.SubScope("run").Counter("runs").Inc(3)

	assert.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		return rec.Code == http.StatusOK &&
			strings.Contains(rec.Body.String(), "vm_sched_run_runs 3")
	}, 2*time.Second, 20*time.Millisecond)
}

func TestInitMetricScopeStatsd(t *testing.T) {
	scope, closer, handler, err := InitMetricScope(Config{
		Statsd: StatsdConfig{Enable: true, Endpoint: "127.0.0.1:8125"},
	}, "vmsched", time.Second)
	require.NoError(t, err)
	defer closer.Close()

	assert.Nil(t, handler)
	assert.NotNil(t, scope)
}

func TestInitMetricScopeNoBackend(t *testing.T) {
	scope, closer, handler, err := InitMetricScope(Config{}, "vmsched", time.Second)
	require.NoError(t, err)
	defer closer.Close()

	assert.Nil(t, handler)
	assert.NotPanics(t, func() { scope.Counter("runs").Inc(1) })
}
