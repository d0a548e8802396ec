package metrics

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cactus/go-statsd-client/v5/statsd"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally/v4"
	tallyprom "github.com/uber-go/tally/v4/prometheus"
	tallystatsd "github.com/uber-go/tally/v4/statsd"
)

// Config holds the metrics backend configuration.
type Config struct {
	Prometheus PrometheusConfig `yaml:"prometheus"`
	Statsd     StatsdConfig     `yaml:"statsd"`
}

// PrometheusConfig enables the /metrics exposition endpoint.
type PrometheusConfig struct {
	Enable bool `yaml:"enable"`
}

// StatsdConfig enables pushing metrics to a statsd endpoint.
type StatsdConfig struct {
	Enable   bool   `yaml:"enable"`
	Endpoint string `yaml:"endpoint"`
}

// InitMetricScope initializes a root scope and its closer. The returned
// handler serves prometheus metrics and is nil unless prometheus is enabled.
// Prometheus takes precedence over statsd when both are enabled.
func InitMetricScope(
	cfg Config,
	rootMetricScope string,
	metricFlushInterval time.Duration) (tally.Scope, io.Closer, http.Handler, error) {
	opts := tally.ScopeOptions{
		Prefix:    rootMetricScope,
		Tags:      map[string]string{},
		Separator: tally.DefaultSeparator,
	}
	var promHandler http.Handler

	switch {
	case cfg.Prometheus.Enable:
		// prometheus names cannot contain "-" or "."
		opts.Prefix = strings.ReplaceAll(rootMetricScope, "-", "_")
		opts.Separator = tallyprom.DefaultSeparator
		opts.SanitizeOptions = &tallyprom.DefaultSanitizerOpts

		registry := prom.NewRegistry()
		promReporter := tallyprom.NewReporter(tallyprom.Options{Registerer: registry})
		opts.CachedReporter = promReporter
		promHandler = promReporter.HTTPHandler()
		log.Info("Setting up prometheus metrics handler at /metrics")
	case cfg.Statsd.Enable:
		log.WithField("endpoint", cfg.Statsd.Endpoint).Info("Metrics configured with statsd endpoint")
		c, err := statsd.NewClientWithConfig(&statsd.ClientConfig{Address: cfg.Statsd.Endpoint})
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "setup statsd client")
		}
		opts.Reporter = tallystatsd.NewReporter(c, tallystatsd.Options{SampleRate: 1.0})
	default:
		log.Warn("No metrics backends configured, metrics are discarded")
		opts.Reporter = tally.NullStatsReporter
	}

	scope, closer := tally.NewRootScope(opts, metricFlushInterval)
	return scope, closer, promHandler, nil
}
