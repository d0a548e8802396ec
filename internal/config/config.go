package config

import (
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"vmsched/internal/metrics"
	"vmsched/internal/sim"
)

// Config mirrors config.yml
type Config struct {
	Listen        string         `yaml:"listen"`         // ":8080" (by default)
	LogLevel      string         `yaml:"log_level"`      // "info" (by default)
	LogFormat     string         `yaml:"log_format"`     // "text" or "json"
	MetricsPrefix string         `yaml:"metrics_prefix"` // "vmsched" (by default)
	Metrics       metrics.Config `yaml:"metrics"`        // prometheus (by default) or statsd
	Limits        sim.Limits     `yaml:"limits"`         // per-request size caps
	Defaults      sim.Request    `yaml:"defaults"`       // request template for `vmsched run`
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		Listen:        ":8080",
		LogLevel:      "info",
		LogFormat:     "text",
		MetricsPrefix: "vmsched",
		Metrics: metrics.Config{
			Prometheus: metrics.PrometheusConfig{Enable: true},
		},
		Limits:   sim.DefaultLimits(),
		Defaults: DefaultRequest(),
	}
}

// DefaultRequest is the request template used when nothing overrides it.
func DefaultRequest() sim.Request {
	return sim.Request{
		NumberOfVms:         2,
		VMMips:              1000,
		VMRam:               512,
		VMBw:                1000,
		VMSize:              10000,
		NumberOfCloudlets:   4,
		CloudletLength:      10000,
		CloudletPes:         1,
		CloudletFileSize:    300,
		CloudletOutputSize:  300,
		SchedulingAlgorithm: "MIN_MIN",
	}
}

// Load reads YAML and overrides defaults; empty path or missing file = defaults only.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), errors.Wrapf(err, "decode config %s", path)
	}

	// sanity clamps
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat != "json" {
		cfg.LogFormat = "text"
	}
	if cfg.MetricsPrefix == "" {
		cfg.MetricsPrefix = "vmsched"
	}
	if cfg.Limits.MaxVMs <= 0 {
		cfg.Limits.MaxVMs = sim.DefaultLimits().MaxVMs
	}
	if cfg.Limits.MaxCloudlets <= 0 {
		cfg.Limits.MaxCloudlets = sim.DefaultLimits().MaxCloudlets
	}
	if cfg.Defaults.NumberOfVms <= 0 && len(cfg.Defaults.VMs) == 0 {
		cfg.Defaults.NumberOfVms = 2
	}
	if cfg.Defaults.VMMips <= 0 {
		cfg.Defaults.VMMips = 1000
	}
	if cfg.Defaults.CloudletLength <= 0 {
		cfg.Defaults.CloudletLength = 10000
	}

	return cfg, nil
}
