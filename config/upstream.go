package config

import (
	"time"

	"github.com/spf13/viper"
)

// Upstream REST API config struct
type Upstream struct {
	BaseURL       string
	Timeout       time.Duration
	LogoutTimeout time.Duration
	RefreshDedup  bool
	Breaker       *Breaker
}

// Breaker circuit breaker config struct
type Breaker struct {
	Enabled     bool
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	Failures    uint32
}

// getUpstreamConfig returns the upstream config.
func getUpstreamConfig(v *viper.Viper) *Upstream {
	return &Upstream{
		BaseURL:       getStringOrDefault(v, "upstream.base_url", "http://localhost:8080"),
		Timeout:       getDurationOrDefault(v, "upstream.timeout", 10*time.Second),
		LogoutTimeout: getDurationOrDefault(v, "upstream.logout_timeout", 5*time.Second),
		RefreshDedup:  getBoolOrDefault(v, "upstream.refresh_dedup", false),
		Breaker:       getBreakerConfig(v),
	}
}

// getBreakerConfig returns the breaker config.
func getBreakerConfig(v *viper.Viper) *Breaker {
	return &Breaker{
		Enabled:     getBoolOrDefault(v, "upstream.breaker.enabled", true),
		MaxRequests: getUint32OrDefault(v, "upstream.breaker.max_requests", 100),
		Interval:    getDurationOrDefault(v, "upstream.breaker.interval", 5*time.Second),
		Timeout:     getDurationOrDefault(v, "upstream.breaker.timeout", 3*time.Second),
		Failures:    getUint32OrDefault(v, "upstream.breaker.failures", 5),
	}
}
