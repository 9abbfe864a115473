package upstream

import "time"

// Config holds settings for talking to the upstream listing services.
type Config struct {
	// Scheme is used to build direct upstream URLs (https in production).
	Scheme string `mapstructure:"scheme" default:"https"`
	// Timeout bounds a single page fetch during comparisons.
	Timeout time.Duration `mapstructure:"timeout" default:"30s"`
	// CountsTimeout bounds totals-only requests and event page fetches.
	CountsTimeout time.Duration `mapstructure:"counts_timeout" default:"15s"`
	// ProxyURL, when set, routes every page request through a remote instance's /proxy endpoint.
	ProxyURL string `mapstructure:"proxy_url" default:""`
	// ProxyTimeout bounds a single page fetch issued through the proxy.
	ProxyTimeout time.Duration `mapstructure:"proxy_timeout" default:"120s"`
	// Language is sent as contextLanguage.
	Language string `mapstructure:"language" default:"en"`
	// Site is sent as contextSite.
	Site string `mapstructure:"site" default:"dentons"`
	// UserAgent identifies the client to upstream servers.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
	// Referer is sent with every listing request.
	Referer string `mapstructure:"referer" default:"https://www.dentons.com/en/find-a-lawyer"`
	// Origin is sent with every listing request.
	Origin string `mapstructure:"origin" default:"https://www.dentons.com"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Scheme:        "https",
		Timeout:       30 * time.Second,
		CountsTimeout: 15 * time.Second,
		ProxyTimeout:  120 * time.Second,
		Language:      "en",
		Site:          "dentons",
		UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Referer:       "https://www.dentons.com/en/find-a-lawyer",
		Origin:        "https://www.dentons.com",
	}
}

// PageTimeout returns the per-fetch timeout for the configured transport.
func (c Config) PageTimeout() time.Duration {
	if c.ProxyURL != "" {
		return c.ProxyTimeout
	}
	return c.Timeout
}
