package server

import (
	"slices"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// AllowedDomains lists the upstream hosts that may be compared, counted or proxied.
	AllowedDomains []string `mapstructure:"allowed_domains" default:"www.dentons.com,s10-www.dentons.com,www.preview.dentons.com,s10-nacd1.dentons.com,s10-eucd1.dentons.com,s10-nacd2.dentons.com,s10-pg.dentons.com,uat-www.dentons.com,uat-www.preview.dentons.com,uat-nacd1.dentons.com,uat-eucd1.dentons.com"`
}

// DefaultDomain is used by endpoints that accept an optional domain.
const DefaultDomain = "www.dentons.com"

// IsAllowedDomain reports whether host is one of the configured upstream hosts.
// Matching is exact after trimming surrounding whitespace.
func (c Config) IsAllowedDomain(host string) bool {
	host = strings.TrimSpace(host)
	if host == "" {
		return false
	}
	return slices.ContainsFunc(c.AllowedDomains, func(d string) bool {
		return strings.TrimSpace(d) == host
	})
}
