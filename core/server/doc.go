// Package server holds the HTTP server configuration.
//
// # Configuration
//
// The Config struct defines the HTTP port and the allow-list of upstream hosts.
// Every endpoint that reaches out to an upstream server checks the requested
// host with IsAllowedDomain before issuing a request, so the service can never
// be pointed at arbitrary URLs.
package server
