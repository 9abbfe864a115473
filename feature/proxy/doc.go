// Package proxy exposes single page fetches against the upstream servers.
//
// An instance without network access to the servers sets upstream.proxy_url
// and forwards every page request to the /proxy endpoint of an instance that
// has it. The proxied payload is returned already decoded, as plain JSON.
package proxy
