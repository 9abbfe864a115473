// Package counts reports the totals of all listing services on one server.
//
// # Endpoints
//
//   - GET /counts?domain=
//
// The response always carries insights, people and news keys. Each holds a
// count or an error ("Timeout" when the upstream did not answer in time).
package counts
