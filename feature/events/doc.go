// Package events reads and compares the public event listings.
//
// Event pages are HTML, not JSON. Each event is an h4 heading linking to a
// path under /events/, followed by free text holding its date. The page
// reports its own total as "Total Results (N)".
//
// # Endpoints
//
//   - GET /events?domain=&type=upcoming|past
//   - GET /events/compare?domain1=&domain2=&type=
//
// Comparison runs the same set difference as the listing services, over the
// single listing page each server returns.
package events
