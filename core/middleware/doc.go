// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing. Comparison
//     runs can fan out into hundreds of upstream requests, and the RayID ties
//     all of their log lines back to the triggering call.
package middleware
