// Package compare exposes the server comparison over HTTP.
//
// # Endpoints
//
//   - GET /compare?domain1=&domain2=&service=[&mode=&batchSize=&maxPages=&data=]
//
// Both domains must be in the server allow-list. A failure to read either
// server's total answers 502; everything past the totals degrades into the
// result body instead of failing the request.
package compare
