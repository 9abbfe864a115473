// Package upstream talks to the paginated listing services being compared.
//
// # Page Fetcher
//
// Client.Fetch issues exactly one request for one page of one Source and
// returns the decoded Page (reported total plus records). Response bodies are
// either plain JSON or base64-encoded gzip, recognised by the "H4sI" prefix,
// and may be wrapped in a single-element array. Every fetch carries its own
// timeout; timeouts and non-2xx statuses surface as *FetchError. There is no
// retry at this layer.
//
// # Transports
//
// A Transport builds the outgoing request. DirectTransport targets the
// upstream host with the fixed locale and identity headers; ProxyTransport
// forwards the same page request to the /proxy endpoint of another instance.
// The transport is selected once by NewTransport when the application starts.
//
// # Kinds
//
// Kind is the record-kind selector. Each kind owns its endpoint path, the
// payload field holding records, and the display formatter:
//
//	insights  tabData   heading, date, link
//	people    persons   name, jobTitle, office, link
//	news      NewsData  heading, date, link
package upstream
