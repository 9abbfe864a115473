// Package upstreamtest runs fake listing servers for tests.
package upstreamtest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"count-diff/core/upstream"

	"github.com/klauspost/compress/gzip"
)

// Listing describes the records a fake server holds.
type Listing struct {
	Kind  upstream.Kind
	Links []string
	// Total overrides the reported total; 0 reports len(Links).
	Total int
	// Fail makes every request answer 503.
	Fail bool
	// Compressed sends bodies as base64 gzip.
	Compressed bool
	// Delay holds every response back.
	Delay time.Duration
}

// Server is a running fake listing server.
type Server struct {
	*httptest.Server
	Requests atomic.Int32
	lastData atomic.Value
}

// LastData returns the data query of the most recent request.
func (s *Server) LastData() string {
	v, _ := s.lastData.Load().(string)
	return v
}

// Host returns host:port, usable as a Source domain.
func (s *Server) Host() string {
	return strings.TrimPrefix(s.URL, "http://")
}

// Source returns a source pointing at this server.
func (s *Server) Source(kind upstream.Kind) upstream.Source {
	return upstream.Source{Domain: s.Host(), Kind: kind}
}

// NewServer starts a fake server closed at the end of the test.
func NewServer(t testing.TB, l Listing) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Requests.Add(1)
		s.lastData.Store(r.URL.Query().Get("data"))
		if l.Delay > 0 {
			select {
			case <-time.After(l.Delay):
			case <-r.Context().Done():
				return
			}
		}
		if l.Fail || r.URL.Path != l.Kind.Path() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
		size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
		body, err := json.Marshal([]any{Payload(l, r.Host, page, size)})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if l.Compressed {
			body = []byte(compress(body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	t.Cleanup(s.Close)
	return s
}

// Payload builds the decoded response for one page.
func Payload(l Listing, host string, page, size int) map[string]any {
	total := l.Total
	if total == 0 {
		total = len(l.Links)
	}

	records := []any{}
	if page > 0 && size > 0 {
		start := (page - 1) * size
		end := min(start+size, len(l.Links))
		for i := start; i < end; i++ {
			records = append(records, map[string]any{
				"link":      "https://" + host + l.Links[i],
				"heading":   "Heading " + l.Links[i],
				"date":      "1 January 2024",
				"firstName": "First",
				"lastName":  strconv.Itoa(i),
			})
		}
	}
	return map[string]any{"totalResult": total, l.Kind.Field(): records}
}

// Links returns n record paths prefix1 .. prefixN.
func Links(prefix string, n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = prefix + strconv.Itoa(i+1)
	}
	return out
}

// Config returns an upstream config that talks plain HTTP to fake servers.
func Config() upstream.Config {
	cfg := upstream.DefaultConfig()
	cfg.Scheme = "http"
	return cfg
}

func compress(b []byte) string {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write(b)
	zw.Close()
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
