package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"count-diff/core/reconcile"
	"count-diff/core/server"
	"count-diff/core/upstream"
	"count-diff/core/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func page(total int, slugs ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<html><body><ul><li>Upcoming Events</li><li>Past Events</li></ul><p>Total Results (%d)</p>", total)
	for _, s := range slugs {
		fmt.Fprintf(&b, `<div><h4><a href="/en/about-dentons/news-events-and-awards/events/%s">Event %s</a></h4><p>June 3, 2025</p></div>`, s, s)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func newSite(t *testing.T, upcoming, past string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TypeUpcoming.Path():
			w.Write([]byte(upcoming))
		case TypePast.Path():
			w.Write([]byte(past))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func setupTestApp(t *testing.T, timeout time.Duration, hosts ...string) *fiber.App {
	t.Helper()
	cfg := upstream.DefaultConfig()
	cfg.Scheme = "http"
	client := upstream.NewClient(upstream.NewDirectTransport(cfg), timeout)

	app := fiber.New()
	validate := validation.New(server.Config{AllowedDomains: hosts})
	require.NoError(t, NewFeature(client, cfg, validate, zap.NewNop()).Load(app))
	return app
}

func TestHandleFeed(t *testing.T) {
	host := newSite(t, page(2, "a", "b"), page(1, "old"))
	app := setupTestApp(t, 2*time.Second, host)

	resp, err := app.Test(httptest.NewRequest("GET", "/events?domain="+host+"&type=past", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var feed Feed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	assert.Equal(t, 1, feed.TotalResult)
	require.Len(t, feed.Events, 1)
	assert.Equal(t, "Event old", feed.Events[0].Title)
	assert.Equal(t, "https://"+host+"/en/about-dentons/news-events-and-awards/events/old", feed.Events[0].Link)
	assert.Equal(t, "June 3, 2025", feed.Events[0].Date)
}

func TestHandleFeed_DefaultType(t *testing.T) {
	host := newSite(t, page(2, "a", "b"), page(0))
	app := setupTestApp(t, 2*time.Second, host)

	resp, err := app.Test(httptest.NewRequest("GET", "/events?domain="+host, nil), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var feed Feed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	assert.Equal(t, 2, feed.TotalResult)
	assert.Len(t, feed.Events, 2)
}

func TestHandleFeed_Validation(t *testing.T) {
	app := setupTestApp(t, time.Second, "www.dentons.com")

	tests := []struct {
		name  string
		query string
	}{
		{"DomainNotAllowed", "domain=example.com"},
		{"UnknownType", "type=someday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/events?"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestHandleFeed_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	host := strings.TrimPrefix(srv.URL, "http://")
	app := setupTestApp(t, 2*time.Second, host)

	resp, err := app.Test(httptest.NewRequest("GET", "/events?domain="+host, nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to fetch events", body["error"])
	assert.Contains(t, body["message"], "HTTP 502")
}

func TestHandleFeed_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	host := strings.TrimPrefix(srv.URL, "http://")
	app := setupTestApp(t, 50*time.Millisecond, host)

	resp, err := app.Test(httptest.NewRequest("GET", "/events?domain="+host, nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, 504, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Timeout after 50ms", body["message"])
}

func TestHandleCompare(t *testing.T) {
	left := newSite(t, page(3, "a", "b", "c"), page(0))
	right := newSite(t, page(2, "a", "c"), page(0))
	app := setupTestApp(t, 2*time.Second, left, right)

	resp, err := app.Test(httptest.NewRequest("GET", "/events/compare?domain1="+left+"&domain2="+right, nil), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var cmp Comparison
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cmp))
	assert.Equal(t, TypeUpcoming, cmp.Type)
	assert.Equal(t, 1, cmp.Difference)
	assert.Equal(t, reconcile.StatusExplained, cmp.Status)
	require.Len(t, cmp.OnlyIn1, 1)
	assert.Equal(t, "Event b", cmp.OnlyIn1[0].Title)
	assert.Empty(t, cmp.OnlyIn2)
	assert.Equal(t, reconcile.SideNone, cmp.DuplicateHint)
}

func TestHandleCompare_Duplicate(t *testing.T) {
	left := newSite(t, page(3, "a", "a", "b"), page(0))
	right := newSite(t, page(2, "a", "b"), page(0))
	app := setupTestApp(t, 2*time.Second, left, right)

	resp, err := app.Test(httptest.NewRequest("GET", "/events/compare?domain1="+left+"&domain2="+right+"&type=upcoming", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var cmp Comparison
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cmp))
	assert.Equal(t, reconcile.StatusDuplicate, cmp.Status)
	assert.Equal(t, reconcile.SideLeft, cmp.DuplicateHint)
}
