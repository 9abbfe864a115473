package compare

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"count-diff/core/reconcile"
	"count-diff/core/server"
	"count-diff/core/upstream"
	"count-diff/core/upstream/upstreamtest"
	"count-diff/core/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func links(from, to int) []string {
	out := []string{}
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("/en/insights/%d", i))
	}
	return out
}

func setupTestApp(t *testing.T, hosts ...string) *fiber.App {
	client := upstream.NewClient(upstream.NewTransport(upstreamtest.Config()), 2*time.Second)
	cfg := reconcile.DefaultConfig()
	cfg.RetryBaseDelay = 0

	engine := reconcile.NewEngine(client, cfg, zap.NewNop())
	validate := validation.New(server.Config{AllowedDomains: hosts})

	app := fiber.New()
	NewFeature(engine, validate, zap.NewNop()).Load(app)
	return app
}

func compareURL(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "/compare?" + q.Encode()
}

func TestHandleCompare_Gap(t *testing.T) {
	a := upstreamtest.NewServer(t, upstreamtest.Listing{Kind: upstream.KindInsights, Links: links(1, 30)})
	b := upstreamtest.NewServer(t, upstreamtest.Listing{Kind: upstream.KindInsights, Links: links(1, 28), Compressed: true})
	app := setupTestApp(t, a.Host(), b.Host())

	req := httptest.NewRequest("GET", compareURL(map[string]string{
		"domain1": a.Host(), "domain2": b.Host(), "service": "insights",
	}), nil)
	resp, err := app.Test(req, 10000)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))

	var body reconcile.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 30, body.Total1)
	assert.Equal(t, 28, body.Total2)
	assert.Equal(t, 2, body.Difference)
	assert.Equal(t, 2, body.OnlyIn1Count)
	require.Len(t, body.OnlyIn1, 2)
	assert.Equal(t, "Heading /en/insights/29", body.OnlyIn1[0].Heading)
	assert.Equal(t, reconcile.StatusExplained, body.Status)
	assert.True(t, body.Complete)
}

func TestHandleCompare_IncrementalMatch(t *testing.T) {
	a := upstreamtest.NewServer(t, upstreamtest.Listing{Kind: upstream.KindNews, Links: links(1, 5)})
	b := upstreamtest.NewServer(t, upstreamtest.Listing{Kind: upstream.KindNews, Links: links(1, 5)})
	app := setupTestApp(t, a.Host(), b.Host())

	resp, err := app.Test(httptest.NewRequest("GET", compareURL(map[string]string{
		"domain1": a.Host(), "domain2": b.Host(), "service": "news", "mode": "incremental", "maxPages": "5",
	}), nil), 10000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "match", body["status"])
	assert.Nil(t, body["duplicateHint"])
	assert.EqualValues(t, 0, body["pagesScanned"])
	assert.EqualValues(t, 1, a.Requests.Load())
}

func TestHandleCompare_Validation(t *testing.T) {
	a := upstreamtest.NewServer(t, upstreamtest.Listing{Kind: upstream.KindNews})
	app := setupTestApp(t, a.Host())

	tests := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{"UnknownDomain", map[string]string{"domain1": a.Host(), "domain2": "evil.com", "service": "news"}, "domain not allowed"},
		{"UnknownService", map[string]string{"domain1": a.Host(), "domain2": a.Host(), "service": "blogs"}, "unknown service"},
		{"BadMode", map[string]string{"domain1": a.Host(), "domain2": a.Host(), "service": "news", "mode": "fast"}, "Mode"},
		{"Missing", map[string]string{}, "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", compareURL(tt.params), nil))
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "Invalid request", body["error"])
			assert.Contains(t, body["message"], tt.want)
		})
	}
	assert.EqualValues(t, 0, a.Requests.Load())
}

func TestHandleCompare_TotalsUnavailable(t *testing.T) {
	a := upstreamtest.NewServer(t, upstreamtest.Listing{Kind: upstream.KindPeople, Links: links(1, 3)})
	b := upstreamtest.NewServer(t, upstreamtest.Listing{Kind: upstream.KindPeople, Fail: true})
	app := setupTestApp(t, a.Host(), b.Host())

	resp, err := app.Test(httptest.NewRequest("GET", compareURL(map[string]string{
		"domain1": a.Host(), "domain2": b.Host(), "service": "people",
	}), nil), 10000)
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Comparison failed", body["error"])
	assert.Contains(t, body["message"], "HTTP 503")
}

func TestRequest_Sources(t *testing.T) {
	req := Request{Domain1: "a.example", Domain2: "b.example", Service: "people", Keywords: "tax"}
	left, right := req.Sources()

	want := "sectorid=:practiceid=:positionid=:languageid=:inpid=:countryid=:Keywords=tax"
	assert.Equal(t, upstream.Source{Domain: "a.example", Kind: upstream.KindPeople, Filter: want}, left)
	assert.Equal(t, upstream.Source{Domain: "b.example", Kind: upstream.KindPeople, Filter: want}, right)

	// Search terms only apply to people.
	req.Service = "news"
	left, _ = req.Sources()
	assert.Empty(t, left.Filter)
}
