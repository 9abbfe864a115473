package counts

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"count-diff/core/reconcile"
	"count-diff/core/server"
	"count-diff/core/upstream"
	"count-diff/core/upstream/mocks"
	"count-diff/core/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const domain = "s10-nacd1.dentons.com"

func src(kind upstream.Kind) upstream.Source {
	return upstream.Source{Domain: domain, Kind: kind}
}

func setupTestApp(f upstream.Fetcher) *fiber.App {
	app := fiber.New()
	validate := validation.New(server.Config{AllowedDomains: []string{domain}})
	NewFeature(reconcile.NewTotalsCache(f, 0), validate, zap.NewNop()).Load(app)
	return app
}

func TestHandleCounts(t *testing.T) {
	f := new(mocks.Fetcher)
	f.On("Fetch", mock.Anything, src(upstream.KindInsights), 1, 1).Return(&upstream.Page{Total: 1200}, nil)
	f.On("Fetch", mock.Anything, src(upstream.KindPeople), 1, 1).Return(nil, &upstream.FetchError{URL: "p", Timeout: true, Err: context.DeadlineExceeded})
	f.On("Fetch", mock.Anything, src(upstream.KindNews), 1, 1).Return(nil, &upstream.FetchError{URL: "n", Status: 500})

	resp, err := setupTestApp(f).Test(httptest.NewRequest("GET", "/counts?domain="+domain, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, domain, body.Domain)
	require.NotNil(t, body.Insights.Count)
	assert.Equal(t, 1200, *body.Insights.Count)
	assert.Nil(t, body.Insights.Error)
	assert.Nil(t, body.People.Count)
	require.NotNil(t, body.People.Error)
	assert.Equal(t, "Timeout", *body.People.Error)
	require.NotNil(t, body.News.Error)
	assert.Contains(t, *body.News.Error, "HTTP 500")
}

func TestHandleCounts_InvalidDomain(t *testing.T) {
	f := new(mocks.Fetcher)
	resp, err := setupTestApp(f).Test(httptest.NewRequest("GET", "/counts?domain=example.com", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	f.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCounts_KeysNeverSwap(t *testing.T) {
	f := new(mocks.Fetcher)
	f.On("Fetch", mock.Anything, src(upstream.KindInsights), 1, 1).Return(&upstream.Page{Total: 1}, nil).After(20 * time.Millisecond)
	f.On("Fetch", mock.Anything, src(upstream.KindPeople), 1, 1).Return(&upstream.Page{Total: 2}, nil)
	f.On("Fetch", mock.Anything, src(upstream.KindNews), 1, 1).Return(&upstream.Page{Total: 3}, nil).After(5 * time.Millisecond)

	r := NewService(reconcile.NewTotalsCache(f, 0), zap.NewNop()).Counts(context.Background(), domain)

	assert.Equal(t, 1, *r.Insights.Count)
	assert.Equal(t, 2, *r.People.Count)
	assert.Equal(t, 3, *r.News.Count)
}
