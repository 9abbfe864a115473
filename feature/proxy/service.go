package proxy

import (
	"context"

	"count-diff/core/upstream"
)

// PayloadFetcher fetches one decoded upstream page.
type PayloadFetcher interface {
	FetchPayload(ctx context.Context, src upstream.Source, page, size int) (map[string]any, error)
}

// Request holds the query parameters of a proxied page fetch.
type Request struct {
	Domain     string `query:"domain" validate:"required,allowed_domain"`
	Service    string `query:"service" validate:"required,service"`
	Data       string `query:"data"`
	PageNumber int    `query:"pageNumber" validate:"min=1"`
	PageSize   int    `query:"pageSize" validate:"min=1,max=1000"`

	// Keywords, Names and Alpha build a people search when Data is empty.
	Keywords string `query:"keywords"`
	Names    string `query:"names"`
	Alpha    string `query:"alpha"`
}

// Source converts the request into an upstream source.
func (r Request) Source() upstream.Source {
	kind := upstream.Kind(r.Service)
	filter := upstream.ResolveFilter(kind, r.Data, upstream.PeopleFilter{
		Keywords: r.Keywords,
		Names:    r.Names,
		Alpha:    r.Alpha,
		Page:     r.PageNumber,
	})
	return upstream.Source{Domain: r.Domain, Kind: kind, Filter: filter}
}

// Service forwards single page fetches to the upstream servers.
type Service struct {
	fetcher PayloadFetcher
}

// NewService creates a new proxy service. The fetcher must talk to the
// upstream servers directly, never through another proxy.
func NewService(fetcher PayloadFetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Fetch returns the decoded payload of one page.
func (s *Service) Fetch(ctx context.Context, req Request) (map[string]any, error) {
	return s.fetcher.FetchPayload(ctx, req.Source(), req.PageNumber, req.PageSize)
}
