package events

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"count-diff/core/reconcile"
	"count-diff/core/upstream"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Type selects the upcoming or the archived event listing.
type Type string

const (
	TypeUpcoming Type = "upcoming"
	TypePast     Type = "past"
)

var typePaths = map[Type]string{
	TypeUpcoming: "/en/about-dentons/news-events-and-awards/events",
	TypePast:     "/en/about-dentons/news-events-and-awards/events/events-archive",
}

// Path returns the listing page path, or "" for an unknown type.
func (t Type) Path() string {
	return typePaths[t]
}

// marker is the section title preceding the listed events.
func (t Type) marker() string {
	if t == TypePast {
		return "Past Events"
	}
	return "Upcoming Events"
}

// Comparison is the outcome of comparing one event listing on two servers.
type Comparison struct {
	Type          Type             `json:"type"`
	Total1        int              `json:"total1"`
	Total2        int              `json:"total2"`
	Difference    int              `json:"difference"`
	OnlyIn1       []Event          `json:"onlyIn1"`
	OnlyIn2       []Event          `json:"onlyIn2"`
	DuplicateHint reconcile.Side   `json:"duplicateHint"`
	Status        reconcile.Status `json:"status"`
}

// Service fetches and compares event listings.
type Service struct {
	client    *upstream.Client
	scheme    string
	userAgent string
	logger    *zap.Logger
}

// NewService creates a new events service.
func NewService(client *upstream.Client, cfg upstream.Config, logger *zap.Logger) *Service {
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = "https"
	}
	return &Service{client: client, scheme: scheme, userAgent: cfg.UserAgent, logger: logger}
}

// Timeout returns how long one page fetch may take.
func (s *Service) Timeout() time.Duration {
	return s.client.Timeout()
}

// Feed fetches and parses the listing page of one server.
func (s *Service) Feed(ctx context.Context, domain string, t Type) (*Feed, error) {
	path := t.Path()
	if path == "" {
		return nil, fmt.Errorf("unknown event type: %q", t)
	}

	h := http.Header{}
	h.Set("Accept", "text/html,application/xhtml+xml")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("User-Agent", s.userAgent)
	h.Set("Referer", "https://"+domain+"/en")

	body, err := s.client.FetchDocument(ctx, s.scheme+"://"+domain+path, h)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(body), domain, t)
}

// Compare fetches both listings concurrently and diffs them by link path.
func (s *Service) Compare(ctx context.Context, domain1, domain2 string, t Type) (*Comparison, error) {
	var f1, f2 *Feed
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		f1, err = s.Feed(gctx, domain1, t)
		return err
	})
	g.Go(func() (err error) {
		f2, err = s.Feed(gctx, domain2, t)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	delta := f1.TotalResult - f2.TotalResult
	d := reconcile.Diff(materialize(f1), materialize(f2), delta)

	s.logger.Debug("Events compared",
		zap.String("type", string(t)),
		zap.Int("total1", f1.TotalResult),
		zap.Int("total2", f2.TotalResult),
		zap.String("status", string(d.Status)),
	)

	return &Comparison{
		Type:          t,
		Total1:        f1.TotalResult,
		Total2:        f2.TotalResult,
		Difference:    delta,
		OnlyIn1:       toEvents(d.OnlyIn1),
		OnlyIn2:       toEvents(d.OnlyIn2),
		DuplicateHint: d.DuplicateHint,
		Status:        d.Status,
	}, nil
}

func materialize(f *Feed) *reconcile.MaterializedSet {
	set := reconcile.NewMaterializedSet(len(f.Events))
	records := make([]upstream.Record, 0, len(f.Events))
	for _, e := range f.Events {
		records = append(records, upstream.Record{"title": e.Title, "link": e.Link, "date": e.Date})
	}
	set.Add(records)
	return set
}

func toEvents(records []upstream.Record) []Event {
	out := make([]Event, 0, len(records))
	for _, r := range records {
		out = append(out, Event{Title: r.Field("title"), Link: r.Link(), Date: r.Field("date")})
	}
	return out
}
