package counts

import (
	"context"

	"count-diff/core/reconcile"
	"count-diff/core/upstream"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ServiceCount is the total of one listing service, or why it is missing.
type ServiceCount struct {
	Count *int    `json:"count"`
	Error *string `json:"error"`
}

// Report holds the totals of every listing service on one server.
type Report struct {
	Domain   string       `json:"domain"`
	Insights ServiceCount `json:"insights"`
	People   ServiceCount `json:"people"`
	News     ServiceCount `json:"news"`
}

// Service reads listing totals.
type Service struct {
	totals *reconcile.TotalsCache
	logger *zap.Logger
}

// NewService creates a new counts service.
func NewService(totals *reconcile.TotalsCache, logger *zap.Logger) *Service {
	return &Service{totals: totals, logger: logger}
}

// Counts reads the three totals concurrently. Each service is reported on
// its own; one failing never hides the others.
func (s *Service) Counts(ctx context.Context, domain string) *Report {
	r := &Report{Domain: domain}
	slots := map[upstream.Kind]*ServiceCount{
		upstream.KindInsights: &r.Insights,
		upstream.KindPeople:   &r.People,
		upstream.KindNews:     &r.News,
	}

	var g errgroup.Group
	for _, kind := range upstream.Kinds() {
		slot := slots[kind]
		g.Go(func() error {
			*slot = s.count(ctx, upstream.Source{Domain: domain, Kind: kind})
			return nil
		})
	}
	_ = g.Wait()

	return r
}

func (s *Service) count(ctx context.Context, src upstream.Source) ServiceCount {
	total, err := s.totals.Total(ctx, src)
	if err != nil {
		s.logger.Warn("Count failed", zap.String("source", src.String()), zap.Error(err))
		msg := err.Error()
		if upstream.IsTimeout(err) {
			msg = "Timeout"
		}
		return ServiceCount{Error: &msg}
	}
	return ServiceCount{Count: &total}
}
