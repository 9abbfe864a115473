package compare

import (
	"context"

	"count-diff/core/reconcile"
	"count-diff/core/upstream"

	"go.uber.org/zap"
)

// Request holds the query parameters of a comparison.
type Request struct {
	Domain1   string `query:"domain1" validate:"required,allowed_domain"`
	Domain2   string `query:"domain2" validate:"required,allowed_domain"`
	Service   string `query:"service" validate:"required,service"`
	Mode      string `query:"mode" validate:"omitempty,oneof=full incremental"`
	BatchSize int    `query:"batchSize" validate:"omitempty,min=1"`
	MaxPages  int    `query:"maxPages" validate:"omitempty,min=1"`
	Data      string `query:"data"`

	// Keywords, Names and Alpha narrow a people comparison when Data is empty.
	Keywords string `query:"keywords"`
	Names    string `query:"names"`
	Alpha    string `query:"alpha"`
}

// Sources returns the two sources the request compares.
func (r Request) Sources() (left, right upstream.Source) {
	kind := upstream.Kind(r.Service)
	filter := upstream.ResolveFilter(kind, r.Data, upstream.PeopleFilter{
		Keywords: r.Keywords,
		Names:    r.Names,
		Alpha:    r.Alpha,
	})
	left = upstream.Source{Domain: r.Domain1, Kind: kind, Filter: filter}
	right = upstream.Source{Domain: r.Domain2, Kind: kind, Filter: filter}
	return left, right
}

// Service runs comparisons between two servers.
type Service struct {
	engine *reconcile.Engine
	logger *zap.Logger
}

// NewService creates a new compare service.
func NewService(engine *reconcile.Engine, logger *zap.Logger) *Service {
	return &Service{engine: engine, logger: logger}
}

// Compare runs one comparison. l receives per-state debug lines.
func (s *Service) Compare(ctx context.Context, req Request, l *zap.Logger) (*reconcile.Result, error) {
	left, right := req.Sources()

	return s.engine.Compare(ctx, left, right, reconcile.Options{
		Mode:      reconcile.Mode(req.Mode),
		BatchSize: req.BatchSize,
		MaxPages:  req.MaxPages,
		Progress: func(ev reconcile.ProgressEvent) {
			l.Debug("Comparison progress",
				zap.String("state", string(ev.State)),
				zap.Int("pages", ev.PagesScanned),
				zap.Int("only_in_1", ev.OnlyIn1),
				zap.Int("only_in_2", ev.OnlyIn2),
			)
		},
	})
}
