package cmd

import (
	"count-diff/core/config"
	"count-diff/core/logger"
	"count-diff/core/reconcile"
	"count-diff/core/upstream"
	"count-diff/core/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// services holds the components shared by the server and the CLI commands.
type services struct {
	engine *reconcile.Engine
	// counts reads totals through the configured transport with the short timeout.
	counts *reconcile.TotalsCache
	// direct always talks to the upstream servers, even when a proxy is configured.
	direct   *upstream.Client
	validate *validator.Validate
}

func newServices(cfg *config.Config, logg *zap.Logger) *services {
	pages := upstream.NewClient(upstream.NewTransport(cfg.Upstream), cfg.Upstream.PageTimeout())
	if cfg.Upstream.ProxyURL != "" {
		logg.Info("Forwarding page requests through proxy", zap.String("proxy_url", cfg.Upstream.ProxyURL))
	}

	return &services{
		engine:   reconcile.NewEngine(pages, cfg.Compare, logger.Named(logg, "reconcile")),
		counts:   reconcile.NewTotalsCache(pages.WithTimeout(cfg.Upstream.CountsTimeout), cfg.Compare.TotalsCacheTTL),
		direct:   upstream.NewClient(upstream.NewDirectTransport(cfg.Upstream), cfg.Upstream.Timeout),
		validate: validation.New(cfg.Server),
	}
}
