package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"count-diff/core/config"
	"count-diff/core/loader"
	"count-diff/core/logger"
	"count-diff/core/middleware/rayid"

	"count-diff/feature/compare"
	"count-diff/feature/counts"
	"count-diff/feature/events"
	"count-diff/feature/proxy"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "count-diff/docs/swagger"
)

// @title Count Diff API
// @version 1.0
// @description Compares listing services between two servers and reports the records behind a count mismatch.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the comparison server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		svc := newServices(cfg, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(compare.NewFeature(svc.engine, svc.validate, logger.Named(logg, "compare")))
		mgr.Register(counts.NewFeature(svc.counts, svc.validate, logger.Named(logg, "counts")))
		mgr.Register(events.NewFeature(svc.direct.WithTimeout(cfg.Upstream.CountsTimeout), cfg.Upstream, svc.validate, logger.Named(logg, "events")))
		// A relaying instance must not serve as a proxy itself.
		mgr.Register(proxy.NewFeature(svc.direct, svc.validate, logger.Named(logg, "proxy"), cfg.Upstream.ProxyURL == ""))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Strings("allowed_domains", cfg.Server.AllowedDomains),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
