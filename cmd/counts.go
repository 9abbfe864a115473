package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"count-diff/core/config"
	"count-diff/core/logger"
	"count-diff/feature/counts"

	"github.com/spf13/cobra"
)

// countsCmd prints the totals of every listing service on one server.
var countsCmd = &cobra.Command{
	Use:   "counts <domain>",
	Short: "Print the listing totals of one server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		svc := newServices(cfg, l)
		if err := svc.validate.Struct(counts.Request{Domain: args[0]}); err != nil {
			return fmt.Errorf("domain not allowed: %s", args[0])
		}

		report := counts.NewService(svc.counts, l).Counts(context.Background(), args[0])

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	RootCmd.AddCommand(countsCmd)
}
