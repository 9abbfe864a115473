package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"count-diff/core/config"
	"count-diff/core/logger"
	"count-diff/core/reconcile"
	"count-diff/core/upstream"
	"count-diff/core/validation"
	"count-diff/feature/compare"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compareReq compare.Request

// jsonOutput prints the raw result instead of the log report.
var jsonOutput bool

// compareCmd compares one listing service between two servers.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a listing service between two servers",
	Long: `Compare fetches the reported totals of one listing service on two servers.
When they differ it scans both listings and reports the records found on one side only.

Examples:
  # Full scan of the insights listing
  compare --left www.dentons.com --right s10-www.dentons.com --service insights

  # Incremental scan, stopping as soon as the gap is explained
  compare --left www.dentons.com --right s10-www.dentons.com --service news --mode incremental --max-pages 20

  # Machine readable output
  compare --left www.dentons.com --right s10-www.dentons.com --service people --json`,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&compareReq.Domain1, "left", "", "First server host")
	f.StringVar(&compareReq.Domain2, "right", "", "Second server host")
	f.StringVar(&compareReq.Service, "service", "", "Listing service (insights, people, news)")
	f.StringVar(&compareReq.Mode, "mode", string(reconcile.ModeFull), "Scan mode (full, incremental)")
	f.IntVar(&compareReq.BatchSize, "batch-size", 0, "Page size for incremental scans")
	f.IntVar(&compareReq.MaxPages, "max-pages", 0, "Page cap for incremental scans")
	f.StringVar(&compareReq.Data, "data", "", "Opaque upstream filter")
	f.StringVar(&compareReq.Keywords, "keywords", "", "People search keywords")
	f.StringVar(&compareReq.Names, "names", "", "People search names")
	f.StringVar(&compareReq.Alpha, "alpha", "", "People last name initial")
	f.BoolVar(&jsonOutput, "json", false, "Print the result as JSON")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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
	if err := svc.validate.Struct(compareReq); err != nil {
		return fmt.Errorf("invalid arguments: %s", validation.Message(err))
	}

	l.Info("Starting comparison",
		zap.String("left", compareReq.Domain1),
		zap.String("right", compareReq.Domain2),
		zap.String("service", compareReq.Service),
		zap.String("mode", compareReq.Mode),
	)

	res, err := compare.NewService(svc.engine, l).Compare(ctx, compareReq, l)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printCompareReport(cmd, l, res)
	return nil
}

// printCompareReport logs the summary and prints the unique records.
func printCompareReport(cmd *cobra.Command, l *zap.Logger, res *reconcile.Result) {
	l.Info("Comparison report",
		zap.String("status", string(res.Status)),
		zap.Int("total1", res.Total1),
		zap.Int("total2", res.Total2),
		zap.Int("difference", res.Difference),
		zap.Int("only_in_1", res.OnlyIn1Count),
		zap.Int("only_in_2", res.OnlyIn2Count),
		zap.Int("pages_scanned", res.PagesScanned),
		zap.Int("items_scanned", res.ItemsScanned),
		zap.Bool("complete", res.Complete),
	)
	l.Info(res.Explanation)

	out := cmd.OutOrStdout()
	printRecords(out, "Only in "+res.Left.Source, res.OnlyIn1, res.OnlyIn1Count)
	printRecords(out, "Only in "+res.Right.Source, res.OnlyIn2, res.OnlyIn2Count)
	if res.DuplicateSample != nil {
		fmt.Fprintf(out, "Duplicate on %s side: %s\n", res.DuplicateHint, res.DuplicateSample.Link)
	}
}

func printRecords(out io.Writer, title string, records []upstream.DisplayRecord, total int) {
	if total == 0 {
		return
	}
	fmt.Fprintf(out, "%s (%d):\n", title, total)
	for _, r := range records {
		label := r.Heading
		if label == "" {
			label = r.Name
		}
		fmt.Fprintf(out, "  %s  %s\n", r.Link, label)
	}
	if hidden := total - len(records); hidden > 0 {
		fmt.Fprintf(out, "  ... %d more\n", hidden)
	}
}
