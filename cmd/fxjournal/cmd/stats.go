package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rwyatt/fxjournal/journal"
	"github.com/rwyatt/fxjournal/metrics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance metrics over a time window",
	Long: `Aggregate closed trades into a performance summary.

Dashboard views use rolling windows: week is the last 7x24 hours and month
the last 30x24 hours, matching the equity and pair charts.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var equityCmd = &cobra.Command{
	Use:   "equity",
	Short: "Print the cumulative equity curve",
	Args:  cobra.NoArgs,
	RunE:  runEquity,
}

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Print per-pair performance",
	Args:  cobra.NoArgs,
	RunE:  runPairs,
}

var (
	statsWindow string
	statsOrg    bool
)

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(equityCmd)
	rootCmd.AddCommand(pairsCmd)

	for _, c := range []*cobra.Command{statsCmd, equityCmd, pairsCmd} {
		c.Flags().StringVar(&statsWindow, "window", "all", "today, week, month or all")
	}
	statsCmd.Flags().BoolVar(&statsOrg, "org", false, "render as an Org-mode block")
}

func windowedTrades() ([]journal.Trade, journal.Window, error) {
	store, err := openTradeStore()
	if err != nil {
		return nil, "", err
	}
	defer store.Close()

	w, err := journal.ParseWindow(statsWindow)
	if err != nil {
		return nil, "", err
	}

	trades, err := store.List()
	if err != nil {
		return nil, "", err
	}
	return journal.FilterRolling(trades, w, time.Now()), w, nil
}

func runStats(cmd *cobra.Command, args []string) error {
	trades, w, err := windowedTrades()
	if err != nil {
		return err
	}

	summary := metrics.Aggregate(trades)

	if statsOrg {
		out, err := metrics.ReportOrg(string(w), summary, time.Now())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	metrics.WriteReport(os.Stdout, string(w), summary)
	return nil
}

func runEquity(cmd *cobra.Command, args []string) error {
	trades, _, err := windowedTrades()
	if err != nil {
		return err
	}

	for _, p := range metrics.EquityCurve(trades) {
		fmt.Printf("%-12s %10.2f\n", p.Label, metrics.Round2(p.Value))
	}
	return nil
}

func runPairs(cmd *cobra.Command, args []string) error {
	trades, _, err := windowedTrades()
	if err != nil {
		return err
	}

	for _, p := range metrics.PairPerformance(trades) {
		sign := "+"
		if !p.Positive {
			sign = "-"
		}
		if p.NoData {
			fmt.Println("no closed trades in window")
			continue
		}
		fmt.Printf("%-8s %s%10.2f\n", p.Pair, sign, metrics.Round2(abs(p.PnL)))
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
