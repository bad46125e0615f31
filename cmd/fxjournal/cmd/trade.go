package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rwyatt/fxjournal/journal"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and query journal trades",
	Long: `Record trades in the journal and query them back.

Examples:
  fxjournal trade add --pair EUR/USD --direction BUY --entry 1.0850 --lots 0.5
  fxjournal trade close <trade-id> --exit 1.0900 --reason "Take Profit Hit" --rr 1:2
  fxjournal trade list --window week
  fxjournal trade export --out trades.csv`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new open trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeCloseCmd = &cobra.Command{
	Use:   "close <trade-id>",
	Short: "Close an open trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeClose,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades, newest first, filtered by window",
	Long: `List trades filtered by a recency window over entry time.

The journal list uses calendar-anchored windows: today is since local
midnight, week since 7 calendar days ago, month since one calendar month ago.`,
	Args: cobra.NoArgs,
	RunE: runTradeList,
}

var tradeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the trade history to CSV",
	Args:  cobra.NoArgs,
	RunE:  runTradeExport,
}

var (
	tradePair      string
	tradeDirection string
	tradeEntry     float64
	tradeLots      float64
	tradeStop      float64
	tradeTake      float64
	tradeNotes     string

	tradeExit   float64
	tradeReason string
	tradeRR     string

	tradeWindow string
	tradeOrg    bool

	tradeExportPath string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeCloseCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeExportCmd)

	tradeAddCmd.Flags().StringVar(&tradePair, "pair", "", "currency pair, e.g. EUR/USD")
	tradeAddCmd.Flags().StringVar(&tradeDirection, "direction", "", "BUY or SELL")
	tradeAddCmd.Flags().Float64Var(&tradeEntry, "entry", 0, "entry price")
	tradeAddCmd.Flags().Float64Var(&tradeLots, "lots", 0, "lot size (1.0 = one standard lot)")
	tradeAddCmd.Flags().Float64Var(&tradeStop, "stop", 0, "stop loss price (optional)")
	tradeAddCmd.Flags().Float64Var(&tradeTake, "take", 0, "take profit price (optional)")
	tradeAddCmd.Flags().StringVar(&tradeNotes, "notes", "", "trade notes")

	tradeCloseCmd.Flags().Float64Var(&tradeExit, "exit", 0, "exit price")
	tradeCloseCmd.Flags().StringVar(&tradeReason, "reason", "", "close reason")
	tradeCloseCmd.Flags().StringVar(&tradeRR, "rr", "", "planned risk/reward label, e.g. 1:2")

	tradeListCmd.Flags().StringVar(&tradeWindow, "window", "all", "today, week, month or all")
	tradeListCmd.Flags().BoolVar(&tradeOrg, "org", false, "render as Org-mode blocks")

	tradeExportCmd.Flags().StringVar(&tradeExportPath, "out", "./trades.csv", "output CSV path")
}

// openTradeStore returns the configured trade store behind the Store
// interface; the commands never depend on the SQLite type.
func openTradeStore() (journal.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	return store, nil
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	store, err := openTradeStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tr, err := journal.Open(tradePair, journal.Direction(tradeDirection), tradeEntry, tradeLots, time.Now())
	if err != nil {
		return err
	}
	if tradeStop != 0 {
		stop := tradeStop
		tr.StopLoss = &stop
	}
	if tradeTake != 0 {
		take := tradeTake
		tr.TakeProfit = &take
	}
	tr.Notes = tradeNotes

	if err := store.Add(tr); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("recorded %s %s %s @ %.5f (%s)\n", tr.Pair, tr.Direction, fmt.Sprintf("%.2f lots", tr.LotSize), tr.EntryPrice, tr.ID)
	return nil
}

func runTradeClose(cmd *cobra.Command, args []string) error {
	store, err := openTradeStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if tradeReason != "" && !journal.ValidCloseReason(tradeReason) {
		return fmt.Errorf("unknown close reason %q (valid: %v)", tradeReason, journal.CloseReasons)
	}
	if tradeRR != "" && !journal.ValidRiskReward(tradeRR) {
		return fmt.Errorf("unknown risk/reward label %q (valid: %v)", tradeRR, journal.RiskRewardLabels)
	}

	tr, err := store.Get(args[0])
	if err != nil {
		return err
	}

	closed, err := tr.Close(journal.CloseRequest{
		ExitPrice:  tradeExit,
		Reason:     tradeReason,
		RiskReward: tradeRR,
		ExitTime:   time.Now(),
	})
	if err != nil {
		return err
	}

	if err := store.Update(closed); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("closed %s @ %.5f, realized P/L %.2f\n", closed.ID, *closed.ExitPrice, journal.ComputePnL(closed))
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	store, err := openTradeStore()
	if err != nil {
		return err
	}
	defer store.Close()

	w, err := journal.ParseWindow(tradeWindow)
	if err != nil {
		return err
	}

	trades, err := store.List()
	if err != nil {
		return err
	}
	trades = journal.FilterAnchored(trades, w, time.Now())

	if tradeOrg {
		fmt.Println(journal.FormatTradesOrg(trades))
		return nil
	}

	// Newest first for reading.
	for i := len(trades) - 1; i >= 0; i-- {
		t := trades[i]
		line := fmt.Sprintf("%s  %-8s %-4s %.5f  %.2f lots  %s", t.EntryTime.Format("2006-01-02 15:04"), t.Pair, t.Direction, t.EntryPrice, t.LotSize, t.Status)
		if t.Status == journal.StatusClosed {
			line += fmt.Sprintf("  P/L %.2f  (%s)", journal.ComputePnL(t), t.CloseReason)
		}
		fmt.Println(line + "  " + t.ID)
	}
	return nil
}

func runTradeExport(cmd *cobra.Command, args []string) error {
	store, err := openTradeStore()
	if err != nil {
		return err
	}
	defer store.Close()

	trades, err := store.List()
	if err != nil {
		return err
	}

	if err := journal.ExportCSV(tradeExportPath, trades); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	fmt.Printf("exported %d trades to %s\n", len(trades), tradeExportPath)
	return nil
}
