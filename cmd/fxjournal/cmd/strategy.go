package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rwyatt/fxjournal/strategy"
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Manage strategies and their backtests",
	Long: `Save trading strategies and record backtests against them.

A strategy becomes verified once 100 backtests are recorded; verified
strategies no longer accept submissions.

Examples:
  fxjournal strategy add --name "London Breakout" --entry-rules "..." --exit-rules "..."
  fxjournal strategy backtest <strategy-id> --entry 1.1000 --exit 1.1050 --date 2024-04-10 --outcome Win --pnl 1.2
  fxjournal strategy list`,
}

var strategyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a new strategy",
	Args:  cobra.NoArgs,
	RunE:  runStrategyAdd,
}

var strategyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List strategies with verification progress",
	Args:  cobra.NoArgs,
	RunE:  runStrategyList,
}

var strategyBacktestCmd = &cobra.Command{
	Use:   "backtest <strategy-id>",
	Short: "Record a backtest result against a strategy",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrategyBacktest,
}

var (
	stratName       string
	stratDesc       string
	stratEntryRules string
	stratExitRules  string
	stratRisk       float64
	stratTimeframe  string

	btEntry   float64
	btExit    float64
	btDate    string
	btOutcome string
	btPnL     float64
	btNotes   string
)

func init() {
	rootCmd.AddCommand(strategyCmd)
	strategyCmd.AddCommand(strategyAddCmd)
	strategyCmd.AddCommand(strategyListCmd)
	strategyCmd.AddCommand(strategyBacktestCmd)

	strategyAddCmd.Flags().StringVar(&stratName, "name", "", "strategy name")
	strategyAddCmd.Flags().StringVar(&stratDesc, "description", "", "short description")
	strategyAddCmd.Flags().StringVar(&stratEntryRules, "entry-rules", "", "entry rules")
	strategyAddCmd.Flags().StringVar(&stratExitRules, "exit-rules", "", "exit rules")
	strategyAddCmd.Flags().Float64Var(&stratRisk, "risk", 1.0, "risk per trade, percent")
	strategyAddCmd.Flags().StringVar(&stratTimeframe, "timeframe", "", "timeframe, e.g. H1")

	strategyBacktestCmd.Flags().Float64Var(&btEntry, "entry", 0, "entry price")
	strategyBacktestCmd.Flags().Float64Var(&btExit, "exit", 0, "exit price")
	strategyBacktestCmd.Flags().StringVar(&btDate, "date", "", "backtest date (YYYY-MM-DD)")
	strategyBacktestCmd.Flags().StringVar(&btOutcome, "outcome", "", "Win or Loss")
	strategyBacktestCmd.Flags().Float64Var(&btPnL, "pnl", 0, "P/L percentage")
	strategyBacktestCmd.Flags().StringVar(&btNotes, "notes", "", "notes")
}

func openStrategyStore() (*strategy.SQLite, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := strategy.NewSQLite(cfg.StrategyDBPath())
	if err != nil {
		return nil, fmt.Errorf("open strategy db: %w", err)
	}
	return store, nil
}

func runStrategyAdd(cmd *cobra.Command, args []string) error {
	store, err := openStrategyStore()
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := strategy.New(stratName, stratDesc, stratEntryRules, stratExitRules, stratRisk, stratTimeframe)
	if err != nil {
		return err
	}

	if err := store.Save(st); err != nil {
		return fmt.Errorf("save strategy: %w", err)
	}

	fmt.Printf("saved strategy %q (%s)\n", st.Name, st.ID)
	return nil
}

func runStrategyList(cmd *cobra.Command, args []string) error {
	store, err := openStrategyStore()
	if err != nil {
		return err
	}
	defer store.Close()

	strategies, err := store.List()
	if err != nil {
		return err
	}

	for _, st := range strategies {
		status := fmt.Sprintf("%d/%d", st.Verification.Count(), strategy.VerificationThreshold)
		if st.Verification.Verified() {
			status = "verified"
		}
		fmt.Printf("%-24s %-6s backtests: %-10s %s\n", st.Name, st.Timeframe, status, st.ID)
	}
	return nil
}

func runStrategyBacktest(cmd *cobra.Command, args []string) error {
	store, err := openStrategyStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var date time.Time
	if btDate != "" {
		date, err = time.Parse("2006-01-02", btDate)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	st, err := store.Get(args[0])
	if err != nil {
		return err
	}

	updated, err := strategy.SubmitBacktest(st, strategy.BacktestResult{
		EntryPrice: btEntry,
		ExitPrice:  btExit,
		Date:       date,
		Outcome:    btOutcome,
		PnLPct:     btPnL,
		Notes:      btNotes,
	})
	if err != nil {
		return err
	}

	if err := store.Save(updated); err != nil {
		return fmt.Errorf("save strategy: %w", err)
	}

	fmt.Printf("backtest recorded: %d/%d", updated.Verification.Count(), strategy.VerificationThreshold)
	if updated.Verification.Verified() {
		fmt.Print("  ✓ verified")
	}
	fmt.Println()
	return nil
}
