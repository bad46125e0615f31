package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rwyatt/fxjournal/risk"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Size a position from account balance and trade levels",
	Long: `Compute position size and risk/reward from the configured account
balance and the proposed entry, stop and target.

Example:
  fxjournal risk --pct 2 --entry 1.1000 --stop 1.0950 --take 1.1100 --pair EUR/USD`,
	Args: cobra.NoArgs,
	RunE: runRisk,
}

var (
	riskPct   float64
	riskEntry float64
	riskStop  float64
	riskTake  float64
	riskPair  string
)

func init() {
	rootCmd.AddCommand(riskCmd)

	riskCmd.Flags().Float64Var(&riskPct, "pct", 0, "risk percentage of balance")
	riskCmd.Flags().Float64Var(&riskEntry, "entry", 0, "entry price")
	riskCmd.Flags().Float64Var(&riskStop, "stop", 0, "stop loss price")
	riskCmd.Flags().Float64Var(&riskTake, "take", 0, "take profit price")
	riskCmd.Flags().StringVar(&riskPair, "pair", "EUR/USD", "currency pair")
}

func runRisk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := risk.Inputs{
		RiskPercentage: riskPct,
		EntryPrice:     riskEntry,
		StopLoss:       riskStop,
		TakeProfit:     riskTake,
		Pair:           riskPair,
	}

	res, err := risk.Calculate(cfg.Snapshot(), in)
	if err != nil {
		return err
	}
	res = res.Rounded()

	fmt.Printf("Balance:          %.2f %s\n", cfg.Account.Balance, cfg.Account.Currency)
	fmt.Printf("Risk Amount:      %.2f\n", res.RiskAmount)
	fmt.Printf("Stop Distance:    %.2f pips\n", res.StopPips)
	fmt.Printf("Pip Value:        %.2f\n", res.PipValue)
	fmt.Printf("Position Size:    %.2f lots\n", res.LotSize)
	fmt.Printf("Potential Loss:   %.2f\n", res.PotentialLoss)
	fmt.Printf("Potential Profit: %.2f\n", res.PotentialProfit)
	fmt.Printf("Risk/Reward:      %.2f\n", res.RiskRewardRatio)

	decision := risk.Evaluate(cfg.Policy(), in, res)
	if !decision.Allowed {
		fmt.Println()
		fmt.Println("Policy violations:")
		for _, v := range decision.Violations {
			fmt.Printf("  [%s] %s\n", v.Code, v.Msg)
		}
	}
	return nil
}
