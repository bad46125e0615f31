package risk

// Policy holds the account's standing risk limits. A sized trade is checked
// against these before it goes in the journal.
type Policy struct {
	// DefaultRiskPct is the risk the trader normally takes per trade, in
	// percent (e.g. 1.0). Exceeding it is a violation that forces an
	// explicit override, even below MaxRiskPct.
	DefaultRiskPct float64
	// MaxRiskPct is the hard per-trade cap, in percent.
	MaxRiskPct float64
	// MinRR is the minimum acceptable reward-to-risk ratio.
	MinRR float64
	// MaxLotSize caps position size regardless of risk math. Zero disables
	// the check.
	MaxLotSize float64
}

// DefaultPolicy mirrors the conservative defaults the journal ships with.
func DefaultPolicy() Policy {
	return Policy{
		DefaultRiskPct: 1.0,
		MaxRiskPct:     2.0,
		MinRR:          1.5,
		MaxLotSize:     0,
	}
}
