package journal

// UnitsPerLot is the size of one standard lot in base-currency units.
const UnitsPerLot = 100000

// ComputePnL returns the realized profit or loss of a trade in account
// currency. Open trades and trades without an exit price have no realized
// P/L yet and return 0.
//
// A NaN in any numeric input propagates to NaN. Callers must treat NaN as
// "unavailable", never as zero, or aggregates would silently absorb corrupt
// records.
func ComputePnL(t Trade) float64 {
	if t.Status != StatusClosed || t.ExitPrice == nil {
		return 0
	}

	diff := *t.ExitPrice - t.EntryPrice
	if t.Direction == Sell {
		diff = -diff
	}
	return diff * t.LotSize * UnitsPerLot
}
