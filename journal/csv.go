// journal/csv.go
package journal

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"trade_id", "pair", "direction", "entry_price", "exit_price", "lot_size",
	"stop_loss", "take_profit", "entry_time", "exit_time", "status",
	"close_reason", "risk_reward", "realized_pl", "notes",
}

// WriteCSV writes the trade history, one row per trade, with a realized_pl
// column derived at export time.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		row := []string{
			t.ID,
			t.Pair,
			string(t.Direction),
			f(t.EntryPrice),
			optF(t.ExitPrice),
			f(t.LotSize),
			optF(t.StopLoss),
			optF(t.TakeProfit),
			t.EntryTime.Format(time.RFC3339),
			optT(t.ExitTime),
			string(t.Status),
			t.CloseReason,
			t.RiskRewardRatio,
			f(ComputePnL(t)),
			t.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the trade history to a file.
func ExportCSV(path string, trades []Trade) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteCSV(file, trades); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func optF(p *float64) string {
	if p == nil {
		return ""
	}
	return f(*p)
}

func optT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
