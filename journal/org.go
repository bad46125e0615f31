package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a trade as an Org-mode block suitable for pasting
// into a daily journal. Structured facts live in a PROPERTIES drawer for easy
// search; the narrative sections are left for the trader to fill in.
func FormatTradeOrg(t Trade) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Pair, t.Direction, shortID(t.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":PAIR: %s\n", t.Pair))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	if t.ExitPrice != nil {
		b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", *t.ExitPrice))
	}
	b.WriteString(fmt.Sprintf(":LOT_SIZE: %.2f\n", t.LotSize))
	if t.StopLoss != nil {
		b.WriteString(fmt.Sprintf(":STOP_LOSS: %.5f\n", *t.StopLoss))
	}
	if t.TakeProfit != nil {
		b.WriteString(fmt.Sprintf(":TAKE_PROFIT: %.5f\n", *t.TakeProfit))
	}
	b.WriteString(fmt.Sprintf(":ENTRY_TIME: %s\n", t.EntryTime.UTC().Format(time.RFC3339)))
	if !t.ExitTime.IsZero() {
		b.WriteString(fmt.Sprintf(":EXIT_TIME: %s\n", t.ExitTime.UTC().Format(time.RFC3339)))
	}
	b.WriteString(fmt.Sprintf(":STATUS: %s\n", t.Status))
	if t.CloseReason != "" {
		b.WriteString(fmt.Sprintf(":CLOSE_REASON: %s\n", t.CloseReason))
	}
	if t.RiskRewardRatio != "" {
		b.WriteString(fmt.Sprintf(":PLANNED_RR: %s\n", t.RiskRewardRatio))
	}
	if t.Status == StatusClosed {
		b.WriteString(fmt.Sprintf(":REALIZED_PL: %.2f\n", ComputePnL(t)))
	}
	b.WriteString(":END:\n")

	if t.Notes != "" {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("*** Notes\n- %s\n", t.Notes))
	}
	b.WriteString("\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
