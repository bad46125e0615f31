package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	exit := 1.08750
	tr := Trade{
		ID:         "01HV0000000000000000000000",
		Pair:       "EUR/USD",
		Direction:  Buy,
		EntryPrice: 1.08500,
		LotSize:    0.5,
		EntryTime:  time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC),
		Notes:      "breakout above asia range",
		Status:     StatusClosed,
		ExitPrice:  &exit,
		ExitTime:   time.Date(2024, 3, 15, 14, 20, 30, 0, time.UTC),

		CloseReason:     "Take Profit Hit",
		RiskRewardRatio: "1:2",
	}

	out := FormatTradeOrg(tr)

	assert.Contains(t, out, "** Trade: EUR/USD BUY (01HV0000)")
	assert.Contains(t, out, ":PROPERTIES:")
	assert.Contains(t, out, ":PAIR: EUR/USD")
	assert.Contains(t, out, ":DIRECTION: BUY")
	assert.Contains(t, out, ":ENTRY_PRICE: 1.08500")
	assert.Contains(t, out, ":EXIT_PRICE: 1.08750")
	assert.Contains(t, out, ":ENTRY_TIME: 2024-03-15T10:30:45Z")
	assert.Contains(t, out, ":EXIT_TIME: 2024-03-15T14:20:30Z")
	assert.Contains(t, out, ":STATUS: CLOSED")
	assert.Contains(t, out, ":CLOSE_REASON: Take Profit Hit")
	assert.Contains(t, out, ":PLANNED_RR: 1:2")
	assert.Contains(t, out, ":REALIZED_PL: 125.00")
	assert.Contains(t, out, ":END:")
	assert.Contains(t, out, "*** Notes")
	assert.Contains(t, out, "*** Review")
}

func TestFormatTradeOrgOpenTrade(t *testing.T) {
	t.Parallel()

	tr := Trade{
		ID: "short", Pair: "USD/JPY", Direction: Sell,
		EntryPrice: 150.25, LotSize: 0.1,
		EntryTime: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Status:    StatusOpen,
	}

	out := FormatTradeOrg(tr)

	assert.Contains(t, out, "** Trade: USD/JPY SELL (short)")
	assert.Contains(t, out, ":STATUS: OPEN")
	assert.NotContains(t, out, ":EXIT_PRICE:")
	assert.NotContains(t, out, ":REALIZED_PL:")
	assert.NotContains(t, out, ":CLOSE_REASON:")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	a := Trade{ID: "A", Pair: "EUR/USD", Direction: Buy, EntryPrice: 1.1, LotSize: 0.1, Status: StatusOpen}
	b := Trade{ID: "B", Pair: "GBP/USD", Direction: Sell, EntryPrice: 1.27, LotSize: 0.1, Status: StatusOpen}

	out := FormatTradesOrg([]Trade{a, b})
	assert.Contains(t, out, "(A)")
	assert.Contains(t, out, "(B)")
}
