package journal

import (
	"fmt"
	"time"
)

// Window selects how far back a trade listing or chart reaches. Comparison
// basis is always EntryTime.
type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// ParseWindow validates a window name from a flag or query string.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowToday, WindowWeek, WindowMonth, WindowAll:
		return Window(s), nil
	}
	return "", fmt.Errorf("unknown window %q (want today, week, month or all)", s)
}

// FilterRolling filters by rolling day counts: week is the last 7x24h and
// month the last 30x24h from now. This is the policy chart views use.
// Input order is preserved; the input slice is not modified.
func FilterRolling(trades []Trade, w Window, now time.Time) []Trade {
	switch w {
	case WindowToday:
		return filterSince(trades, startOfDay(now))
	case WindowWeek:
		return filterSince(trades, now.Add(-7*24*time.Hour))
	case WindowMonth:
		return filterSince(trades, now.Add(-30*24*time.Hour))
	default:
		return filterSince(trades, time.Time{})
	}
}

// FilterAnchored filters by calendar anchors: today is since local midnight,
// week since 7 calendar days ago, month since one calendar month ago. This is
// the policy the journal listing uses.
// Input order is preserved; the input slice is not modified.
func FilterAnchored(trades []Trade, w Window, now time.Time) []Trade {
	switch w {
	case WindowToday:
		return filterSince(trades, startOfDay(now))
	case WindowWeek:
		return filterSince(trades, now.AddDate(0, 0, -7))
	case WindowMonth:
		return filterSince(trades, now.AddDate(0, -1, 0))
	default:
		return filterSince(trades, time.Time{})
	}
}

func filterSince(trades []Trade, cutoff time.Time) []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if !t.EntryTime.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

func startOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
